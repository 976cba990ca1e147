package usecases

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"scholar-seeker.backend/internal/domain/entities"
	"scholar-seeker.backend/internal/infrastructure/seed"
)

func sch(title string, tags []string, description string) *entities.Scholarship {
	return &entities.Scholarship{
		ID:          uuid.New(),
		Title:       title,
		Eligibility: tags,
		Description: description,
	}
}

func titles(items []*entities.Scholarship) []string {
	out := make([]string, 0, len(items))
	for _, s := range items {
		out = append(out, s.Title)
	}
	return out
}

// seedDataset returns the bundled catalog with ids assigned, as the seeder
// would insert it
func seedDataset() []*entities.Scholarship {
	items := seed.Dataset()
	for _, s := range items {
		s.ID = uuid.New()
	}
	return items
}

func TestMatchScholarships_EmptyProfileReturnsFullCatalog(t *testing.T) {
	catalog := seedDataset()

	result := MatchScholarships(&entities.Profile{}, catalog)

	require.Len(t, result, len(catalog))
	require.Equal(t, titles(catalog), titles(result))
}

func TestMatchScholarships_DeduplicatesCatalog(t *testing.T) {
	a := sch("A", []string{"High School"}, "")
	b := sch("B", []string{"Undergraduate"}, "")
	catalog := []*entities.Scholarship{a, b, a, b, a}

	result := MatchScholarships(&entities.Profile{}, catalog)

	require.Equal(t, []string{"A", "B"}, titles(result))
}

func TestMatchScholarships_EducationLevelFamilies(t *testing.T) {
	highSchool := sch("HS", []string{"High School"}, "")
	undergrad := sch("UG", []string{"Undergraduate"}, "")
	graduate := sch("GR", []string{"Graduate"}, "")
	catalog := []*entities.Scholarship{highSchool, undergrad, graduate}

	cases := []struct {
		level string
		want  []string
	}{
		{entities.EducationSecondary, []string{"HS"}},
		{entities.EducationSeniorSecondary, []string{"HS"}},
		{entities.EducationUnderGraduate, []string{"UG"}},
		{entities.EducationPostGraduate, []string{"GR"}},
		{entities.EducationPhD, []string{"GR"}},
		// unknown levels do not filter
		{"diploma", []string{"HS", "UG", "GR"}},
		{"", []string{"HS", "UG", "GR"}},
	}

	for _, tc := range cases {
		result := MatchScholarships(&entities.Profile{EducationLevel: tc.level}, catalog)
		require.Equal(t, tc.want, titles(result), "level=%s", tc.level)
	}
}

func TestMatchScholarships_CourseFilters(t *testing.T) {
	stem := sch("STEM Futures Award", []string{"Leadership"}, "")
	eng := sch("Engineering Grant", []string{"Engineering"}, "")
	med := sch("Medical Grant", []string{"Health Sciences"}, "")
	biz := sch("Business Grant", []string{"Management"}, "")
	arts := sch("Arts Grant", []string{"Humanities"}, "")
	catalog := []*entities.Scholarship{stem, eng, med, biz, arts}

	cases := []struct {
		course string
		want   []string
	}{
		// science and engineering share the STEM family, including a title match
		{entities.CourseScience, []string{"STEM Futures Award", "Engineering Grant"}},
		{entities.CourseEngineering, []string{"STEM Futures Award", "Engineering Grant"}},
		{entities.CourseMedical, []string{"Medical Grant"}},
		{entities.CourseBusiness, []string{"Business Grant"}},
		{entities.CourseArts, []string{"Arts Grant"}},
		{"law", []string{"STEM Futures Award", "Engineering Grant", "Medical Grant", "Business Grant", "Arts Grant"}},
	}

	for _, tc := range cases {
		result := MatchScholarships(&entities.Profile{Course: tc.course}, catalog)
		require.Equal(t, tc.want, titles(result), "course=%s", tc.course)
	}
}

func TestMatchScholarships_FinancialNeed(t *testing.T) {
	need := sch("Need Based", []string{"Financial Need"}, "")
	merit := sch("Merit Based", []string{"3.8+ GPA"}, "")
	catalog := []*entities.Scholarship{need, merit}

	for _, income := range []string{entities.IncomeBelow1Lakh, entities.Income1To3Lakh} {
		result := MatchScholarships(&entities.Profile{FamilyIncome: income}, catalog)
		require.Equal(t, []string{"Need Based"}, titles(result), "income=%s", income)
	}

	// higher brackets do not restrict
	result := MatchScholarships(&entities.Profile{FamilyIncome: "above_8lakh"}, catalog)
	require.Len(t, result, 2)
}

func TestMatchScholarships_GenderFilter(t *testing.T) {
	tagged := sch("Girls Grant", []string{"Female"}, "")
	titled := sch("Women Leaders Fund", []string{"Leadership"}, "")
	other := sch("Open Grant", []string{"Undergraduate"}, "")
	catalog := []*entities.Scholarship{tagged, titled, other}

	result := MatchScholarships(&entities.Profile{Gender: "female"}, catalog)
	require.Equal(t, []string{"Girls Grant", "Women Leaders Fund"}, titles(result))

	// only "female" triggers the filter
	result = MatchScholarships(&entities.Profile{Gender: "male"}, catalog)
	require.Len(t, result, 3)
}

func TestMatchScholarships_CategoryFilter(t *testing.T) {
	sc := sch("SC Grant", []string{"Scheduled Caste"}, "")
	obc := sch("OBC Grant", []string{"Other Backward Classes"}, "")
	open := sch("Open Grant", []string{"Undergraduate"}, "")
	catalog := []*entities.Scholarship{sc, obc, open}

	result := MatchScholarships(&entities.Profile{Category: entities.CategorySC}, catalog)
	require.Equal(t, []string{"SC Grant"}, titles(result))

	result = MatchScholarships(&entities.Profile{Category: entities.CategoryST}, catalog)
	require.Equal(t, []string{"SC Grant"}, titles(result))

	result = MatchScholarships(&entities.Profile{Category: entities.CategoryOBC}, catalog)
	require.Equal(t, []string{"OBC Grant"}, titles(result))

	result = MatchScholarships(&entities.Profile{Category: "general"}, catalog)
	require.Len(t, result, 3)
}

func TestMatchScholarships_FiltersNarrowSequentially(t *testing.T) {
	both := sch("UG STEM", []string{"Undergraduate", "Engineering"}, "")
	eduOnly := sch("UG Arts", []string{"Undergraduate", "Humanities"}, "")
	courseOnly := sch("HS STEM", []string{"High School", "Engineering"}, "")
	catalog := []*entities.Scholarship{both, eduOnly, courseOnly}

	result := MatchScholarships(&entities.Profile{
		EducationLevel: entities.EducationUnderGraduate,
		Course:         entities.CourseEngineering,
	}, catalog)

	require.Equal(t, []string{"UG STEM"}, titles(result))
}

func TestMatchScholarships_SpecialStatusBypassesFilters(t *testing.T) {
	ug := sch("UG Grant", []string{"Undergraduate"}, "")
	disability := sch("Disability Fund", []string{"High School", "Disability"}, "")
	orphanDesc := sch("Care Fund", []string{"High School"}, "Support for every orphan and ward of the state.")
	catalog := []*entities.Scholarship{ug, disability, orphanDesc}

	// the education filter drops both special entries, the bonus passes
	// restore them from the full catalog
	result := MatchScholarships(&entities.Profile{
		EducationLevel: entities.EducationUnderGraduate,
		IsDisabled:     true,
		IsOrphan:       true,
	}, catalog)

	require.Equal(t, []string{"UG Grant", "Disability Fund", "Care Fund"}, titles(result))
}

func TestMatchScholarships_SingleParentMatchesOrphanPass(t *testing.T) {
	fund := sch("Family Fund", []string{"Single Parent"}, "")
	other := sch("Other", []string{"Undergraduate"}, "")
	catalog := []*entities.Scholarship{fund, other}

	result := MatchScholarships(&entities.Profile{
		EducationLevel:  entities.EducationUnderGraduate,
		HasSingleParent: true,
	}, catalog)

	require.Equal(t, []string{"Other", "Family Fund"}, titles(result))
}

func TestMatchScholarships_StatePassReplacesUnderscores(t *testing.T) {
	regional := sch("Regional Grant", []string{"High School"}, "Awarded to students from the tamil nadu region.")
	other := sch("Other", []string{"Undergraduate"}, "")
	catalog := []*entities.Scholarship{regional, other}

	result := MatchScholarships(&entities.Profile{
		EducationLevel: entities.EducationUnderGraduate,
		State:          "tamil_nadu",
	}, catalog)

	require.Equal(t, []string{"Other", "Regional Grant"}, titles(result))
}

func TestMatchScholarships_SpecialPassNeverDuplicates(t *testing.T) {
	fund := sch("Disability STEM Fund", []string{"Engineering", "Disability"}, "")
	catalog := []*entities.Scholarship{fund}

	// already matched by the course filter; the disability pass must not
	// append it again
	result := MatchScholarships(&entities.Profile{
		Course:     entities.CourseEngineering,
		IsDisabled: true,
	}, catalog)

	require.Equal(t, []string{"Disability STEM Fund"}, titles(result))
}

func TestMatchScholarships_MatchingIsCaseSensitive(t *testing.T) {
	lower := sch("Lower", []string{"engineering"}, "")
	upper := sch("Upper", []string{"Engineering"}, "")
	catalog := []*entities.Scholarship{lower, upper}

	result := MatchScholarships(&entities.Profile{Course: entities.CourseEngineering}, catalog)
	require.Equal(t, []string{"Upper"}, titles(result))
}

func TestMatchScholarships_DoesNotMutateCatalog(t *testing.T) {
	catalog := seedDataset()
	before := titles(catalog)

	result := MatchScholarships(&entities.Profile{
		Gender:         "female",
		Course:         entities.CourseEngineering,
		EducationLevel: entities.EducationSecondary,
		IsDisabled:     true,
		State:          "kerala",
	}, catalog)

	require.Equal(t, before, titles(catalog))
	if len(result) > 0 {
		result[0] = nil // writing to the result must not touch the catalog
	}
	require.Equal(t, before, titles(catalog))
}

func TestMatchScholarships_BundledDatasetScenarios(t *testing.T) {
	catalog := seedDataset()

	t.Run("female engineering student", func(t *testing.T) {
		result := MatchScholarships(&entities.Profile{
			Gender: "female",
			Course: entities.CourseEngineering,
		}, catalog)
		require.Equal(t, []string{"Women in STEM Scholarship"}, titles(result))
	})

	t.Run("low income family", func(t *testing.T) {
		result := MatchScholarships(&entities.Profile{
			FamilyIncome: entities.IncomeBelow1Lakh,
		}, catalog)
		require.Equal(t, []string{
			"Dell Scholars Program",
			"Jack Kent Cooke Foundation Scholarship",
			"Thurgood Marshall College Fund",
		}, titles(result))
	})

	t.Run("school-level female engineering student matches nothing", func(t *testing.T) {
		// Education keeps only the High School entries, and neither of those
		// carries an engineering tag, so the AND chain empties the result.
		result := MatchScholarships(&entities.Profile{
			EducationLevel: entities.EducationSecondary,
			Course:         entities.CourseEngineering,
			Gender:         "female",
		}, catalog)
		require.Empty(t, result)
	})

	t.Run("undergraduate", func(t *testing.T) {
		result := MatchScholarships(&entities.Profile{
			EducationLevel: entities.EducationUnderGraduate,
		}, catalog)
		require.Equal(t, []string{
			"Dell Scholars Program",
			"American Indian College Fund",
		}, titles(result))
	})
}
