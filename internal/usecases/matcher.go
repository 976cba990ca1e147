package usecases

import (
	"strings"

	"github.com/google/uuid"
	"scholar-seeker.backend/internal/domain/entities"
)

// MatchScholarships filters the catalog against a profile. Pure and
// deterministic: the catalog is never mutated and the result is a fresh
// slice with no duplicate ids.
//
// The algorithm runs in two phases. Restrictive predicates narrow the result
// set in sequence (logical AND), each skipped entirely when its triggering
// profile field is unset. Special-status passes then scan the original full
// catalog and append matches not already present, so that disability, orphan,
// single-parent and state eligibility can never be excluded by an unrelated
// narrowing filter. All tag and title matching is case-sensitive substring
// containment.
func MatchScholarships(profile *entities.Profile, catalog []*entities.Scholarship) []*entities.Scholarship {
	result := make([]*entities.Scholarship, 0, len(catalog))
	seen := make(map[uuid.UUID]bool, len(catalog))
	for _, s := range catalog {
		if seen[s.ID] {
			continue
		}
		seen[s.ID] = true
		result = append(result, s)
	}

	result = filterByEducationLevel(result, profile.EducationLevel)
	result = filterByCourse(result, profile.Course)
	result = filterByFinancialNeed(result, profile.FamilyIncome)
	result = filterByGender(result, profile.Gender)
	result = filterByCategory(result, profile.Category)

	if profile.IsDisabled {
		result = appendSpecialMatches(result, catalog,
			"Disability", "Differently Abled", "Special Needs")
	}
	if profile.IsOrphan || profile.HasSingleParent {
		result = appendSpecialMatches(result, catalog, "Orphan", "Single Parent")
	}
	if profile.State != "" {
		state := strings.ReplaceAll(profile.State, "_", " ")
		result = appendSpecialMatches(result, catalog, state)
	}

	return result
}

func filterByEducationLevel(in []*entities.Scholarship, level string) []*entities.Scholarship {
	var family string
	switch level {
	case entities.EducationSecondary, entities.EducationSeniorSecondary:
		family = "High School"
	case entities.EducationUnderGraduate:
		family = "Undergraduate"
	case entities.EducationPostGraduate, entities.EducationPhD:
		family = "Graduate"
	default:
		return in
	}

	out := in[:0:0]
	for _, s := range in {
		if anyTagContains(s, family) {
			out = append(out, s)
		}
	}
	return out
}

func filterByCourse(in []*entities.Scholarship, course string) []*entities.Scholarship {
	switch course {
	case entities.CourseScience, entities.CourseEngineering:
		out := in[:0:0]
		for _, s := range in {
			if anyTagContains(s, "Science", "Engineering", "STEM") || strings.Contains(s.Title, "STEM") {
				out = append(out, s)
			}
		}
		return out
	case entities.CourseMedical:
		return filterByTags(in, "Medical", "Health Sciences")
	case entities.CourseBusiness:
		return filterByTags(in, "Business", "Management")
	case entities.CourseArts:
		return filterByTags(in, "Arts", "Humanities")
	default:
		return in
	}
}

func filterByFinancialNeed(in []*entities.Scholarship, familyIncome string) []*entities.Scholarship {
	if familyIncome != entities.IncomeBelow1Lakh && familyIncome != entities.Income1To3Lakh {
		return in
	}
	return filterByTags(in, "Financial Need")
}

func filterByGender(in []*entities.Scholarship, gender string) []*entities.Scholarship {
	if gender != "female" {
		return in
	}

	out := in[:0:0]
	for _, s := range in {
		if anyTagContains(s, "Female") || strings.Contains(s.Title, "Women") {
			out = append(out, s)
		}
	}
	return out
}

func filterByCategory(in []*entities.Scholarship, category string) []*entities.Scholarship {
	switch category {
	case entities.CategorySC, entities.CategoryST:
		return filterByTags(in, "SC", "ST", "Scheduled Caste", "Scheduled Tribe")
	case entities.CategoryOBC:
		return filterByTags(in, "OBC", "Other Backward Classes")
	default:
		return in
	}
}

// filterByTags keeps scholarships with at least one eligibility tag containing
// any of the given substrings
func filterByTags(in []*entities.Scholarship, subs ...string) []*entities.Scholarship {
	out := in[:0:0]
	for _, s := range in {
		if anyTagContains(s, subs...) {
			out = append(out, s)
		}
	}
	return out
}

// appendSpecialMatches scans the full catalog for scholarships whose
// eligibility tags or description contain any of the given substrings and
// appends those not already present, preserving first-seen order
func appendSpecialMatches(result, catalog []*entities.Scholarship, subs ...string) []*entities.Scholarship {
	seen := make(map[uuid.UUID]bool, len(result))
	for _, s := range result {
		seen[s.ID] = true
	}

	for _, s := range catalog {
		if seen[s.ID] {
			continue
		}
		if anyTagContains(s, subs...) || containsAny(s.Description, subs...) {
			seen[s.ID] = true
			result = append(result, s)
		}
	}
	return result
}

func anyTagContains(s *entities.Scholarship, subs ...string) bool {
	for _, tag := range s.Eligibility {
		if containsAny(tag, subs...) {
			return true
		}
	}
	return false
}

func containsAny(text string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(text, sub) {
			return true
		}
	}
	return false
}
