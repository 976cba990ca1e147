package seed

import (
	"scholar-seeker.backend/internal/domain/entities"
)

// Dataset returns the bundled scholarship catalog used to populate an empty
// store. IDs and timestamps are assigned at insert time.
func Dataset() []*entities.Scholarship {
	return []*entities.Scholarship{
		{
			Title:       "National Merit Scholarship",
			Provider:    "National Merit Scholarship Corporation",
			Amount:      "$2,500",
			Deadline:    "October 15, 2025",
			Eligibility: []string{"High School", "3.8+ GPA", "U.S. Citizen"},
			Description: "The National Merit Scholarship Program is an academic competition for recognition and scholarships that began in 1955. High school students enter the program by taking the PSAT/NMSQT.",
			URL:         "https://example.com/scholarship1",
		},
		{
			Title:       "Coca-Cola Scholars Program",
			Provider:    "The Coca-Cola Company",
			Amount:      "$20,000",
			Deadline:    "August 31, 2025",
			Eligibility: []string{"High School", "Leadership", "Community Service"},
			Description: "The Coca-Cola Scholars Program scholarship is an achievement-based scholarship awarded to graduating high school seniors. Students are recognized for their capacity to lead and serve, as well as their commitment to making a significant impact on their schools and communities.",
			URL:         "https://example.com/scholarship2",
		},
		{
			Title:       "Dell Scholars Program",
			Provider:    "Michael & Susan Dell Foundation",
			Amount:      "$20,000",
			Deadline:    "December 1, 2025",
			Eligibility: []string{"Financial Need", "2.4+ GPA", "Undergraduate"},
			Description: "The Dell Scholars Program is a scholarship and college completion program that recognizes students who have overcome significant obstacles to pursue their educations.",
			URL:         "https://example.com/scholarship3",
		},
		{
			Title:       "Gates Scholarship",
			Provider:    "Bill & Melinda Gates Foundation",
			Amount:      "Full Tuition",
			Deadline:    "September 15, 2025",
			Eligibility: []string{"Minority", "3.3+ GPA", "Pell Grant Eligible"},
			Description: "The Gates Scholarship is a highly selective, full scholarship for exceptional, Pell-eligible, minority, high school seniors. The scholarship will be awarded to 300 top student leaders each year with the intent of promoting their academic excellence.",
			URL:         "https://example.com/scholarship4",
		},
		{
			Title:       "Women in STEM Scholarship",
			Provider:    "Society of Women Engineers",
			Amount:      "$5,000",
			Deadline:    "February 15, 2026",
			Eligibility: []string{"Female", "Engineering", "Computer Science"},
			Description: "The Women in STEM Scholarship supports female students pursuing degrees in science, technology, engineering, and mathematics fields to promote gender diversity in these industries.",
			URL:         "https://example.com/scholarship5",
		},
		{
			Title:       "Hispanic Heritage Foundation Youth Awards",
			Provider:    "Hispanic Heritage Foundation",
			Amount:      "$3,500",
			Deadline:    "November 30, 2025",
			Eligibility: []string{"Hispanic/Latino", "3.0+ GPA", "Community Service"},
			Description: "The Youth Awards honors Latino high school seniors who excel in the classroom and community and for their excellence in various categories including Business & Entrepreneurship, Community Service, Education, Engineering, Healthcare & Science, Media & Entertainment, and Technology.",
			URL:         "https://example.com/scholarship6",
		},
		{
			Title:       "Jack Kent Cooke Foundation Scholarship",
			Provider:    "Jack Kent Cooke Foundation",
			Amount:      "$55,000",
			Deadline:    "October 30, 2025",
			Eligibility: []string{"Financial Need", "3.5+ GPA", "Graduate"},
			Description: "The Jack Kent Cooke Foundation College Scholarship Program is an undergraduate scholarship program available to high-achieving high school seniors with financial need who seek to attend the nation's best four-year colleges and universities.",
			URL:         "https://example.com/scholarship7",
		},
		{
			Title:       "Thurgood Marshall College Fund",
			Provider:    "Thurgood Marshall College Fund",
			Amount:      "$4,700",
			Deadline:    "May 31, 2026",
			Eligibility: []string{"HBCU Student", "3.0+ GPA", "Financial Need"},
			Description: "The Thurgood Marshall College Fund provides scholarships exclusively to students attending Historically Black Colleges and Universities (HBCUs) and Predominantly Black Institutions (PBIs).",
			URL:         "https://example.com/scholarship8",
		},
		{
			Title:       "American Indian College Fund",
			Provider:    "American Indian College Fund",
			Amount:      "$6,000",
			Deadline:    "May 31, 2026",
			Eligibility: []string{"Native American", "2.0+ GPA", "Undergraduate"},
			Description: "The American Indian College Fund provides scholarships to American Indian and Alaska Native college students seeking undergraduate and graduate degrees at tribal colleges, nonprofit colleges, and universities.",
			URL:         "https://example.com/scholarship9",
		},
	}
}
