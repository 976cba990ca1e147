package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// EducationLevel values recognized by the eligibility matcher
const (
	EducationSecondary       = "secondary"
	EducationSeniorSecondary = "senior_secondary"
	EducationUnderGraduate   = "under_graduate"
	EducationPostGraduate    = "post_graduate"
	EducationPhD             = "phd"
)

// Course values recognized by the eligibility matcher
const (
	CourseScience     = "science"
	CourseEngineering = "engineering"
	CourseMedical     = "medical"
	CourseBusiness    = "business"
	CourseArts        = "arts"
)

// Family income brackets; the two lowest trigger the financial-need filter
const (
	IncomeBelow1Lakh = "below_1lakh"
	Income1To3Lakh   = "1_3lakh"
)

// Affirmative-action categories recognized by the eligibility matcher
const (
	CategorySC  = "sc"
	CategoryST  = "st"
	CategoryOBC = "obc"
)

// Profile represents one user's eligibility-relevant attributes. A profile is
// created empty on first save, keyed by the owning user id, and only ever
// upserted.
type Profile struct {
	UserID            uuid.UUID `json:"userId"`
	Name              string    `json:"name"`
	DateOfBirth       null.Time `json:"dateOfBirth,omitempty"`
	Gender            string    `json:"gender"`
	Category          string    `json:"category"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	EducationLevel    string    `json:"educationLevel"`
	Course            string    `json:"course"`
	Board             string    `json:"board"`
	YearOfStudy       string    `json:"yearOfStudy"`
	Marks             string    `json:"marks"`
	FamilyIncome      string    `json:"familyIncome"`
	ParentsOccupation string    `json:"parentsOccupation"`
	State             string    `json:"state"`
	District          string    `json:"district"`
	Pincode           string    `json:"pincode"`
	IsDisabled        bool      `json:"isDisabled"`
	IsOrphan          bool      `json:"isOrphan"`
	HasSingleParent   bool      `json:"hasSingleParent"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// ProfileStage identifies one page of the multi-stage profile form
type ProfileStage string

const (
	StagePersonal ProfileStage = "personal"
	StageAcademic ProfileStage = "academic"
	StageLocation ProfileStage = "location"
)

// StageStatus reports whether the required fields of one stage are populated
type StageStatus struct {
	Stage    ProfileStage `json:"stage"`
	Complete bool         `json:"complete"`
	Missing  []string     `json:"missing,omitempty"`
}

// Completeness reports stage-by-stage profile validation. The profile is
// considered ready to drive matching only when every stage is complete.
type Completeness struct {
	Stages   []StageStatus `json:"stages"`
	Complete bool          `json:"complete"`
}

// UpdateProfileInput represents the profile upsert payload
type UpdateProfileInput struct {
	Name              string `json:"name"`
	DateOfBirth       string `json:"dateOfBirth"` // ISO-8601 date, empty when unset
	Gender            string `json:"gender"`
	Category          string `json:"category"`
	Email             string `json:"email" binding:"omitempty,email"`
	Phone             string `json:"phone"`
	EducationLevel    string `json:"educationLevel"`
	Course            string `json:"course"`
	Board             string `json:"board"`
	YearOfStudy       string `json:"yearOfStudy"`
	Marks             string `json:"marks"`
	FamilyIncome      string `json:"familyIncome"`
	ParentsOccupation string `json:"parentsOccupation"`
	State             string `json:"state"`
	District          string `json:"district"`
	Pincode           string `json:"pincode"`
	IsDisabled        bool   `json:"isDisabled"`
	IsOrphan          bool   `json:"isOrphan"`
	HasSingleParent   bool   `json:"hasSingleParent"`
}
