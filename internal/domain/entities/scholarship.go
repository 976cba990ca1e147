package entities

import (
	"time"

	"github.com/google/uuid"
)

// Scholarship represents one funding opportunity in the catalog. Records are
// created by seeding or external administration and are read-only for end
// users.
type Scholarship struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Provider    string    `json:"provider"`
	Amount      string    `json:"amount"`
	Deadline    string    `json:"deadline"`
	Eligibility []string  `json:"eligibility"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ListScholarshipsInput represents catalog list query parameters
type ListScholarshipsInput struct {
	Search string `form:"search"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}
