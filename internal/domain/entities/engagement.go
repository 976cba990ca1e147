package entities

import (
	"time"

	"github.com/google/uuid"
)

// BookmarkState is the outcome of a bookmark toggle
type BookmarkState string

const (
	BookmarkAdded   BookmarkState = "added"
	BookmarkRemoved BookmarkState = "removed"
)

// ApplicationStatus is the free-text status of an application record
const ApplicationStatusApplied = "applied"

// ApplyOutcome distinguishes a first apply from an idempotent re-apply
type ApplyOutcome string

const (
	ApplyOutcomeApplied        ApplyOutcome = "applied"
	ApplyOutcomeAlreadyApplied ApplyOutcome = "already_applied"
)

// Bookmark links a user to a saved scholarship. At most one bookmark exists
// per (user, scholarship) pair; toggling off deletes the row, no history kept.
type Bookmark struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"userId"`
	ScholarshipID uuid.UUID `json:"scholarshipId"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Application records that a user applied to a scholarship. Immutable once
// created; at most one exists per (user, scholarship) pair.
type Application struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"userId"`
	ScholarshipID uuid.UUID `json:"scholarshipId"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ApplyResult is returned by the apply operation. URL is the external
// application link the caller should open regardless of outcome.
type ApplyResult struct {
	Outcome     ApplyOutcome `json:"outcome"`
	Application *Application `json:"application"`
	URL         string       `json:"url"`
}

// DashboardSummary aggregates a user's engagement state
type DashboardSummary struct {
	SavedCount        int            `json:"savedCount"`
	AppliedCount      int            `json:"appliedCount"`
	NextDeadline      string         `json:"nextDeadline,omitempty"`
	NextDeadlineTitle string         `json:"nextDeadlineTitle,omitempty"`
	Saved             []*Scholarship `json:"saved"`
	Applied           []*Scholarship `json:"applied"`
}
