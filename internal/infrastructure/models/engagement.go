package models

import (
	"time"

	"github.com/google/uuid"
)

// Bookmark is the persisted bookmark row. The composite unique index makes
// (user_id, scholarship_id) the logical identity of the record.
type Bookmark struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_bookmarks_user_scholarship"`
	ScholarshipID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_bookmarks_user_scholarship"`
	CreatedAt     time.Time
}

// Application is the persisted application row. The unique index is the hard
// backstop against duplicate applications for the same pair.
type Application struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_applications_user_scholarship"`
	ScholarshipID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_applications_user_scholarship"`
	Status        string    `gorm:"type:varchar(50);not null;default:'applied'"`
	CreatedAt     time.Time
}
