package models

import (
	"time"

	"github.com/google/uuid"
)

// Scholarship is the persisted catalog row. Eligibility is a free-text tag
// list stored as JSON text so the same model works on postgres and the sqlite
// test driver.
type Scholarship struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Provider    string    `gorm:"type:varchar(255);not null"`
	Amount      string    `gorm:"type:varchar(100)"`
	Deadline    string    `gorm:"type:varchar(100)"`
	Eligibility []string  `gorm:"type:text;serializer:json"`
	Description string    `gorm:"type:text"`
	URL         string    `gorm:"type:text"`
	CreatedAt   time.Time
}
