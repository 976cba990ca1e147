package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the persisted profile row, keyed by the owning user id. Every
// optional string column is total: unset values are stored as empty string,
// never NULL, and date_of_birth holds an ISO-8601 date string or "".
type Profile struct {
	UserID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name              string    `gorm:"type:varchar(255);not null;default:''"`
	DateOfBirth       string    `gorm:"type:varchar(10);not null;default:''"`
	Gender            string    `gorm:"type:varchar(50);not null;default:''"`
	Category          string    `gorm:"type:varchar(50);not null;default:''"`
	Email             string    `gorm:"type:varchar(255);not null;default:''"`
	Phone             string    `gorm:"type:varchar(50);not null;default:''"`
	EducationLevel    string    `gorm:"type:varchar(50);not null;default:''"`
	Course            string    `gorm:"type:varchar(50);not null;default:''"`
	Board             string    `gorm:"type:varchar(255);not null;default:''"`
	YearOfStudy       string    `gorm:"type:varchar(50);not null;default:''"`
	Marks             string    `gorm:"type:varchar(50);not null;default:''"`
	FamilyIncome      string    `gorm:"type:varchar(50);not null;default:''"`
	ParentsOccupation string    `gorm:"type:varchar(255);not null;default:''"`
	State             string    `gorm:"type:varchar(100);not null;default:''"`
	District          string    `gorm:"type:varchar(100);not null;default:''"`
	Pincode           string    `gorm:"type:varchar(20);not null;default:''"`
	IsDisabled        bool      `gorm:"not null;default:false"`
	IsOrphan          bool      `gorm:"not null;default:false"`
	HasSingleParent   bool      `gorm:"not null;default:false"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
