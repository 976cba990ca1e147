package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"scholar-seeker.backend/internal/domain/entities"
	domainerrors "scholar-seeker.backend/internal/domain/errors"
	"scholar-seeker.backend/internal/infrastructure/models"
)

// dateOfBirthLayout is the ISO-8601 date form used at the storage boundary.
// Sub-day precision is deliberately dropped.
const dateOfBirthLayout = "2006-01-02"

// ProfileRepository implements profile persistence. The entity/model mapping
// here is the adapter between the in-memory profile shape and the flat
// storage record.
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// GetByUserID gets the profile owned by a user
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Profile, error) {
	var m models.Profile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return profileToEntity(&m), nil
}

// Upsert creates or overwrites the profile for its owning user
func (r *ProfileRepository) Upsert(ctx context.Context, profile *entities.Profile) error {
	m := profileToModel(profile)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(m).Error
}

// profileToModel maps the in-memory profile onto the flat storage record.
// Unset optional strings are stored as empty string, never NULL, and an unset
// date of birth becomes "".
func profileToModel(p *entities.Profile) *models.Profile {
	dob := ""
	if p.DateOfBirth.Valid {
		dob = p.DateOfBirth.Time.Format(dateOfBirthLayout)
	}

	return &models.Profile{
		UserID:            p.UserID,
		Name:              p.Name,
		DateOfBirth:       dob,
		Gender:            p.Gender,
		Category:          p.Category,
		Email:             p.Email,
		Phone:             p.Phone,
		EducationLevel:    p.EducationLevel,
		Course:            p.Course,
		Board:             p.Board,
		YearOfStudy:       p.YearOfStudy,
		Marks:             p.Marks,
		FamilyIncome:      p.FamilyIncome,
		ParentsOccupation: p.ParentsOccupation,
		State:             p.State,
		District:          p.District,
		Pincode:           p.Pincode,
		IsDisabled:        p.IsDisabled,
		IsOrphan:          p.IsOrphan,
		HasSingleParent:   p.HasSingleParent,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

// profileToEntity is the inverse mapping; absent values become the zero value
// for their field type.
func profileToEntity(m *models.Profile) *entities.Profile {
	var dob null.Time
	if m.DateOfBirth != "" {
		if t, err := time.Parse(dateOfBirthLayout, m.DateOfBirth); err == nil {
			dob = null.TimeFrom(t)
		}
	}

	return &entities.Profile{
		UserID:            m.UserID,
		Name:              m.Name,
		DateOfBirth:       dob,
		Gender:            m.Gender,
		Category:          m.Category,
		Email:             m.Email,
		Phone:             m.Phone,
		EducationLevel:    m.EducationLevel,
		Course:            m.Course,
		Board:             m.Board,
		YearOfStudy:       m.YearOfStudy,
		Marks:             m.Marks,
		FamilyIncome:      m.FamilyIncome,
		ParentsOccupation: m.ParentsOccupation,
		State:             m.State,
		District:          m.District,
		Pincode:           m.Pincode,
		IsDisabled:        m.IsDisabled,
		IsOrphan:          m.IsOrphan,
		HasSingleParent:   m.HasSingleParent,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}
