package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"scholar-seeker.backend/internal/domain/entities"
	domainerrors "scholar-seeker.backend/internal/domain/errors"
)

func TestProfileRepository_UpsertAndGet(t *testing.T) {
	db := newTestDB(t)
	createProfileTable(t, db)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	profile := &entities.Profile{
		UserID:         userID,
		Name:           "Asha",
		DateOfBirth:    null.TimeFrom(time.Date(2004, 6, 15, 0, 0, 0, 0, time.UTC)),
		Gender:         "female",
		Category:       entities.CategorySC,
		EducationLevel: entities.EducationUnderGraduate,
		Course:         entities.CourseEngineering,
		FamilyIncome:   entities.IncomeBelow1Lakh,
		State:          "tamil_nadu",
		IsDisabled:     true,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	require.NoError(t, repo.Upsert(ctx, profile))

	got, err := repo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, "Asha", got.Name)
	require.True(t, got.DateOfBirth.Valid)
	require.Equal(t, "2004-06-15", got.DateOfBirth.Time.Format("2006-01-02"))
	require.Equal(t, entities.CourseEngineering, got.Course)
	require.True(t, got.IsDisabled)
}

func TestProfileRepository_UpsertOverwrites(t *testing.T) {
	db := newTestDB(t)
	createProfileTable(t, db)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	require.NoError(t, repo.Upsert(ctx, &entities.Profile{
		UserID: userID,
		Name:   "Before",
		State:  "kerala",
	}))
	require.NoError(t, repo.Upsert(ctx, &entities.Profile{
		UserID:         userID,
		Name:           "After",
		EducationLevel: entities.EducationPostGraduate,
	}))

	got, err := repo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, "After", got.Name)
	require.Equal(t, entities.EducationPostGraduate, got.EducationLevel)
	// overwrite, not merge: fields absent from the second save are cleared
	require.Empty(t, got.State)
}

func TestProfileRepository_DateOfBirthRoundTrip(t *testing.T) {
	db := newTestDB(t)
	createProfileTable(t, db)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	// unset date of birth survives a round trip as unset, stored as ''
	userID := uuid.New()
	require.NoError(t, repo.Upsert(ctx, &entities.Profile{UserID: userID, Name: "No DOB"}))

	got, err := repo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	require.False(t, got.DateOfBirth.Valid)

	var raw string
	require.NoError(t, db.Raw("SELECT date_of_birth FROM profiles WHERE user_id = ?", userID).Scan(&raw).Error)
	require.Equal(t, "", raw)

	// a set date of birth round-trips to the same calendar day
	withDOB := uuid.New()
	require.NoError(t, repo.Upsert(ctx, &entities.Profile{
		UserID:      withDOB,
		DateOfBirth: null.TimeFrom(time.Date(2001, 12, 31, 0, 0, 0, 0, time.UTC)),
	}))

	got, err = repo.GetByUserID(ctx, withDOB)
	require.NoError(t, err)
	require.True(t, got.DateOfBirth.Valid)
	require.Equal(t, "2001-12-31", got.DateOfBirth.Time.Format("2006-01-02"))
}

func TestProfileRepository_GetByUserIDNotFound(t *testing.T) {
	db := newTestDB(t)
	createProfileTable(t, db)
	repo := NewProfileRepository(db)

	_, err := repo.GetByUserID(context.Background(), uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
