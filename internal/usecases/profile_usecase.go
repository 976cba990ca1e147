package usecases

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"scholar-seeker.backend/internal/domain/entities"
	domainerrors "scholar-seeker.backend/internal/domain/errors"
	"scholar-seeker.backend/internal/domain/repositories"
)

// ProfileUsecase handles eligibility profile reads and upserts
type ProfileUsecase struct {
	profileRepo repositories.ProfileRepository
}

// NewProfileUsecase creates a new profile usecase
func NewProfileUsecase(profileRepo repositories.ProfileRepository) *ProfileUsecase {
	return &ProfileUsecase{profileRepo: profileRepo}
}

// GetProfile returns the user's profile, or an empty profile when none has
// been saved yet
func (u *ProfileUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*entities.Profile, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return &entities.Profile{UserID: userID}, nil
		}
		return nil, err
	}
	return profile, nil
}

// SaveProfile upserts the user's profile from form input. Incomplete profiles
// are saved as-is; completeness is reported alongside rather than enforced.
func (u *ProfileUsecase) SaveProfile(ctx context.Context, userID uuid.UUID, input *entities.UpdateProfileInput) (*entities.Profile, *entities.Completeness, error) {
	if userID == uuid.Nil {
		return nil, nil, domainerrors.ErrUnauthenticated
	}

	profile, err := ProfileFromInput(userID, input)
	if err != nil {
		return nil, nil, err
	}

	if err := u.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, nil, err
	}

	completeness := ProfileCompleteness(profile)
	return profile, &completeness, nil
}

// ProfileFromInput builds a profile entity from form input. The date of birth
// arrives as an ISO date string; a malformed one rejects the whole payload.
func ProfileFromInput(userID uuid.UUID, input *entities.UpdateProfileInput) (*entities.Profile, error) {
	var dob null.Time
	if input.DateOfBirth != "" {
		t, err := time.Parse("2006-01-02", input.DateOfBirth)
		if err != nil {
			return nil, domainerrors.ErrInvalidInput
		}
		dob = null.TimeFrom(t)
	}

	now := time.Now()
	return &entities.Profile{
		UserID:            userID,
		Name:              input.Name,
		DateOfBirth:       dob,
		Gender:            input.Gender,
		Category:          input.Category,
		Email:             input.Email,
		Phone:             input.Phone,
		EducationLevel:    input.EducationLevel,
		Course:            input.Course,
		Board:             input.Board,
		YearOfStudy:       input.YearOfStudy,
		Marks:             input.Marks,
		FamilyIncome:      input.FamilyIncome,
		ParentsOccupation: input.ParentsOccupation,
		State:             input.State,
		District:          input.District,
		Pincode:           input.Pincode,
		IsDisabled:        input.IsDisabled,
		IsOrphan:          input.IsOrphan,
		HasSingleParent:   input.HasSingleParent,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}

// ProfileCompleteness validates the profile stage by stage, mirroring the
// pages of the profile form. The profile is ready to drive matching only when
// every stage is complete.
func ProfileCompleteness(p *entities.Profile) entities.Completeness {
	stages := []entities.StageStatus{
		stageStatus(entities.StagePersonal, map[string]bool{
			"name":        p.Name != "",
			"dateOfBirth": p.DateOfBirth.Valid,
			"gender":      p.Gender != "",
			"category":    p.Category != "",
		}),
		stageStatus(entities.StageAcademic, map[string]bool{
			"educationLevel": p.EducationLevel != "",
			"course":         p.Course != "",
		}),
		stageStatus(entities.StageLocation, map[string]bool{
			"state": p.State != "",
		}),
	}

	complete := true
	for _, s := range stages {
		if !s.Complete {
			complete = false
		}
	}
	return entities.Completeness{Stages: stages, Complete: complete}
}

func stageStatus(stage entities.ProfileStage, fields map[string]bool) entities.StageStatus {
	status := entities.StageStatus{Stage: stage, Complete: true}
	for name, present := range fields {
		if !present {
			status.Complete = false
			status.Missing = append(status.Missing, name)
		}
	}
	sort.Strings(status.Missing)
	return status
}
