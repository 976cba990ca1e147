package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"scholar-seeker.backend/internal/domain/entities"
	domainerrors "scholar-seeker.backend/internal/domain/errors"
	"scholar-seeker.backend/internal/domain/repositories"
	"scholar-seeker.backend/pkg/logger"
	"scholar-seeker.backend/pkg/metrics"
)

// MatchUsecase runs the eligibility matcher against the live catalog
type MatchUsecase struct {
	scholarshipRepo repositories.ScholarshipRepository
	profileRepo     repositories.ProfileRepository
}

// NewMatchUsecase creates a new match usecase
func NewMatchUsecase(
	scholarshipRepo repositories.ScholarshipRepository,
	profileRepo repositories.ProfileRepository,
) *MatchUsecase {
	return &MatchUsecase{
		scholarshipRepo: scholarshipRepo,
		profileRepo:     profileRepo,
	}
}

// MatchForUser matches the user's saved profile against the catalog. A user
// without a saved profile matches as an empty profile (full catalog).
func (u *MatchUsecase) MatchForUser(ctx context.Context, userID uuid.UUID) ([]*entities.Scholarship, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, domainerrors.ErrNotFound) {
			return nil, err
		}
		profile = &entities.Profile{UserID: userID}
	}

	return u.match(ctx, profile)
}

// Preview matches an ad-hoc profile without requiring an identity. The
// matcher itself is identity-agnostic.
func (u *MatchUsecase) Preview(ctx context.Context, profile *entities.Profile) ([]*entities.Scholarship, error) {
	return u.match(ctx, profile)
}

// match loads the catalog and runs the pure matcher. A failed catalog fetch
// must report the catalog as temporarily empty, never return partial results.
func (u *MatchUsecase) match(ctx context.Context, profile *entities.Profile) ([]*entities.Scholarship, error) {
	catalog, err := u.scholarshipRepo.GetAll(ctx)
	if err != nil {
		metrics.MatchRequests.WithLabelValues("unavailable").Inc()
		logger.Error(ctx, "Catalog fetch failed during match", zap.Error(err))
		return nil, domainerrors.ErrRemoteUnavailable
	}

	result := MatchScholarships(profile, catalog)
	metrics.MatchRequests.WithLabelValues("ok").Inc()
	logger.Debug(ctx, "Match completed",
		zap.Int("catalog", len(catalog)),
		zap.Int("matched", len(result)),
	)
	return result, nil
}
