package repositories

import (
	"context"

	"github.com/google/uuid"
	"scholar-seeker.backend/internal/domain/entities"
)

// ProfileRepository defines profile persistence keyed by user id. Profiles are
// upserted, never deleted.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Profile, error)
	Upsert(ctx context.Context, profile *entities.Profile) error
}
