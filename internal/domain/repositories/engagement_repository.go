package repositories

import (
	"context"

	"github.com/google/uuid"
	"scholar-seeker.backend/internal/domain/entities"
)

// BookmarkRepository defines bookmark persistence. (user_id, scholarship_id)
// is the logical uniqueness pair.
type BookmarkRepository interface {
	Create(ctx context.Context, bookmark *entities.Bookmark) error
	DeleteByPair(ctx context.Context, userID, scholarshipID uuid.UUID) error
	GetByPair(ctx context.Context, userID, scholarshipID uuid.UUID) (*entities.Bookmark, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Bookmark, error)
}

// ApplicationRepository defines application persistence. Applications have no
// delete or update path in normal operation.
type ApplicationRepository interface {
	Create(ctx context.Context, application *entities.Application) error
	GetByPair(ctx context.Context, userID, scholarshipID uuid.UUID) (*entities.Application, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Application, error)
}
