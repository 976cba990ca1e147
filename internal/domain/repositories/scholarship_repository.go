package repositories

import (
	"context"

	"github.com/google/uuid"
	"scholar-seeker.backend/internal/domain/entities"
	"scholar-seeker.backend/pkg/utils"
)

// ScholarshipRepository defines catalog read access plus the batch insert used
// by seeding. End users never mutate the catalog.
type ScholarshipRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Scholarship, error)
	GetAll(ctx context.Context) ([]*entities.Scholarship, error)
	List(ctx context.Context, search string, p utils.PaginationParams) ([]*entities.Scholarship, int64, error)
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, scholarships []*entities.Scholarship) error
}
