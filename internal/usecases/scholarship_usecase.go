package usecases

import (
	"context"

	"github.com/google/uuid"
	"scholar-seeker.backend/internal/domain/entities"
	"scholar-seeker.backend/internal/domain/repositories"
	"scholar-seeker.backend/pkg/utils"
)

// ScholarshipUsecase exposes catalog reads
type ScholarshipUsecase struct {
	scholarshipRepo repositories.ScholarshipRepository
}

// NewScholarshipUsecase creates a new scholarship usecase
func NewScholarshipUsecase(scholarshipRepo repositories.ScholarshipRepository) *ScholarshipUsecase {
	return &ScholarshipUsecase{scholarshipRepo: scholarshipRepo}
}

// List returns a page of the catalog, optionally filtered by a title search
func (u *ScholarshipUsecase) List(ctx context.Context, input *entities.ListScholarshipsInput) ([]*entities.Scholarship, *utils.PaginationMeta, error) {
	params := utils.GetPaginationParams(input.Page, input.Limit)

	scholarships, total, err := u.scholarshipRepo.List(ctx, input.Search, params)
	if err != nil {
		return nil, nil, err
	}

	meta := utils.CalculateMeta(total, params.Page, params.Limit)
	return scholarships, &meta, nil
}

// GetByID returns a single catalog entry
func (u *ScholarshipUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.Scholarship, error) {
	return u.scholarshipRepo.GetByID(ctx, id)
}
