package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"scholar-seeker.backend/internal/domain/entities"
	domainerrors "scholar-seeker.backend/internal/domain/errors"
	"scholar-seeker.backend/internal/infrastructure/models"
	"scholar-seeker.backend/pkg/utils"
)

// ScholarshipRepository implements catalog data access
type ScholarshipRepository struct {
	db *gorm.DB
}

// NewScholarshipRepository creates a new scholarship repository
func NewScholarshipRepository(db *gorm.DB) *ScholarshipRepository {
	return &ScholarshipRepository{db: db}
}

// GetByID gets a scholarship by ID
func (r *ScholarshipRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Scholarship, error) {
	var m models.Scholarship
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return scholarshipToEntity(&m), nil
}

// GetAll returns the full catalog in insertion order
func (r *ScholarshipRepository) GetAll(ctx context.Context) ([]*entities.Scholarship, error) {
	var ms []models.Scholarship
	if err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}

	out := make([]*entities.Scholarship, 0, len(ms))
	for i := range ms {
		out = append(out, scholarshipToEntity(&ms[i]))
	}
	return out, nil
}

// List returns a page of the catalog with optional free-text search over
// title and description
func (r *ScholarshipRepository) List(ctx context.Context, search string, p utils.PaginationParams) ([]*entities.Scholarship, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Scholarship{})

	if search != "" {
		term := "%" + search + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", term, term)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at ASC, id ASC")
	if p.Limit > 0 {
		query = query.Offset(p.CalculateOffset()).Limit(p.Limit)
	}

	var ms []models.Scholarship
	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	out := make([]*entities.Scholarship, 0, len(ms))
	for i := range ms {
		out = append(out, scholarshipToEntity(&ms[i]))
	}
	return out, total, nil
}

// Count returns the number of catalog rows
func (r *ScholarshipRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Scholarship{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// CreateBatch inserts scholarships in a single transaction. Used by seeding
// only.
func (r *ScholarshipRepository) CreateBatch(ctx context.Context, scholarships []*entities.Scholarship) error {
	if len(scholarships) == 0 {
		return nil
	}

	ms := make([]models.Scholarship, 0, len(scholarships))
	for _, s := range scholarships {
		ms = append(ms, models.Scholarship{
			ID:          s.ID,
			Title:       s.Title,
			Provider:    s.Provider,
			Amount:      s.Amount,
			Deadline:    s.Deadline,
			Eligibility: s.Eligibility,
			Description: s.Description,
			URL:         s.URL,
			CreatedAt:   s.CreatedAt,
		})
	}
	return r.db.WithContext(ctx).Create(&ms).Error
}

func scholarshipToEntity(m *models.Scholarship) *entities.Scholarship {
	return &entities.Scholarship{
		ID:          m.ID,
		Title:       m.Title,
		Provider:    m.Provider,
		Amount:      m.Amount,
		Deadline:    m.Deadline,
		Eligibility: m.Eligibility,
		Description: m.Description,
		URL:         m.URL,
		CreatedAt:   m.CreatedAt,
	}
}
