package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"scholar-seeker.backend/internal/domain/entities"
	domainerrors "scholar-seeker.backend/internal/domain/errors"
	"scholar-seeker.backend/internal/infrastructure/models"
)

// BookmarkRepository implements bookmark persistence
type BookmarkRepository struct {
	db *gorm.DB
}

// NewBookmarkRepository creates a new bookmark repository
func NewBookmarkRepository(db *gorm.DB) *BookmarkRepository {
	return &BookmarkRepository{db: db}
}

// Create inserts a bookmark row
func (r *BookmarkRepository) Create(ctx context.Context, bookmark *entities.Bookmark) error {
	m := &models.Bookmark{
		ID:            bookmark.ID,
		UserID:        bookmark.UserID,
		ScholarshipID: bookmark.ScholarshipID,
		CreatedAt:     bookmark.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// DeleteByPair removes the bookmark for a (user, scholarship) pair
func (r *BookmarkRepository) DeleteByPair(ctx context.Context, userID, scholarshipID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND scholarship_id = ?", userID, scholarshipID).
		Delete(&models.Bookmark{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// GetByPair gets the bookmark for a (user, scholarship) pair
func (r *BookmarkRepository) GetByPair(ctx context.Context, userID, scholarshipID uuid.UUID) (*entities.Bookmark, error) {
	var m models.Bookmark
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND scholarship_id = ?", userID, scholarshipID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return bookmarkToEntity(&m), nil
}

// GetByUserID lists a user's bookmarks, oldest first
func (r *BookmarkRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Bookmark, error) {
	var ms []models.Bookmark
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	out := make([]*entities.Bookmark, 0, len(ms))
	for i := range ms {
		out = append(out, bookmarkToEntity(&ms[i]))
	}
	return out, nil
}

func bookmarkToEntity(m *models.Bookmark) *entities.Bookmark {
	return &entities.Bookmark{
		ID:            m.ID,
		UserID:        m.UserID,
		ScholarshipID: m.ScholarshipID,
		CreatedAt:     m.CreatedAt,
	}
}

// ApplicationRepository implements application persistence
type ApplicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create inserts an application row. The unique index on the pair surfaces a
// concurrent duplicate as ErrAlreadyExists.
func (r *ApplicationRepository) Create(ctx context.Context, application *entities.Application) error {
	m := &models.Application{
		ID:            application.ID,
		UserID:        application.UserID,
		ScholarshipID: application.ScholarshipID,
		Status:        application.Status,
		CreatedAt:     application.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// GetByPair gets the application for a (user, scholarship) pair
func (r *ApplicationRepository) GetByPair(ctx context.Context, userID, scholarshipID uuid.UUID) (*entities.Application, error) {
	var m models.Application
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND scholarship_id = ?", userID, scholarshipID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return applicationToEntity(&m), nil
}

// GetByUserID lists a user's applications, oldest first
func (r *ApplicationRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Application, error) {
	var ms []models.Application
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	out := make([]*entities.Application, 0, len(ms))
	for i := range ms {
		out = append(out, applicationToEntity(&ms[i]))
	}
	return out, nil
}

func applicationToEntity(m *models.Application) *entities.Application {
	return &entities.Application{
		ID:            m.ID,
		UserID:        m.UserID,
		ScholarshipID: m.ScholarshipID,
		Status:        m.Status,
		CreatedAt:     m.CreatedAt,
	}
}
