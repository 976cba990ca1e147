package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"scholar-seeker.backend/internal/domain/entities"
	domainerrors "scholar-seeker.backend/internal/domain/errors"
	"scholar-seeker.backend/internal/domain/repositories"
	"scholar-seeker.backend/pkg/logger"
	"scholar-seeker.backend/pkg/metrics"
	"scholar-seeker.backend/pkg/redis"
	"scholar-seeker.backend/pkg/utils"
)

// deadlineLayout matches the free-text deadline format of the bundled
// catalog, e.g. "October 15, 2025". Unparseable deadlines are skipped when
// computing the dashboard's next deadline.
const deadlineLayout = "January 2, 2006"

// engagementCache is the advisory per-user engagement cache. The database is
// always authoritative; cache failures fall through to the repositories.
type engagementCache interface {
	Get(ctx context.Context, userID string) (*redis.EngagementState, error)
	Put(ctx context.Context, userID string, state *redis.EngagementState) error
	Invalidate(ctx context.Context, userID string) error
}

// EngagementUsecase tracks which scholarships a user has bookmarked and
// applied to
type EngagementUsecase struct {
	bookmarkRepo    repositories.BookmarkRepository
	applicationRepo repositories.ApplicationRepository
	scholarshipRepo repositories.ScholarshipRepository
	cache           engagementCache
}

// NewEngagementUsecase creates a new engagement usecase. The cache may be nil
// when Redis is not configured.
func NewEngagementUsecase(
	bookmarkRepo repositories.BookmarkRepository,
	applicationRepo repositories.ApplicationRepository,
	scholarshipRepo repositories.ScholarshipRepository,
	cache *redis.EngagementCache,
) *EngagementUsecase {
	u := &EngagementUsecase{
		bookmarkRepo:    bookmarkRepo,
		applicationRepo: applicationRepo,
		scholarshipRepo: scholarshipRepo,
	}
	if cache != nil {
		u.cache = cache
	}
	return u
}

// ToggleBookmark creates the bookmark for (user, scholarship) if absent and
// deletes it if present. No history is kept.
func (u *EngagementUsecase) ToggleBookmark(ctx context.Context, userID, scholarshipID uuid.UUID) (entities.BookmarkState, error) {
	if userID == uuid.Nil {
		return "", domainerrors.ErrUnauthenticated
	}

	if _, err := u.scholarshipRepo.GetByID(ctx, scholarshipID); err != nil {
		return "", err
	}

	_, err := u.bookmarkRepo.GetByPair(ctx, userID, scholarshipID)
	switch {
	case err == nil:
		if err := u.bookmarkRepo.DeleteByPair(ctx, userID, scholarshipID); err != nil {
			// A concurrent toggle already removed it; the end state matches
			if !errors.Is(err, domainerrors.ErrNotFound) {
				return "", err
			}
		}
		u.invalidateCache(ctx, userID)
		metrics.EngagementActions.WithLabelValues("bookmark", "removed").Inc()
		return entities.BookmarkRemoved, nil

	case errors.Is(err, domainerrors.ErrNotFound):
		bookmark := &entities.Bookmark{
			ID:            utils.GenerateUUIDv7(),
			UserID:        userID,
			ScholarshipID: scholarshipID,
			CreatedAt:     time.Now(),
		}
		if err := u.bookmarkRepo.Create(ctx, bookmark); err != nil {
			// A concurrent toggle already added it; the end state matches
			if !errors.Is(err, domainerrors.ErrAlreadyExists) {
				return "", err
			}
		}
		u.invalidateCache(ctx, userID)
		metrics.EngagementActions.WithLabelValues("bookmark", "added").Inc()
		return entities.BookmarkAdded, nil

	default:
		return "", err
	}
}

// Apply records an application for (user, scholarship). Idempotent: a second
// apply is a success that reports the existing record and never creates a
// duplicate row. On failure no state is mutated.
func (u *EngagementUsecase) Apply(ctx context.Context, userID, scholarshipID uuid.UUID) (*entities.ApplyResult, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	scholarship, err := u.scholarshipRepo.GetByID(ctx, scholarshipID)
	if err != nil {
		return nil, err
	}

	// Re-read current state immediately before the create
	existing, err := u.applicationRepo.GetByPair(ctx, userID, scholarshipID)
	if err == nil {
		metrics.EngagementActions.WithLabelValues("apply", "already_applied").Inc()
		return &entities.ApplyResult{
			Outcome:     entities.ApplyOutcomeAlreadyApplied,
			Application: existing,
			URL:         scholarship.URL,
		}, nil
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	application := &entities.Application{
		ID:            utils.GenerateUUIDv7(),
		UserID:        userID,
		ScholarshipID: scholarshipID,
		Status:        entities.ApplicationStatusApplied,
		CreatedAt:     time.Now(),
	}
	if err := u.applicationRepo.Create(ctx, application); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			// Lost a race with a concurrent apply; the store's unique
			// constraint held, so surface the winner's record as success
			existing, err := u.applicationRepo.GetByPair(ctx, userID, scholarshipID)
			if err != nil {
				return nil, err
			}
			metrics.EngagementActions.WithLabelValues("apply", "already_applied").Inc()
			return &entities.ApplyResult{
				Outcome:     entities.ApplyOutcomeAlreadyApplied,
				Application: existing,
				URL:         scholarship.URL,
			}, nil
		}
		return nil, err
	}

	u.invalidateCache(ctx, userID)
	metrics.EngagementActions.WithLabelValues("apply", "applied").Inc()
	return &entities.ApplyResult{
		Outcome:     entities.ApplyOutcomeApplied,
		Application: application,
		URL:         scholarship.URL,
	}, nil
}

// IsBookmarked reports whether the user has bookmarked the scholarship
func (u *EngagementUsecase) IsBookmarked(ctx context.Context, userID, scholarshipID uuid.UUID) (bool, error) {
	if userID == uuid.Nil {
		return false, domainerrors.ErrUnauthenticated
	}

	if state := u.cachedState(ctx, userID); state != nil {
		return containsID(state.BookmarkedIDs, scholarshipID), nil
	}

	_, err := u.bookmarkRepo.GetByPair(ctx, userID, scholarshipID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// HasApplied reports whether the user has applied to the scholarship
func (u *EngagementUsecase) HasApplied(ctx context.Context, userID, scholarshipID uuid.UUID) (bool, error) {
	if userID == uuid.Nil {
		return false, domainerrors.ErrUnauthenticated
	}

	if state := u.cachedState(ctx, userID); state != nil {
		return containsID(state.AppliedIDs, scholarshipID), nil
	}

	_, err := u.applicationRepo.GetByPair(ctx, userID, scholarshipID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ListBookmarks returns the scholarships the user has saved, oldest bookmark
// first
func (u *EngagementUsecase) ListBookmarks(ctx context.Context, userID uuid.UUID) ([]*entities.Scholarship, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	bookmarks, err := u.bookmarkRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]*entities.Scholarship, 0, len(bookmarks))
	for _, b := range bookmarks {
		s, err := u.scholarshipRepo.GetByID(ctx, b.ScholarshipID)
		if err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				continue
			}
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// ListApplications returns the user's application records, oldest first
func (u *EngagementUsecase) ListApplications(ctx context.Context, userID uuid.UUID) ([]*entities.Application, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.ErrUnauthenticated
	}
	return u.applicationRepo.GetByUserID(ctx, userID)
}

// Dashboard aggregates the user's saved and applied scholarships plus the
// nearest upcoming deadline among saved ones
func (u *EngagementUsecase) Dashboard(ctx context.Context, userID uuid.UUID) (*entities.DashboardSummary, error) {
	saved, err := u.ListBookmarks(ctx, userID)
	if err != nil {
		return nil, err
	}

	applications, err := u.ListApplications(ctx, userID)
	if err != nil {
		return nil, err
	}

	applied := make([]*entities.Scholarship, 0, len(applications))
	for _, a := range applications {
		s, err := u.scholarshipRepo.GetByID(ctx, a.ScholarshipID)
		if err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				continue
			}
			return nil, err
		}
		applied = append(applied, s)
	}

	summary := &entities.DashboardSummary{
		SavedCount:   len(saved),
		AppliedCount: len(applied),
		Saved:        saved,
		Applied:      applied,
	}

	var nextAt time.Time
	for _, s := range saved {
		t, err := time.Parse(deadlineLayout, s.Deadline)
		if err != nil {
			continue
		}
		if nextAt.IsZero() || t.Before(nextAt) {
			nextAt = t
			summary.NextDeadline = s.Deadline
			summary.NextDeadlineTitle = s.Title
		}
	}

	return summary, nil
}

// cachedState returns the cached engagement state, loading and caching it on
// a miss. Returns nil whenever the cache cannot answer; callers then use the
// repositories directly.
func (u *EngagementUsecase) cachedState(ctx context.Context, userID uuid.UUID) *redis.EngagementState {
	if u.cache == nil {
		return nil
	}

	state, err := u.cache.Get(ctx, userID.String())
	if err != nil {
		logger.Warn(ctx, "Engagement cache read failed", zap.Error(err))
		return nil
	}
	if state != nil {
		return state
	}

	bookmarks, err := u.bookmarkRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil
	}
	applications, err := u.applicationRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil
	}

	state = &redis.EngagementState{
		BookmarkedIDs: make([]string, 0, len(bookmarks)),
		AppliedIDs:    make([]string, 0, len(applications)),
	}
	for _, b := range bookmarks {
		state.BookmarkedIDs = append(state.BookmarkedIDs, b.ScholarshipID.String())
	}
	for _, a := range applications {
		state.AppliedIDs = append(state.AppliedIDs, a.ScholarshipID.String())
	}

	if err := u.cache.Put(ctx, userID.String(), state); err != nil {
		logger.Warn(ctx, "Engagement cache write failed", zap.Error(err))
	}
	return state
}

func (u *EngagementUsecase) invalidateCache(ctx context.Context, userID uuid.UUID) {
	if u.cache == nil {
		return
	}
	if err := u.cache.Invalidate(ctx, userID.String()); err != nil {
		logger.Warn(ctx, "Engagement cache invalidation failed", zap.Error(err))
	}
}

func containsID(ids []string, id uuid.UUID) bool {
	s := id.String()
	for _, v := range ids {
		if v == s {
			return true
		}
	}
	return false
}
