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
	"scholar-seeker.backend/pkg/crypto"
	"scholar-seeker.backend/pkg/jwt"
	"scholar-seeker.backend/pkg/logger"
	"scholar-seeker.backend/pkg/redis"
	"scholar-seeker.backend/pkg/utils"
)

// AuthUsecase handles registration, login and session identity
type AuthUsecase struct {
	userRepo   repositories.UserRepository
	jwtService *jwt.JWTService
	cache      engagementCache
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(userRepo repositories.UserRepository, jwtService *jwt.JWTService, cache *redis.EngagementCache) *AuthUsecase {
	u := &AuthUsecase{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
	if cache != nil {
		u.cache = cache
	}
	return u
}

// Register creates an account and returns a signed session
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.AuthResponse, error) {
	hash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entities.User{
		ID:           utils.GenerateUUIDv7(),
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return u.issueSession(ctx, user)
}

// Login verifies credentials and returns a signed session. Credential failures
// are reported uniformly so the response does not reveal which part was wrong.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return u.issueSession(ctx, user)
}

// Logout drops any cached engagement state for the user. Tokens are stateless
// so there is nothing else to revoke server-side.
func (u *AuthUsecase) Logout(ctx context.Context, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return domainerrors.ErrUnauthenticated
	}
	u.invalidateCache(ctx, userID)
	return nil
}

// GetMe returns the account for the authenticated user
func (u *AuthUsecase) GetMe(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.ErrUnauthenticated
	}
	return u.userRepo.GetByID(ctx, userID)
}

func (u *AuthUsecase) issueSession(ctx context.Context, user *entities.User) (*entities.AuthResponse, error) {
	token, err := u.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	// The identity behind the session changed, so stale per-user state must
	// not survive into it.
	u.invalidateCache(ctx, user.ID)

	return &entities.AuthResponse{
		AccessToken: token,
		User:        user,
	}, nil
}

func (u *AuthUsecase) invalidateCache(ctx context.Context, userID uuid.UUID) {
	if u.cache == nil {
		return
	}
	if err := u.cache.Invalidate(ctx, userID.String()); err != nil {
		logger.Warn(ctx, "Engagement cache invalidation failed", zap.Error(err))
	}
}
