package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"scholar-seeker.backend/internal/domain/entities"
	domainerrors "scholar-seeker.backend/internal/domain/errors"
	"scholar-seeker.backend/pkg/jwt"
	"scholar-seeker.backend/pkg/redis"
)

func newAuthUsecase(t *testing.T) (*AuthUsecase, *memUserRepo, *jwt.JWTService) {
	t.Helper()
	users := newMemUserRepo()
	jwtService := jwt.NewJWTService("test-secret", time.Hour)
	return NewAuthUsecase(users, jwtService, nil), users, jwtService
}

func TestAuthUsecase_RegisterAndLogin(t *testing.T) {
	usecase, _, jwtService := newAuthUsecase(t)
	ctx := context.Background()

	registered, err := usecase.Register(ctx, &entities.RegisterInput{
		Email:    "asha@example.com",
		Name:     "Asha",
		Password: "s3cret-password",
	})
	require.NoError(t, err)
	require.NotEmpty(t, registered.AccessToken)
	require.NotEqual(t, "s3cret-password", registered.User.PasswordHash)

	claims, err := jwtService.ValidateToken(registered.AccessToken)
	require.NoError(t, err)
	require.Equal(t, registered.User.ID, claims.UserID)

	loggedIn, err := usecase.Login(ctx, &entities.LoginInput{
		Email:    "asha@example.com",
		Password: "s3cret-password",
	})
	require.NoError(t, err)
	require.Equal(t, registered.User.ID, loggedIn.User.ID)
}

func TestAuthUsecase_RegisterDuplicateEmail(t *testing.T) {
	usecase, _, _ := newAuthUsecase(t)
	ctx := context.Background()

	_, err := usecase.Register(ctx, &entities.RegisterInput{Email: "dup@example.com", Name: "A", Password: "password-one"})
	require.NoError(t, err)

	_, err = usecase.Register(ctx, &entities.RegisterInput{Email: "dup@example.com", Name: "B", Password: "password-two"})
	require.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
}

func TestAuthUsecase_LoginFailuresAreUniform(t *testing.T) {
	usecase, _, _ := newAuthUsecase(t)
	ctx := context.Background()

	_, err := usecase.Register(ctx, &entities.RegisterInput{Email: "asha@example.com", Name: "Asha", Password: "right-password"})
	require.NoError(t, err)

	// unknown email and wrong password are indistinguishable
	_, err = usecase.Login(ctx, &entities.LoginInput{Email: "nobody@example.com", Password: "whatever"})
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, err = usecase.Login(ctx, &entities.LoginInput{Email: "asha@example.com", Password: "wrong-password"})
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthUsecase_GetMe(t *testing.T) {
	usecase, _, _ := newAuthUsecase(t)
	ctx := context.Background()

	registered, err := usecase.Register(ctx, &entities.RegisterInput{Email: "me@example.com", Name: "Me", Password: "some-password"})
	require.NoError(t, err)

	user, err := usecase.GetMe(ctx, registered.User.ID)
	require.NoError(t, err)
	require.Equal(t, "me@example.com", user.Email)

	_, err = usecase.GetMe(ctx, uuid.Nil)
	require.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestAuthUsecase_IdentityChangeDropsEngagementCache(t *testing.T) {
	mr := miniredis.RunT(t)
	redis.SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { redis.SetClient(nil) })

	cache := redis.NewEngagementCache(time.Minute)
	users := newMemUserRepo()
	usecase := NewAuthUsecase(users, jwt.NewJWTService("test-secret", time.Hour), cache)
	ctx := context.Background()

	registered, err := usecase.Register(ctx, &entities.RegisterInput{Email: "cache@example.com", Name: "C", Password: "some-password"})
	require.NoError(t, err)
	userID := registered.User.ID

	stale := &redis.EngagementState{BookmarkedIDs: []string{uuid.NewString()}}
	require.NoError(t, cache.Put(ctx, userID.String(), stale))

	// login must not let the stale snapshot leak into the new session
	_, err = usecase.Login(ctx, &entities.LoginInput{Email: "cache@example.com", Password: "some-password"})
	require.NoError(t, err)

	state, err := cache.Get(ctx, userID.String())
	require.NoError(t, err)
	require.Nil(t, state)

	// logout clears it as well
	require.NoError(t, cache.Put(ctx, userID.String(), stale))
	require.NoError(t, usecase.Logout(ctx, userID))

	state, err = cache.Get(ctx, userID.String())
	require.NoError(t, err)
	require.Nil(t, state)

	require.ErrorIs(t, usecase.Logout(ctx, uuid.Nil), domainerrors.ErrUnauthenticated)
}
