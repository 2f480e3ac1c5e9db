package impl

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budget/internal/domain/entity"
	domainerrors "budget/internal/domain/errors"
	"budget/internal/domain/repository"
	"budget/internal/domain/service"
	"budget/internal/errors"
	mockRepo "budget/internal/mocks/repository"
	mockService "budget/internal/mocks/service"
	"budget/internal/usecase"
)

type sessionServiceFixtures struct {
	service  usecase.SessionUsecase
	userRepo *mockRepo.MockUserRepository
	hasher   *mockService.MockPasswordHasher
	tokens   *mockService.MockTokenService
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokens := mockService.NewMockTokenService(t)

	return sessionServiceFixtures{
		service: NewSessionService(SessionServiceParams{
			UserRepo:     userRepo,
			Hasher:       hasher,
			TokenService: tokens,
			Logger:       newDiscardLogger(),
		}),
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

func TestSessionService_Login_Success(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	user := &entity.User{ID: 1, Email: "thomas@example.com", PasswordHash: "stored", Roles: entity.Roles{entity.RoleAdmin, entity.RoleUser}}

	fx.userRepo.EXPECT().FindByEmail(ctx, "thomas@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("12345678", "stored").Return(true)
	fx.tokens.EXPECT().Issue(1, []string{"admin", "user"}).Return("signed", nil)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "thomas@example.com", Password: "12345678"})

	require.NoError(t, err)
	assert.Equal(t, "signed", out.Token)
	assert.Equal(t, user, out.User)
}

func TestSessionService_Login_WrongPassword(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "thomas@example.com").Return(&entity.User{ID: 1, PasswordHash: "stored"}, nil)
	fx.hasher.EXPECT().Check("wrong", "stored").Return(false)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "thomas@example.com", Password: "wrong"})

	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestSessionService_Login_UnknownEmailStillVerifies(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound).Twice()
	fx.hasher.EXPECT().Hash(dummyPassword).Return("dummy-digest", nil).Once()
	fx.hasher.EXPECT().Check("12345678", "dummy-digest").Return(false).Twice()

	for range 2 {
		out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "12345678"})

		assert.Nil(t, out)
		require.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "The given email and password do not match", appErr.Message())
	}
}

func TestSessionService_Login_RepositoryError(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "thomas@example.com").Return(nil, errors.New("db down"))

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "thomas@example.com", Password: "x"})

	require.Error(t, err)
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	assert.Contains(t, err.Error(), "db down")
}

func TestSessionService_Authenticate(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	expires := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	fx.tokens.EXPECT().Verify("good").Return(&service.Claims{
		UserID: 7,
		Roles:  []string{"user", "superuser"},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}, nil)

	session, err := fx.service.Authenticate(ctx, "good")

	require.NoError(t, err)
	assert.Equal(t, 7, session.UserID)
	assert.Equal(t, entity.Roles{entity.RoleUser}, session.Roles)
	assert.True(t, expires.Equal(session.ExpiresAt))
}

func TestSessionService_Authenticate_Expired(t *testing.T) {
	fx := createTestSessionService(t)

	fx.tokens.EXPECT().Verify("old").Return(nil, errors.WithStack(domainerrors.ErrExpiredToken))

	session, err := fx.service.Authenticate(context.Background(), "old")

	assert.Nil(t, session)
	assert.True(t, errors.Is(err, domainerrors.ErrExpiredToken))
}
