package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"budget/internal/domain/entity"
	domainerrors "budget/internal/domain/errors"
	"budget/internal/domain/repository"
	"budget/internal/errors"
	mockRepo "budget/internal/mocks/repository"
	mockService "budget/internal/mocks/service"
	"budget/internal/usecase"
)

type userServiceFixtures struct {
	service  usecase.UserUsecase
	userRepo *mockRepo.MockUserRepository
	hasher   *mockService.MockPasswordHasher
	tokens   *mockService.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokens := mockService.NewMockTokenService(t)

	return userServiceFixtures{
		service: NewUserService(UserServiceParams{
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

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("averylongpassword").Return("digest", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			assert.Equal(t, "digest", user.PasswordHash)
			assert.Equal(t, entity.Roles{entity.RoleUser}, user.Roles)
			user.ID = 4
		}).
		Return(nil)
	fx.tokens.EXPECT().Issue(4, []string{"user"}).Return("signed", nil)

	out, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:     "New User",
		Email:    "new@example.com",
		Password: "averylongpassword",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed", out.Token)
	assert.Equal(t, 4, out.User.ID)
	assert.Equal(t, "new@example.com", out.User.Email)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash(mock.Anything).Return("digest", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(&repository.ConstraintError{
		Kind:       repository.UniqueViolation,
		Constraint: repository.ConstraintUserEmailUnique,
		Err:        errors.New("duplicate key"),
	})

	out, err := fx.service.Register(ctx, &usecase.RegisterInput{Name: "Dup", Email: "thomas@example.com", Password: "averylongpassword"})

	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))
}

func TestUserService_Register_HashFailure(t *testing.T) {
	fx := createTestUserService(t)

	fx.hasher.EXPECT().Hash(mock.Anything).Return("", errors.New("entropy exhausted"))

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{Password: "averylongpassword"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to hash password")
}

func TestUserService_Get_NotFound(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, 99).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.Get(ctx, 99)

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_Update_ReturnsStoredUser(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	stored := &entity.User{ID: 2, Name: "Renamed", Email: "renamed@example.com"}

	fx.userRepo.EXPECT().Update(ctx, &entity.User{ID: 2, Name: "Renamed", Email: "renamed@example.com"}).Return(nil)
	fx.userRepo.EXPECT().FindByID(ctx, 2).Return(stored, nil)

	user, err := fx.service.Update(ctx, 2, &usecase.UpdateUserInput{Name: "Renamed", Email: "renamed@example.com"})

	require.NoError(t, err)
	assert.Equal(t, stored, user)
}

func TestUserService_Update_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().Update(ctx, mock.Anything).Return(errors.WithStack(&repository.ConstraintError{
		Kind:       repository.UniqueViolation,
		Constraint: repository.ConstraintUserEmailUnique,
	}))

	_, err := fx.service.Update(ctx, 2, &usecase.UpdateUserInput{Name: "x", Email: "thomas@example.com"})

	assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))
}

func TestUserService_Delete(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().Delete(ctx, 3).Return(nil)
	fx.userRepo.EXPECT().Delete(ctx, 42).Return(repository.ErrUserNotFound)

	require.NoError(t, fx.service.Delete(ctx, 3))
	assert.True(t, errors.Is(fx.service.Delete(ctx, 42), domainerrors.ErrUserNotFound))
}

func TestUserService_List(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	users := []*entity.User{{ID: 1}, {ID: 2}}

	fx.userRepo.EXPECT().FindAll(ctx).Return(users, nil)

	got, err := fx.service.List(ctx)

	require.NoError(t, err)
	assert.Equal(t, users, got)
}
