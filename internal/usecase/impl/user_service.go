package impl

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	deliverycontext "budget/internal/delivery/context"
	"budget/internal/domain/entity"
	"budget/internal/domain/repository"
	"budget/internal/domain/service"
	"budget/internal/errors"
	"budget/internal/usecase"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a regular user and signs them in.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	user := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Roles:        entity.Roles{entity.RoleUser},
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		srv.log(ctx).Warn("Failed to create user", slog.String("email", input.Email), slog.Any("error", err))

		return nil, translateDBError(err)
	}

	token, err := srv.tokenService.Issue(user.ID, user.Roles.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Debug("Registration completed", slog.Int("userID", user.ID))

	return &usecase.AuthOutput{Token: token, User: user}, nil
}

func (srv *userService) List(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

func (srv *userService) Get(ctx context.Context, id int) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateDBError(err)
	}

	return user, nil
}

// Update changes name and email and returns the stored user.
func (srv *userService) Update(ctx context.Context, id int, input *usecase.UpdateUserInput) (*entity.User, error) {
	user := &entity.User{ID: id, Name: input.Name, Email: input.Email}
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, translateDBError(err)
	}

	updated, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateDBError(err)
	}

	srv.log(ctx).Debug("User updated", slog.Int("userID", id))

	return updated, nil
}

// Delete removes the user together with their transactions.
func (srv *userService) Delete(ctx context.Context, id int) error {
	if err := srv.userRepo.Delete(ctx, id); err != nil {
		return translateDBError(err)
	}

	srv.log(ctx).Info("User deleted", slog.Int("userID", id))

	return nil
}
