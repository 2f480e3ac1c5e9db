package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.uber.org/fx"

	deliverycontext "budget/internal/delivery/context"
	"budget/internal/domain/entity"
	domainerrors "budget/internal/domain/errors"
	"budget/internal/domain/repository"
	"budget/internal/domain/service"
	"budget/internal/errors"
	"budget/internal/usecase"
)

// dummyPassword is hashed once so that logins for unknown emails still pay
// for one full password verification.
const dummyPassword = "budget-dummy-password"

type sessionService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	dummyHash    func() (string, error)
	logger       *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		dummyHash: sync.OnceValues(func() (string, error) {
			return params.Hasher.Hash(dummyPassword)
		}),
		logger: params.Logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies the credentials and issues a session token.
func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(err, "failed to find user by email")
		}

		// Same CPU cost as a wrong password.
		hash, hashErr := srv.dummyHash()
		if hashErr != nil {
			return nil, errors.Wrap(hashErr, "failed to hash dummy password")
		}
		srv.hasher.Check(input.Password, hash)
		srv.log(ctx).Warn("Login for unknown email", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login with wrong password", slog.Int("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	token, err := srv.tokenService.Issue(user.ID, user.Roles.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Debug("User logged in", slog.Int("userID", user.ID))

	return &usecase.AuthOutput{Token: token, User: user}, nil
}

// Authenticate verifies the token and rebuilds the caller's session from its claims.
func (srv *sessionService) Authenticate(_ context.Context, token string) (*entity.Session, error) {
	claims, err := srv.tokenService.Verify(token)
	if err != nil {
		return nil, err
	}

	session := &entity.Session{
		UserID: claims.UserID,
		Roles:  entity.RolesFromStrings(claims.Roles),
	}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	} else {
		session.ExpiresAt = time.Now().Add(srv.tokenService.ExpirationInterval())
	}

	return session, nil
}
