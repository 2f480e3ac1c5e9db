package impl

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	deliverycontext "budget/internal/delivery/context"
	"budget/internal/domain/entity"
	domainerrors "budget/internal/domain/errors"
	"budget/internal/domain/repository"
	"budget/internal/errors"
	"budget/internal/usecase"
)

type transactionService struct {
	txManager       repository.TransactionManager
	placeRepo       repository.PlaceRepository
	transactionRepo repository.TransactionRepository
	logger          *slog.Logger
}

// TransactionServiceParams holds dependencies for TransactionService, injected by Fx.
type TransactionServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	PlaceRepo       repository.PlaceRepository
	TransactionRepo repository.TransactionRepository
	Logger          *slog.Logger
}

// NewTransactionService is the constructor for transactionService.
func NewTransactionService(params TransactionServiceParams) usecase.TransactionUsecase {
	return &transactionService{
		txManager:       params.TxManager,
		placeRepo:       params.PlaceRepo,
		transactionRepo: params.TransactionRepo,
		logger:          params.Logger,
	}
}

func (srv *transactionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns the caller's transactions, or every transaction for an admin.
func (srv *transactionService) List(ctx context.Context, session *entity.Session) ([]*entity.Transaction, error) {
	transactions, err := srv.transactionRepo.Find(ctx, entity.TransactionFilter{UserID: session.OwnerScope()})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list transactions")
	}

	return transactions, nil
}

// ListByUser returns the transactions of one user; access to that user has
// already been checked.
func (srv *transactionService) ListByUser(ctx context.Context, userID int) ([]*entity.Transaction, error) {
	transactions, err := srv.transactionRepo.Find(ctx, entity.TransactionFilter{UserID: userID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user transactions")
	}

	return transactions, nil
}

func (srv *transactionService) ListByPlace(ctx context.Context, session *entity.Session, placeID int) ([]*entity.Transaction, error) {
	exists, err := srv.placeRepo.Exists(ctx, placeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check place")
	}
	if !exists {
		return nil, errors.WithStack(domainerrors.ErrPlaceNotFound)
	}

	transactions, err := srv.transactionRepo.Find(ctx, entity.TransactionFilter{
		UserID:  session.OwnerScope(),
		PlaceID: placeID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list place transactions")
	}

	return transactions, nil
}

func (srv *transactionService) Get(ctx context.Context, session *entity.Session, id int) (*entity.Transaction, error) {
	transaction, err := srv.transactionRepo.FindByID(ctx, id, session.OwnerScope())
	if err != nil {
		return nil, translateDBError(err)
	}

	return transaction, nil
}

// Create books a transaction for the caller. The place check and the insert
// run in one database transaction.
func (srv *transactionService) Create(ctx context.Context, session *entity.Session, input *usecase.TransactionInput) (*entity.Transaction, error) {
	transaction := &entity.Transaction{
		Amount:  input.Amount,
		Date:    input.Date,
		UserID:  session.UserID,
		PlaceID: input.PlaceID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := ensurePlace(ctx, repoFactory.PlaceRepo(), input.PlaceID); err != nil {
			return err
		}

		return repoFactory.TransactionRepo().Create(ctx, transaction)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create transaction", slog.Int("placeID", input.PlaceID), slog.Any("error", err))

		return nil, translateDBError(err)
	}

	srv.log(ctx).Info("Transaction created", slog.Int("transactionID", transaction.ID))

	return srv.Get(ctx, session, transaction.ID)
}

func (srv *transactionService) Update(ctx context.Context, session *entity.Session, id int, input *usecase.TransactionInput) (*entity.Transaction, error) {
	transaction := &entity.Transaction{
		ID:      id,
		Amount:  input.Amount,
		Date:    input.Date,
		PlaceID: input.PlaceID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := ensurePlace(ctx, repoFactory.PlaceRepo(), input.PlaceID); err != nil {
			return err
		}

		return repoFactory.TransactionRepo().Update(ctx, transaction, session.OwnerScope())
	})
	if err != nil {
		return nil, translateDBError(err)
	}

	return srv.Get(ctx, session, id)
}

func (srv *transactionService) Delete(ctx context.Context, session *entity.Session, id int) error {
	if err := srv.transactionRepo.Delete(ctx, id, session.OwnerScope()); err != nil {
		return translateDBError(err)
	}

	srv.log(ctx).Info("Transaction deleted", slog.Int("transactionID", id))

	return nil
}

func ensurePlace(ctx context.Context, placeRepo repository.PlaceRepository, placeID int) error {
	exists, err := placeRepo.Exists(ctx, placeID)
	if err != nil {
		return errors.Wrap(err, "failed to check place")
	}
	if !exists {
		return errors.WithStack(domainerrors.ErrReferencedPlace)
	}

	return nil
}
