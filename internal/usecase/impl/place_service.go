package impl

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	deliverycontext "budget/internal/delivery/context"
	"budget/internal/domain/entity"
	"budget/internal/domain/repository"
	"budget/internal/errors"
	"budget/internal/usecase"
)

type placeService struct {
	placeRepo       repository.PlaceRepository
	transactionRepo repository.TransactionRepository
	logger          *slog.Logger
}

// PlaceServiceParams holds dependencies for PlaceService, injected by Fx.
type PlaceServiceParams struct {
	fx.In

	PlaceRepo       repository.PlaceRepository
	TransactionRepo repository.TransactionRepository
	Logger          *slog.Logger
}

// NewPlaceService is the constructor for placeService.
func NewPlaceService(params PlaceServiceParams) usecase.PlaceUsecase {
	return &placeService{
		placeRepo:       params.PlaceRepo,
		transactionRepo: params.TransactionRepo,
		logger:          params.Logger,
	}
}

func (srv *placeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *placeService) List(ctx context.Context) ([]*entity.Place, error) {
	places, err := srv.placeRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list places")
	}

	return places, nil
}

// Get returns the place and the transactions the caller booked there.
func (srv *placeService) Get(ctx context.Context, session *entity.Session, id int) (*usecase.PlaceDetail, error) {
	place, err := srv.placeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateDBError(err)
	}

	transactions, err := srv.transactionRepo.Find(ctx, entity.TransactionFilter{
		UserID:  session.UserID,
		PlaceID: id,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list place transactions")
	}

	return &usecase.PlaceDetail{Place: place, Transactions: transactions}, nil
}

func (srv *placeService) Create(ctx context.Context, input *usecase.PlaceInput) (*entity.Place, error) {
	place := &entity.Place{Name: input.Name, Rating: input.Rating}
	if err := srv.placeRepo.Create(ctx, place); err != nil {
		srv.log(ctx).Warn("Failed to create place", slog.String("name", input.Name), slog.Any("error", err))

		return nil, translateDBError(err)
	}

	srv.log(ctx).Info("Place created", slog.Int("placeID", place.ID))

	return place, nil
}

func (srv *placeService) Update(ctx context.Context, id int, input *usecase.PlaceInput) (*entity.Place, error) {
	place := &entity.Place{ID: id, Name: input.Name, Rating: input.Rating}
	if err := srv.placeRepo.Update(ctx, place); err != nil {
		return nil, translateDBError(err)
	}

	updated, err := srv.placeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateDBError(err)
	}

	return updated, nil
}

// Delete removes the place together with every transaction booked there.
func (srv *placeService) Delete(ctx context.Context, id int) error {
	if err := srv.placeRepo.Delete(ctx, id); err != nil {
		return translateDBError(err)
	}

	srv.log(ctx).Info("Place deleted", slog.Int("placeID", id))

	return nil
}
