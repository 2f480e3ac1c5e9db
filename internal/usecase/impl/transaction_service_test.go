package impl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"budget/internal/domain/entity"
	domainerrors "budget/internal/domain/errors"
	"budget/internal/domain/repository"
	"budget/internal/errors"
	mockRepo "budget/internal/mocks/repository"
	"budget/internal/usecase"
)

type transactionServiceFixtures struct {
	service         usecase.TransactionUsecase
	txManager       *mockRepo.MockTransactionManager
	placeRepo       *mockRepo.MockPlaceRepository
	transactionRepo *mockRepo.MockTransactionRepository
}

func createTestTransactionService(t *testing.T) transactionServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	placeRepo := mockRepo.NewMockPlaceRepository(t)
	transactionRepo := mockRepo.NewMockTransactionRepository(t)

	return transactionServiceFixtures{
		service: NewTransactionService(TransactionServiceParams{
			TxManager:       txManager,
			PlaceRepo:       placeRepo,
			TransactionRepo: transactionRepo,
			Logger:          newDiscardLogger(),
		}),
		txManager:       txManager,
		placeRepo:       placeRepo,
		transactionRepo: transactionRepo,
	}
}

var testDate = time.Date(2021, 5, 25, 19, 40, 0, 0, time.UTC)

func TestTransactionService_List_ScopesToCaller(t *testing.T) {
	fx := createTestTransactionService(t)
	ctx := context.Background()

	fx.transactionRepo.EXPECT().Find(ctx, entity.TransactionFilter{UserID: 2}).Return([]*entity.Transaction{{ID: 4}}, nil)
	fx.transactionRepo.EXPECT().Find(ctx, entity.TransactionFilter{}).Return([]*entity.Transaction{{ID: 1}, {ID: 4}}, nil)

	own, err := fx.service.List(ctx, userSession(2))
	require.NoError(t, err)
	assert.Len(t, own, 1)

	all, err := fx.service.List(ctx, adminSession(1))
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestTransactionService_Get_NotOwned(t *testing.T) {
	fx := createTestTransactionService(t)
	ctx := context.Background()

	fx.transactionRepo.EXPECT().FindByID(ctx, 1, 2).Return(nil, repository.ErrTransactionNotFound)

	tx, err := fx.service.Get(ctx, userSession(2), 1)

	assert.Nil(t, tx)
	assert.True(t, errors.Is(err, domainerrors.ErrTransactionNotFound))
}

func TestTransactionService_Create_MissingPlace(t *testing.T) {
	fx := createTestTransactionService(t)
	ctx := context.Background()

	expectExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().PlaceRepo().Return(fx.placeRepo)
		fx.placeRepo.EXPECT().Exists(ctx, 99).Return(false, nil)
	})

	tx, err := fx.service.Create(ctx, userSession(2), &usecase.TransactionInput{Amount: -5, Date: testDate, PlaceID: 99})

	assert.Nil(t, tx)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPCode())
	assert.Equal(t, "This place does not exist", appErr.Message())
}

func TestTransactionService_Create_Success(t *testing.T) {
	fx := createTestTransactionService(t)
	ctx := context.Background()
	created := &entity.Transaction{ID: 10, Amount: -5, Date: testDate, UserID: 2, PlaceID: 1}

	expectExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().PlaceRepo().Return(fx.placeRepo)
		factory.EXPECT().TransactionRepo().Return(fx.transactionRepo)
		fx.placeRepo.EXPECT().Exists(ctx, 1).Return(true, nil)
		fx.transactionRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Transaction")).
			Run(func(_ context.Context, tx *entity.Transaction) {
				assert.Equal(t, 2, tx.UserID)
				tx.ID = 10
			}).
			Return(nil)
	})
	fx.transactionRepo.EXPECT().FindByID(ctx, 10, 2).Return(created, nil)

	tx, err := fx.service.Create(ctx, userSession(2), &usecase.TransactionInput{Amount: -5, Date: testDate, PlaceID: 1})

	require.NoError(t, err)
	assert.Equal(t, created, tx)
}

func TestTransactionService_Update_ScopedToOwner(t *testing.T) {
	fx := createTestTransactionService(t)
	ctx := context.Background()

	expectExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().PlaceRepo().Return(fx.placeRepo)
		factory.EXPECT().TransactionRepo().Return(fx.transactionRepo)
		fx.placeRepo.EXPECT().Exists(ctx, 1).Return(true, nil)
		fx.transactionRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Transaction"), 2).
			Return(repository.ErrTransactionNotFound)
	})

	_, err := fx.service.Update(ctx, userSession(2), 1, &usecase.TransactionInput{Amount: 3, Date: testDate, PlaceID: 1})

	assert.True(t, errors.Is(err, domainerrors.ErrTransactionNotFound))
}

func TestTransactionService_Update_AdminBypassesScope(t *testing.T) {
	fx := createTestTransactionService(t)
	ctx := context.Background()
	updated := &entity.Transaction{ID: 4, Amount: 3, Date: testDate, UserID: 2, PlaceID: 1}

	expectExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().PlaceRepo().Return(fx.placeRepo)
		factory.EXPECT().TransactionRepo().Return(fx.transactionRepo)
		fx.placeRepo.EXPECT().Exists(ctx, 1).Return(true, nil)
		fx.transactionRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Transaction"), 0).Return(nil)
	})
	fx.transactionRepo.EXPECT().FindByID(ctx, 4, 0).Return(updated, nil)

	tx, err := fx.service.Update(ctx, adminSession(1), 4, &usecase.TransactionInput{Amount: 3, Date: testDate, PlaceID: 1})

	require.NoError(t, err)
	assert.Equal(t, updated, tx)
}

func TestTransactionService_Delete(t *testing.T) {
	fx := createTestTransactionService(t)
	ctx := context.Background()

	fx.transactionRepo.EXPECT().Delete(ctx, 1, 2).Return(repository.ErrTransactionNotFound)
	fx.transactionRepo.EXPECT().Delete(ctx, 4, 2).Return(nil)

	assert.True(t, errors.Is(fx.service.Delete(ctx, userSession(2), 1), domainerrors.ErrTransactionNotFound))
	assert.NoError(t, fx.service.Delete(ctx, userSession(2), 4))
}

func TestTransactionService_ListByPlace(t *testing.T) {
	fx := createTestTransactionService(t)
	ctx := context.Background()

	fx.placeRepo.EXPECT().Exists(ctx, 3).Return(false, nil)
	_, err := fx.service.ListByPlace(ctx, userSession(2), 3)
	assert.True(t, errors.Is(err, domainerrors.ErrPlaceNotFound))

	fx.placeRepo.EXPECT().Exists(ctx, 1).Return(true, nil)
	fx.transactionRepo.EXPECT().Find(ctx, entity.TransactionFilter{UserID: 2, PlaceID: 1}).Return([]*entity.Transaction{{ID: 4}}, nil)
	got, err := fx.service.ListByPlace(ctx, userSession(2), 1)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestTransactionService_ListByUser(t *testing.T) {
	fx := createTestTransactionService(t)
	ctx := context.Background()

	fx.transactionRepo.EXPECT().Find(ctx, entity.TransactionFilter{UserID: 3}).Return([]*entity.Transaction{{ID: 7}}, nil)

	got, err := fx.service.ListByUser(ctx, 3)

	require.NoError(t, err)
	assert.Len(t, got, 1)
}
