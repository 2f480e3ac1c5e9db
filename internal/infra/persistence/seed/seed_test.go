package seed

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"budget/internal/domain/entity"
	"budget/internal/domain/repository"
	"budget/internal/infra/persistence/memory"
	mockservice "budget/internal/mocks/service"
)

func TestRun(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.NewStore()

	hasher := mockservice.NewMockPasswordHasher(t)
	hasher.EXPECT().Hash(DemoPassword).Return("$argon2id$demo", nil)

	require.NoError(t, Run(ctx, memory.NewTransactionManager(store), hasher, logger))

	users, err := memory.NewUserRepository(store).FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.True(t, users[0].Roles.Contains(entity.RoleAdmin))

	places, err := memory.NewPlaceRepository(store).FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, places, 3)

	txs, err := memory.NewTransactionRepository(store).Find(ctx, entity.TransactionFilter{})
	require.NoError(t, err)
	assert.Len(t, txs, 9)

	pieter := users[1]
	own, err := memory.NewTransactionRepository(store).Find(ctx, entity.TransactionFilter{UserID: pieter.ID})
	require.NoError(t, err)
	assert.Len(t, own, 3)
}

func TestRun_SecondRunChangesNothing(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.NewStore()

	hasher := mockservice.NewMockPasswordHasher(t)
	hasher.EXPECT().Hash(mock.Anything).Return("$argon2id$demo", nil)

	require.NoError(t, Run(ctx, memory.NewTransactionManager(store), hasher, logger))

	err := Run(ctx, memory.NewTransactionManager(store), hasher, logger)

	var constraintErr *repository.ConstraintError
	require.ErrorAs(t, err, &constraintErr)
	assert.Equal(t, repository.UniqueViolation, constraintErr.Kind)

	txs, err := memory.NewTransactionRepository(store).Find(ctx, entity.TransactionFilter{})
	require.NoError(t, err)
	assert.Len(t, txs, 9)
}
