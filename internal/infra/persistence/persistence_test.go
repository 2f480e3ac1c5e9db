package persistence

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"

	"budget/config"
	"budget/internal/domain/entity"
)

func newParams(t *testing.T, driver string) Params {
	return Params{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    &config.Config{Persistence: config.PersistenceConfig{Driver: driver}},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestNew_Memory(t *testing.T) {
	repos, err := New(newParams(t, config.DriverMemory))
	require.NoError(t, err)

	ctx := context.Background()
	place := &entity.Place{Name: "Loon"}
	require.NoError(t, repos.PlaceRepo.Create(ctx, place))

	exists, err := repos.PlaceRepo.Exists(ctx, place.ID)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NotNil(t, repos.UserRepo)
	assert.NotNil(t, repos.TransactionRepo)
	assert.NotNil(t, repos.TxManager)
}

func TestNew_UnknownDriver(t *testing.T) {
	_, err := New(newParams(t, "sqlite"))

	assert.ErrorContains(t, err, "unknown persistence driver")
}
