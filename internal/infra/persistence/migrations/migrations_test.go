package migrations

import (
	"context"
	"database/sql"
	"io/fs"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budget/internal/errors"
)

func TestMigrations_AreEmbeddedInOrder(t *testing.T) {
	files, err := fs.Glob(Migrations, "*.sql")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"00001_create_users.sql",
		"00002_create_places.sql",
		"00003_create_transactions.sql",
	}, files)
}

func TestMigrations_DeclareNamedConstraints(t *testing.T) {
	users, err := fs.ReadFile(Migrations, "00001_create_users.sql")
	require.NoError(t, err)
	assert.Contains(t, string(users), "idx_user_email_unique")

	places, err := fs.ReadFile(Migrations, "00002_create_places.sql")
	require.NoError(t, err)
	assert.Contains(t, string(places), "idx_place_name_unique")

	transactions, err := fs.ReadFile(Migrations, "00003_create_transactions.sql")
	require.NoError(t, err)
	assert.Contains(t, string(transactions), "fk_transaction_user")
	assert.Contains(t, string(transactions), "fk_transaction_place")
	assert.Contains(t, string(transactions), "ON DELETE CASCADE")
}

func TestUp_PropagatesGooseError(t *testing.T) {
	orig := gooseUpContext
	defer func() { gooseUpContext = orig }()

	gooseUpContext = func(_ context.Context, _ *sql.DB, dir string, _ ...goose.OptionsFunc) error {
		assert.Equal(t, ".", dir)

		return errors.New("boom")
	}

	err := Up(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestUp_Succeeds(t *testing.T) {
	orig := gooseUpContext
	defer func() { gooseUpContext = orig }()

	called := false
	gooseUpContext = func(context.Context, *sql.DB, string, ...goose.OptionsFunc) error {
		called = true

		return nil
	}

	require.NoError(t, Up(context.Background(), nil))
	assert.True(t, called)
}
