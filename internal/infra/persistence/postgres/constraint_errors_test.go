package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"budget/internal/domain/repository"
	"budget/internal/errors"
)

func TestToConstraintError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		fallback       constraintFallback
		wantKind       repository.ConstraintKind
		wantConstraint string
	}{
		{
			name:           "pg unique violation keeps constraint name",
			err:            &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: repository.ConstraintPlaceNameUnique},
			wantKind:       repository.UniqueViolation,
			wantConstraint: repository.ConstraintPlaceNameUnique,
		},
		{
			name:           "pg foreign key violation keeps constraint name",
			err:            errors.Wrap(&pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: repository.ConstraintTransactionUser}, "insert"),
			fallback:       transactionConstraints,
			wantKind:       repository.ForeignKeyViolation,
			wantConstraint: repository.ConstraintTransactionUser,
		},
		{
			name:           "translated duplicate uses fallback",
			err:            gorm.ErrDuplicatedKey,
			fallback:       userConstraints,
			wantKind:       repository.UniqueViolation,
			wantConstraint: repository.ConstraintUserEmailUnique,
		},
		{
			name:           "translated foreign key uses fallback",
			err:            gorm.ErrForeignKeyViolated,
			fallback:       transactionConstraints,
			wantKind:       repository.ForeignKeyViolation,
			wantConstraint: repository.ConstraintTransactionPlace,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := toConstraintError(tt.err, tt.fallback)

			var constraintErr *repository.ConstraintError
			require.True(t, errors.As(got, &constraintErr))
			assert.Equal(t, tt.wantKind, constraintErr.Kind)
			assert.Equal(t, tt.wantConstraint, constraintErr.Constraint)
			assert.True(t, isConstraintViolation(tt.err))
		})
	}
}

func TestToConstraintError_PassesOtherErrorsThrough(t *testing.T) {
	assert.NoError(t, toConstraintError(nil, userConstraints))

	plain := errors.New("connection reset")
	assert.Same(t, plain, toConstraintError(plain, userConstraints))
	assert.False(t, isConstraintViolation(plain))

	notNull := &pgconn.PgError{Code: "23502"}
	assert.Same(t, notNull, toConstraintError(notNull, userConstraints))
}
