package impl

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domainerrors "budget/internal/domain/errors"
	"budget/internal/domain/repository"
	"budget/internal/errors"
)

func TestTranslateDBError(t *testing.T) {
	constraint := func(kind repository.ConstraintKind, name string) error {
		return errors.WithStack(&repository.ConstraintError{Kind: kind, Constraint: name, Err: errors.New("driver")})
	}

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "user not found", err: repository.ErrUserNotFound, want: domainerrors.ErrUserNotFound},
		{name: "place not found", err: errors.WithStack(repository.ErrPlaceNotFound), want: domainerrors.ErrPlaceNotFound},
		{name: "transaction not found", err: repository.ErrTransactionNotFound, want: domainerrors.ErrTransactionNotFound},
		{name: "email taken", err: constraint(repository.UniqueViolation, repository.ConstraintUserEmailUnique), want: domainerrors.ErrEmailTaken},
		{name: "place name taken", err: constraint(repository.UniqueViolation, repository.ConstraintPlaceNameUnique), want: domainerrors.ErrPlaceNameTaken},
		{name: "other unique", err: constraint(repository.UniqueViolation, "idx_other"), want: domainerrors.ErrDuplicate},
		{name: "missing place", err: constraint(repository.ForeignKeyViolation, repository.ConstraintTransactionPlace), want: domainerrors.ErrReferencedPlace},
		{name: "missing user", err: constraint(repository.ForeignKeyViolation, repository.ConstraintTransactionUser), want: domainerrors.ErrReferencedUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateDBError(tt.err)
			assert.True(t, errors.Is(got, tt.want), "got %v", got)

			var appErr domainerrors.AppError
			assert.True(t, errors.As(got, &appErr))
		})
	}
}

func TestTranslateDBError_PassesThrough(t *testing.T) {
	assert.NoError(t, translateDBError(nil))

	plain := errors.New("connection refused")
	assert.Same(t, plain, translateDBError(plain))

	var appErr domainerrors.AppError
	assert.False(t, errors.As(translateDBError(plain), &appErr))
}
