// Package impl contains the implementation of the application's business logic.
package impl

import (
	domainerrors "budget/internal/domain/errors"
	"budget/internal/domain/repository"
	"budget/internal/errors"
)

// translateDBError maps persistence failures onto the API error taxonomy.
// Errors it does not recognise are returned unchanged and end up as 500s.
func translateDBError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		return errors.Wrap(domainerrors.ErrUserNotFound, err.Error())
	case errors.Is(err, repository.ErrPlaceNotFound):
		return errors.Wrap(domainerrors.ErrPlaceNotFound, err.Error())
	case errors.Is(err, repository.ErrTransactionNotFound):
		return errors.Wrap(domainerrors.ErrTransactionNotFound, err.Error())
	}

	var constraintErr *repository.ConstraintError
	if !errors.As(err, &constraintErr) {
		return err
	}

	switch constraintErr.Kind {
	case repository.UniqueViolation:
		switch constraintErr.Constraint {
		case repository.ConstraintUserEmailUnique:
			return errors.Wrap(domainerrors.ErrEmailTaken, err.Error())
		case repository.ConstraintPlaceNameUnique:
			return errors.Wrap(domainerrors.ErrPlaceNameTaken, err.Error())
		default:
			return errors.Wrap(domainerrors.ErrDuplicate, err.Error())
		}
	case repository.ForeignKeyViolation:
		switch constraintErr.Constraint {
		case repository.ConstraintTransactionUser:
			return errors.Wrap(domainerrors.ErrReferencedUser, err.Error())
		default:
			return errors.Wrap(domainerrors.ErrReferencedPlace, err.Error())
		}
	}

	return err
}
