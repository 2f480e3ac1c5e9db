package postgres

import (
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"budget/internal/domain/repository"
	"budget/internal/errors"
)

// PostgreSQL SQLSTATE codes for integrity violations.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// constraintFallback names the constraint to report when the driver error
// does not carry one, e.g. after GORM's TranslateError replaced it.
type constraintFallback map[repository.ConstraintKind]string

// toConstraintError converts integrity violations into repository.ConstraintError.
// Any other error is returned unchanged.
func toConstraintError(err error, fallback constraintFallback) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return newConstraintError(repository.UniqueViolation, pgErr.ConstraintName, err, fallback)
		case pgForeignKeyViolation:
			return newConstraintError(repository.ForeignKeyViolation, pgErr.ConstraintName, err, fallback)
		}
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return newConstraintError(repository.UniqueViolation, "", err, fallback)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return newConstraintError(repository.ForeignKeyViolation, "", err, fallback)
	}

	return err
}

func newConstraintError(kind repository.ConstraintKind, name string, err error, fallback constraintFallback) error {
	if name == "" {
		name = fallback[kind]
	}

	return errors.WithStack(&repository.ConstraintError{
		Kind:       kind,
		Constraint: name,
		Err:        err,
	})
}

func isConstraintViolation(err error) bool {
	var constraintErr *repository.ConstraintError

	return errors.As(toConstraintError(err, nil), &constraintErr)
}
