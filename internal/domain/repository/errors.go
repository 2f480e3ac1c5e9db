// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"errors"
	"fmt"
)

// Domain-specific errors returned when a lookup does not resolve.
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrPlaceNotFound       = errors.New("place not found")
	ErrTransactionNotFound = errors.New("transaction not found")
)

// Constraint names shared by every store implementation.
const (
	ConstraintUserEmailUnique  = "idx_user_email_unique"
	ConstraintPlaceNameUnique  = "idx_place_name_unique"
	ConstraintTransactionUser  = "fk_transaction_user"
	ConstraintTransactionPlace = "fk_transaction_place"
)

// ConstraintKind classifies a violated storage constraint.
type ConstraintKind int

const (
	// UniqueViolation means a unique index rejected the write.
	UniqueViolation ConstraintKind = iota + 1
	// ForeignKeyViolation means a referenced row does not exist.
	ForeignKeyViolation
)

func (k ConstraintKind) String() string {
	switch k {
	case UniqueViolation:
		return "unique"
	case ForeignKeyViolation:
		return "foreign key"
	default:
		return "unknown"
	}
}

// ConstraintError is returned by stores when a write violates a constraint.
// Constraint holds one of the Constraint* names when it is known.
type ConstraintError struct {
	Kind       ConstraintKind
	Constraint string
	Err        error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%s constraint %q violated: %v", e.Kind, e.Constraint, e.Err)
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}
