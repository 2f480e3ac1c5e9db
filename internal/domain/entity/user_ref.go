package entity

import (
	"strconv"

	"github.com/pkg/errors"
)

// SelfSentinel is the literal path value that addresses the caller's own user.
const SelfSentinel = "me"

// ErrInvalidUserRef is returned when a path value is neither a positive id nor the sentinel.
var ErrInvalidUserRef = errors.New("user reference must be a positive integer or \"me\"")

// UserRef is a user path parameter: either a numeric id or the self sentinel.
type UserRef struct {
	id   int
	self bool
}

// UserRefID builds a reference to a concrete user id.
func UserRefID(id int) UserRef {
	return UserRef{id: id}
}

// UserRefSelf builds a reference to the caller.
func UserRefSelf() UserRef {
	return UserRef{self: true}
}

// ParseUserRef parses a raw path value.
func ParseUserRef(raw string) (UserRef, error) {
	if raw == SelfSentinel {
		return UserRefSelf(), nil
	}

	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return UserRef{}, errors.WithStack(ErrInvalidUserRef)
	}

	return UserRefID(id), nil
}

// IsSelf reports whether the reference is the self sentinel.
func (r UserRef) IsSelf() bool {
	return r.self
}

// Resolve returns the concrete id, substituting callerID for the sentinel.
func (r UserRef) Resolve(callerID int) int {
	if r.self {
		return callerID
	}

	return r.id
}

// RefersTo reports whether the reference addresses callerID.
func (r UserRef) RefersTo(callerID int) bool {
	return r.self || r.id == callerID
}

func (r UserRef) String() string {
	if r.self {
		return SelfSentinel
	}

	return strconv.Itoa(r.id)
}
