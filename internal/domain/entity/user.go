// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is an account that owns transactions. PasswordHash never leaves the
// usecase layer; handlers map users to response DTOs without it.
type User struct {
	ID           int
	Name         string
	Email        string
	PasswordHash string
	Roles        Roles
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserSummary is the slim projection of a user embedded in transactions.
type UserSummary struct {
	ID   int
	Name string
}
