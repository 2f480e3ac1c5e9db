package entity

import "time"

// Place is an income or expense source transactions are booked against.
type Place struct {
	ID        int
	Name      string
	Rating    *int // nil when the place has not been rated
	CreatedAt time.Time
	UpdatedAt time.Time
}
