package entity

import "time"

// Transaction is a single income (positive amount) or expense (negative amount).
type Transaction struct {
	ID        int
	Amount    float64
	Date      time.Time
	UserID    int
	PlaceID   int
	User      *UserSummary // populated on reads
	Place     *Place       // populated on reads
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TransactionFilter narrows transaction listings. Zero values mean "any".
type TransactionFilter struct {
	UserID  int
	PlaceID int
}
