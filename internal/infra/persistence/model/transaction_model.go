package model

import (
	"time"

	"budget/internal/domain/entity"
)

// TransactionModel mirrors the 'transactions' table.
type TransactionModel struct {
	ID        int       `gorm:"primaryKey;autoIncrement"`
	Amount    float64   `gorm:"type:numeric(12,2);not null"`
	Date      time.Time `gorm:"not null"`
	UserID    int       `gorm:"not null;index"`
	PlaceID   int       `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User  *UserModel  `gorm:"foreignKey:UserID"`
	Place *PlaceModel `gorm:"foreignKey:PlaceID"`
}

// TableName explicitly sets the table name for GORM.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToDomain maps the row, and its preloaded user and place, to a domain transaction.
func (m *TransactionModel) ToDomain() *entity.Transaction {
	if m == nil {
		return nil
	}

	tx := &entity.Transaction{
		ID:        m.ID,
		Amount:    m.Amount,
		Date:      m.Date,
		UserID:    m.UserID,
		PlaceID:   m.PlaceID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.User != nil {
		tx.User = &entity.UserSummary{ID: m.User.ID, Name: m.User.Name}
	}
	if m.Place != nil {
		tx.Place = m.Place.ToDomain()
	}

	return tx
}

// FromTransactionDomain maps a domain transaction to its row.
func FromTransactionDomain(tx *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:        tx.ID,
		Amount:    tx.Amount,
		Date:      tx.Date,
		UserID:    tx.UserID,
		PlaceID:   tx.PlaceID,
		CreatedAt: tx.CreatedAt,
		UpdatedAt: tx.UpdatedAt,
	}
}
