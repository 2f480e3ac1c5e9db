// Package model holds the GORM persistence models and their mapping to domain entities.
package model

import (
	"time"

	"gorm.io/datatypes"

	"budget/internal/domain/entity"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID           int                         `gorm:"primaryKey;autoIncrement"`
	Name         string                      `gorm:"type:varchar(255);not null"`
	Email        string                      `gorm:"type:varchar(255);not null;uniqueIndex:idx_user_email_unique"`
	PasswordHash string                      `gorm:"type:varchar(255);not null"`
	Roles        datatypes.JSONSlice[string] `gorm:"type:jsonb;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Transactions []TransactionModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ToDomain maps the row to a domain user.
func (m *UserModel) ToDomain() *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Roles:        entity.RolesFromStrings(m.Roles),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromUserDomain maps a domain user to its row.
func FromUserDomain(user *entity.User) *UserModel {
	return &UserModel{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Roles:        datatypes.NewJSONSlice(user.Roles.ToStrings()),
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}
