package model

import (
	"time"

	"budget/internal/domain/entity"
)

// PlaceModel mirrors the 'places' table.
type PlaceModel struct {
	ID        int    `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(255);not null;uniqueIndex:idx_place_name_unique"`
	Rating    *int   `gorm:"type:smallint"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Transactions []TransactionModel `gorm:"foreignKey:PlaceID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (PlaceModel) TableName() string {
	return "places"
}

// ToDomain maps the row to a domain place.
func (m *PlaceModel) ToDomain() *entity.Place {
	if m == nil {
		return nil
	}

	return &entity.Place{
		ID:        m.ID,
		Name:      m.Name,
		Rating:    m.Rating,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromPlaceDomain maps a domain place to its row.
func FromPlaceDomain(place *entity.Place) *PlaceModel {
	return &PlaceModel{
		ID:        place.ID,
		Name:      place.Name,
		Rating:    place.Rating,
		CreatedAt: place.CreatedAt,
		UpdatedAt: place.UpdatedAt,
	}
}
