package model

import (
	"time"

	"github.com/rental-ledger/backend/internal/domain/entity"
)

// PropertyModel represents the properties table in the database.
type PropertyModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Address   string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the PropertyModel.
func (PropertyModel) TableName() string {
	return "properties"
}

// ToEntity converts a PropertyModel to a domain Property entity.
func (m *PropertyModel) ToEntity() entity.Property {
	return entity.Property{
		ID:        m.ID,
		Name:      m.Name,
		Address:   m.Address,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// PropertyFromEntity creates a PropertyModel from a domain Property entity.
func PropertyFromEntity(property *entity.Property) *PropertyModel {
	return &PropertyModel{
		ID:        property.ID,
		Name:      property.Name,
		Address:   property.Address,
		CreatedAt: property.CreatedAt,
		UpdatedAt: property.UpdatedAt,
	}
}
