package entity

import "time"

// Property represents a rental or event property that transactions are booked against.
type Property struct {
	ID        int64
	Name      string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewProperty creates a new Property entity. The ID is assigned by the store.
func NewProperty(name, address string) *Property {
	now := time.Now().UTC()

	return &Property{
		Name:      name,
		Address:   address,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
