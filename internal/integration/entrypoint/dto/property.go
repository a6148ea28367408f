package dto

import (
	"time"

	"github.com/rental-ledger/backend/internal/domain/entity"
)

// CreatePropertyRequest represents the request body for property creation.
type CreatePropertyRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address,omitempty" binding:"omitempty,max=255"`
}

// SelectPropertyRequest represents the request body for changing the
// selected property. A null property_id selects all properties.
type SelectPropertyRequest struct {
	PropertyID *int64 `json:"property_id" binding:"omitempty,gt=0"`
}

// PropertyResponse represents a single property in API responses.
type PropertyResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// PropertyListResponse represents the response for listing properties.
type PropertyListResponse struct {
	Properties []PropertyResponse `json:"properties"`
}

// SelectionResponse represents the currently selected property.
type SelectionResponse struct {
	PropertyID *int64 `json:"property_id"`
}

// ToPropertyResponse converts a domain Property to a PropertyResponse DTO.
func ToPropertyResponse(p *entity.Property) PropertyResponse {
	return PropertyResponse{
		ID:        p.ID,
		Name:      p.Name,
		Address:   p.Address,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.Format(time.RFC3339),
	}
}

// ToPropertyListResponse converts properties to a PropertyListResponse DTO.
func ToPropertyListResponse(properties []entity.Property) PropertyListResponse {
	items := make([]PropertyResponse, len(properties))
	for i := range properties {
		items[i] = ToPropertyResponse(&properties[i])
	}
	return PropertyListResponse{Properties: items}
}
