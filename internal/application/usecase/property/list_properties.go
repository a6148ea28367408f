// Package property contains property-related use cases.
package property

import (
	"context"
	"fmt"

	"github.com/rental-ledger/backend/internal/application/adapter"
	"github.com/rental-ledger/backend/internal/domain/entity"
)

// ListPropertiesOutput represents the output of listing properties.
type ListPropertiesOutput struct {
	Properties []entity.Property
}

// ListPropertiesUseCase handles listing properties.
type ListPropertiesUseCase struct {
	propertyRepo adapter.PropertyRepository
}

// NewListPropertiesUseCase creates a new ListPropertiesUseCase instance.
func NewListPropertiesUseCase(propertyRepo adapter.PropertyRepository) *ListPropertiesUseCase {
	return &ListPropertiesUseCase{
		propertyRepo: propertyRepo,
	}
}

// Execute returns every property.
func (uc *ListPropertiesUseCase) Execute(ctx context.Context) (*ListPropertiesOutput, error) {
	properties, err := uc.propertyRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	return &ListPropertiesOutput{Properties: properties}, nil
}
