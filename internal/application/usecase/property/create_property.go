package property

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rental-ledger/backend/internal/application/adapter"
	"github.com/rental-ledger/backend/internal/domain/entity"
	domainerror "github.com/rental-ledger/backend/internal/domain/error"
)

// MaxPropertyNameLength is the maximum allowed length for property names.
const MaxPropertyNameLength = 100

// CreatePropertyInput represents the input for property creation.
type CreatePropertyInput struct {
	Name    string
	Address string
}

// CreatePropertyUseCase handles property creation.
type CreatePropertyUseCase struct {
	propertyRepo adapter.PropertyRepository
}

// NewCreatePropertyUseCase creates a new CreatePropertyUseCase instance.
func NewCreatePropertyUseCase(propertyRepo adapter.PropertyRepository) *CreatePropertyUseCase {
	return &CreatePropertyUseCase{
		propertyRepo: propertyRepo,
	}
}

// Execute validates and stores a new property.
func (uc *CreatePropertyUseCase) Execute(ctx context.Context, input CreatePropertyInput) (*entity.Property, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewPropertyError(
			domainerror.ErrCodeMissingPropertyName,
			"name is required",
			domainerror.ErrMissingPropertyName,
		)
	}
	if len(name) > MaxPropertyNameLength {
		return nil, domainerror.NewPropertyError(
			domainerror.ErrCodePropertyNameTooLong,
			fmt.Sprintf("name must not exceed %d characters", MaxPropertyNameLength),
			domainerror.ErrPropertyNameTooLong,
		)
	}

	property := entity.NewProperty(name, strings.TrimSpace(input.Address))
	if err := uc.propertyRepo.Create(ctx, property); err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}

	slog.Info("Property created", "property_id", property.ID)
	return property, nil
}
