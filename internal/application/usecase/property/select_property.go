package property

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rental-ledger/backend/internal/application/adapter"
	domainerror "github.com/rental-ledger/backend/internal/domain/error"
)

// SelectPropertyUseCase changes the selected property after checking it exists.
type SelectPropertyUseCase struct {
	propertyRepo adapter.PropertyRepository
	selection    *Selection
}

// NewSelectPropertyUseCase creates a new SelectPropertyUseCase instance.
func NewSelectPropertyUseCase(propertyRepo adapter.PropertyRepository, selection *Selection) *SelectPropertyUseCase {
	return &SelectPropertyUseCase{
		propertyRepo: propertyRepo,
		selection:    selection,
	}
}

// Execute selects propertyID, or all properties when it is nil.
func (uc *SelectPropertyUseCase) Execute(ctx context.Context, propertyID *int64) error {
	if propertyID != nil {
		if _, err := uc.propertyRepo.FindByID(ctx, *propertyID); err != nil {
			if errors.Is(err, domainerror.ErrPropertyNotFound) {
				return domainerror.NewPropertyError(
					domainerror.ErrCodePropertyNotFound,
					"property not found",
					domainerror.ErrPropertyNotFound,
				)
			}
			return fmt.Errorf("failed to find property: %w", err)
		}
	}

	uc.selection.Set(propertyID)
	slog.Info("Selected property changed", "property_id", propertyID)
	return nil
}
