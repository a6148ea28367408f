package adapter

import (
	"context"

	"github.com/rental-ledger/backend/internal/domain/entity"
)

// PropertyRepository defines the interface for property persistence operations.
type PropertyRepository interface {
	// List returns all properties ordered by ID.
	List(ctx context.Context) ([]entity.Property, error)

	// FindByID retrieves a property by its ID.
	FindByID(ctx context.Context, id int64) (*entity.Property, error)

	// ExistsByID checks if a property exists.
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// Create stores a new property and assigns its ID.
	Create(ctx context.Context, property *entity.Property) error
}
