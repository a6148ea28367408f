// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/rental-ledger/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence operations.
// It is the store the reporting engine reads its input from.
type TransactionRepository interface {
	// FindByPropertyAndDate returns transactions for one property, or for all
	// properties when propertyID is nil. When both startDate and endDate are
	// non-empty only transactions with startDate <= date <= endDate are returned;
	// ISO dates compare lexicographically in chronological order.
	FindByPropertyAndDate(ctx context.Context, propertyID *int64, startDate, endDate string) ([]entity.Transaction, error)

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id int64) (*entity.Transaction, error)

	// Create stores a new transaction and assigns its ID.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// Update replaces an existing transaction.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction.
	Delete(ctx context.Context, id int64) error
}
