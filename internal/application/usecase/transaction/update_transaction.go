package transaction

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rental-ledger/backend/internal/application/adapter"
	"github.com/rental-ledger/backend/internal/domain/entity"
)

// UpdateTransactionInput represents the input for transaction update.
// Nil fields are left unchanged.
type UpdateTransactionInput struct {
	TransactionID int64
	PropertyID    *int64
	Type          *entity.TransactionType
	Category      *string
	Amount        *decimal.Decimal
	Date          *string
	Notes         *string
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	propertyRepo    adapter.PropertyRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	propertyRepo adapter.PropertyRepository,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		propertyRepo:    propertyRepo,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*entity.Transaction, error) {
	transaction, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		return nil, lookupError(err, "find")
	}

	propertyChanged := input.PropertyID != nil && *input.PropertyID != transaction.PropertyID

	if input.PropertyID != nil {
		transaction.PropertyID = *input.PropertyID
	}
	if input.Type != nil {
		transaction.Type = *input.Type
	}
	if input.Category != nil {
		transaction.Category = strings.TrimSpace(*input.Category)
	}
	if input.Amount != nil {
		transaction.Amount = *input.Amount
	}
	if input.Date != nil {
		transaction.Date = *input.Date
	}
	if input.Notes != nil {
		transaction.Notes = *input.Notes
	}

	if err := validateFields(transaction); err != nil {
		return nil, err
	}
	if propertyChanged {
		if err := ensurePropertyExists(ctx, uc.propertyRepo, transaction.PropertyID); err != nil {
			return nil, err
		}
	}

	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return transaction, nil
}
