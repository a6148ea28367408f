package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rental-ledger/backend/internal/application/adapter"
	"github.com/rental-ledger/backend/internal/domain/entity"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	PropertyID int64
	Type       entity.TransactionType
	Category   string
	Amount     decimal.Decimal
	Date       string
	Notes      string
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	propertyRepo    adapter.PropertyRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	propertyRepo adapter.PropertyRepository,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		propertyRepo:    propertyRepo,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*entity.Transaction, error) {
	transaction := entity.NewTransaction(
		input.PropertyID,
		input.Type,
		strings.TrimSpace(input.Category),
		input.Amount,
		input.Date,
		input.Notes,
	)

	if err := validateFields(transaction); err != nil {
		return nil, err
	}
	if err := ensurePropertyExists(ctx, uc.propertyRepo, transaction.PropertyID); err != nil {
		return nil, err
	}

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	slog.Info("Transaction created",
		"transaction_id", transaction.ID,
		"property_id", transaction.PropertyID,
		"type", transaction.Type,
	)
	return transaction, nil
}
