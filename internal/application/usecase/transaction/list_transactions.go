package transaction

import (
	"context"
	"fmt"

	"github.com/rental-ledger/backend/internal/application/adapter"
	"github.com/rental-ledger/backend/internal/domain/entity"
	domainerror "github.com/rental-ledger/backend/internal/domain/error"
)

// ListTransactionsInput represents the input for listing transactions.
// An empty StartDate or EndDate disables the date range.
type ListTransactionsInput struct {
	PropertyID *int64
	StartDate  string
	EndDate    string
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []entity.Transaction
}

// ListTransactionsUseCase handles listing transactions.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute returns the transactions matching the input in store order.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	for _, d := range []string{input.StartDate, input.EndDate} {
		if d != "" && !isCalendarDate(d) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionDate,
				"start_date and end_date must be in YYYY-MM-DD format",
				domainerror.ErrInvalidTransactionDate,
			)
		}
	}

	transactions, err := uc.transactionRepo.FindByPropertyAndDate(ctx, input.PropertyID, input.StartDate, input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if transactions == nil {
		transactions = []entity.Transaction{}
	}

	return &ListTransactionsOutput{Transactions: transactions}, nil
}
