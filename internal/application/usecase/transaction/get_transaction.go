package transaction

import (
	"context"

	"github.com/rental-ledger/backend/internal/application/adapter"
	"github.com/rental-ledger/backend/internal/domain/entity"
)

// GetTransactionUseCase handles fetching a single transaction.
type GetTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetTransactionUseCase creates a new GetTransactionUseCase instance.
func NewGetTransactionUseCase(transactionRepo adapter.TransactionRepository) *GetTransactionUseCase {
	return &GetTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute returns the transaction with the given ID.
func (uc *GetTransactionUseCase) Execute(ctx context.Context, id int64) (*entity.Transaction, error) {
	transaction, err := uc.transactionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "find")
	}
	return transaction, nil
}
