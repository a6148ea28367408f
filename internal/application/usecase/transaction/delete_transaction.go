package transaction

import (
	"context"
	"log/slog"

	"github.com/rental-ledger/backend/internal/application/adapter"
)

// DeleteTransactionUseCase handles transaction deletion logic.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(transactionRepo adapter.TransactionRepository) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction deletion.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, id int64) error {
	if _, err := uc.transactionRepo.FindByID(ctx, id); err != nil {
		return lookupError(err, "find")
	}

	if err := uc.transactionRepo.Delete(ctx, id); err != nil {
		return lookupError(err, "delete")
	}

	slog.Info("Transaction deleted", "transaction_id", id)
	return nil
}
