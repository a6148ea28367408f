// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rental-ledger/backend/internal/application/adapter"
	"github.com/rental-ledger/backend/internal/domain/entity"
	domainerror "github.com/rental-ledger/backend/internal/domain/error"
	"github.com/rental-ledger/backend/internal/domain/finance"
)

// MaxNotesLength is the maximum allowed length for transaction notes.
const MaxNotesLength = 1000

// validateFields checks the fields of a transaction about to be stored.
// Amounts are magnitudes; the type carries the direction.
func validateFields(t *entity.Transaction) error {
	if !t.Type.IsValid() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if !isCalendarDate(t.Date) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"date must be a calendar date in YYYY-MM-DD format",
			domainerror.ErrInvalidTransactionDate,
		)
	}

	if t.Amount.LessThan(decimal.Zero) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeNegativeTransactionAmount,
			"amount must not be negative",
			domainerror.ErrNegativeTransactionAmount,
		)
	}

	if strings.TrimSpace(t.Category) == "" {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeMissingTransactionFields,
			"category is required",
			domainerror.ErrMissingTransactionCategory,
		)
	}

	if len(t.Notes) > MaxNotesLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeNotesTooLong,
			fmt.Sprintf("notes must not exceed %d characters", MaxNotesLength),
			domainerror.ErrNotesTooLong,
		)
	}

	return nil
}

func isCalendarDate(s string) bool {
	if len(s) != len(finance.DateLayout) {
		return false
	}
	_, err := time.Parse(finance.DateLayout, s)
	return err == nil
}

// ensurePropertyExists returns a coded error when propertyID is unknown.
func ensurePropertyExists(ctx context.Context, propertyRepo adapter.PropertyRepository, propertyID int64) error {
	exists, err := propertyRepo.ExistsByID(ctx, propertyID)
	if err != nil {
		return fmt.Errorf("failed to check property existence: %w", err)
	}
	if !exists {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTxnPropertyNotFound,
			"property not found",
			domainerror.ErrPropertyNotFoundForTransaction,
		)
	}
	return nil
}

// lookupError converts a non-nil store failure into the use case error.
func lookupError(err error, action string) error {
	if errors.Is(err, domainerror.ErrTransactionNotFound) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}
	return fmt.Errorf("failed to %s transaction: %w", action, err)
}
