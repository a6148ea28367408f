package finance

import (
	"github.com/shopspring/decimal"

	"github.com/rental-ledger/backend/internal/domain/entity"
)

// TransactionSummary holds aggregate totals over a set of transactions.
type TransactionSummary struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	NetProfit    decimal.Decimal
}

// IsWellFormed reports whether t can contribute to totals: its date parses,
// its type is income or expense and its amount is not negative.
func IsWellFormed(t entity.Transaction) bool {
	if !t.Type.IsValid() || t.Amount.IsNegative() {
		return false
	}
	_, ok := ParseDate(t.Date)
	return ok
}

// CountMalformed returns how many transactions IsWellFormed rejects.
func CountMalformed(transactions []entity.Transaction) int {
	n := 0
	for _, t := range transactions {
		if !IsWellFormed(t) {
			n++
		}
	}
	return n
}

// Summarize totals income and expense over transactions. Malformed records
// contribute to neither total. Empty input yields an all-zero summary.
func Summarize(transactions []entity.Transaction) TransactionSummary {
	income := decimal.Zero
	expense := decimal.Zero

	for _, t := range transactions {
		if !IsWellFormed(t) {
			continue
		}
		switch t.Type {
		case entity.TransactionTypeIncome:
			income = income.Add(t.Amount)
		case entity.TransactionTypeExpense:
			expense = expense.Add(t.Amount)
		}
	}

	return TransactionSummary{
		TotalIncome:  income,
		TotalExpense: expense,
		NetProfit:    income.Sub(expense),
	}
}
