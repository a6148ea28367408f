// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// IsValid reports whether the type is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeExpense || t == TransactionTypeIncome
}

// Transaction represents a dated income or expense recorded against a property.
// Amount is never negative; Type decides the sign of its contribution to totals.
type Transaction struct {
	ID         int64
	PropertyID int64
	Type       TransactionType
	Category   string
	Amount     decimal.Decimal
	Date       string // ISO 8601 calendar date, YYYY-MM-DD
	Notes      string // Empty when absent
}

// NewTransaction creates a new Transaction entity. The ID is assigned by the store.
func NewTransaction(
	propertyID int64,
	transactionType TransactionType,
	category string,
	amount decimal.Decimal,
	date string,
	notes string,
) *Transaction {
	return &Transaction{
		PropertyID: propertyID,
		Type:       transactionType,
		Category:   category,
		Amount:     amount,
		Date:       date,
		Notes:      notes,
	}
}
