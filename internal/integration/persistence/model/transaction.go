// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rental-ledger/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
// Date is kept as an ISO string so range queries compare lexicographically.
type TransactionModel struct {
	ID         int64           `gorm:"primaryKey;autoIncrement"`
	PropertyID int64           `gorm:"not null;index"`
	Type       string          `gorm:"type:varchar(10);not null"`
	Category   string          `gorm:"type:varchar(100);not null"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date       string          `gorm:"type:varchar(10);not null;index"`
	Notes      string          `gorm:"type:text"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`

	Property *PropertyModel `gorm:"foreignKey:PropertyID;references:ID"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() entity.Transaction {
	return entity.Transaction{
		ID:         m.ID,
		PropertyID: m.PropertyID,
		Type:       entity.TransactionType(m.Type),
		Category:   m.Category,
		Amount:     m.Amount,
		Date:       m.Date,
		Notes:      m.Notes,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:         transaction.ID,
		PropertyID: transaction.PropertyID,
		Type:       string(transaction.Type),
		Category:   transaction.Category,
		Amount:     transaction.Amount,
		Date:       transaction.Date,
		Notes:      transaction.Notes,
	}
}
