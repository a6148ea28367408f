package dto

import (
	"github.com/shopspring/decimal"

	"github.com/rental-ledger/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
// Amount accepts a JSON number or a decimal string.
type CreateTransactionRequest struct {
	PropertyID int64            `json:"property_id" binding:"required,gt=0"`
	Type       string           `json:"type" binding:"required"`
	Category   string           `json:"category" binding:"required"`
	Amount     *decimal.Decimal `json:"amount" binding:"required"`
	Date       string           `json:"date" binding:"required"`
	Notes      string           `json:"notes,omitempty"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	PropertyID *int64           `json:"property_id,omitempty" binding:"omitempty,gt=0"`
	Type       *string          `json:"type,omitempty"`
	Category   *string          `json:"category,omitempty"`
	Amount     *decimal.Decimal `json:"amount,omitempty"`
	Date       *string          `json:"date,omitempty"`
	Notes      *string          `json:"notes,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
// Amount is rendered as a decimal string to keep it exact.
type TransactionResponse struct {
	ID         int64  `json:"id"`
	PropertyID int64  `json:"property_id"`
	Type       string `json:"type"`
	Category   string `json:"category"`
	Amount     string `json:"amount"`
	Date       string `json:"date"`
	Notes      string `json:"notes,omitempty"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Count        int                   `json:"count"`
}

// ToTransactionResponse converts a domain Transaction to a TransactionResponse DTO.
func ToTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:         t.ID,
		PropertyID: t.PropertyID,
		Type:       string(t.Type),
		Category:   t.Category,
		Amount:     t.Amount.String(),
		Date:       t.Date,
		Notes:      t.Notes,
	}
}

// ToTransactionListResponse converts transactions to a TransactionListResponse DTO.
func ToTransactionListResponse(transactions []entity.Transaction) TransactionListResponse {
	items := make([]TransactionResponse, len(transactions))
	for i := range transactions {
		items[i] = ToTransactionResponse(&transactions[i])
	}
	return TransactionListResponse{
		Transactions: items,
		Count:        len(items),
	}
}
