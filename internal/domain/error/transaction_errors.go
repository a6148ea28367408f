// Package error defines domain-specific errors for the Rental Ledger application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionType is returned when the transaction type is invalid.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidTransactionDate is returned when the transaction date is not a YYYY-MM-DD calendar date.
	ErrInvalidTransactionDate = errors.New("invalid transaction date")

	// ErrNegativeTransactionAmount is returned when the transaction amount is below zero.
	ErrNegativeTransactionAmount = errors.New("transaction amount must not be negative")

	// ErrMissingTransactionCategory is returned when the category is empty.
	ErrMissingTransactionCategory = errors.New("category is required")

	// ErrNotesTooLong is returned when the transaction notes exceed the maximum length.
	ErrNotesTooLong = errors.New("notes too long")

	// ErrPropertyNotFoundForTransaction is returned when the referenced property does not exist.
	ErrPropertyNotFoundForTransaction = errors.New("property not found")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType    TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionDate    TransactionErrorCode = "TXN-010002"
	ErrCodeNegativeTransactionAmount TransactionErrorCode = "TXN-010003"
	ErrCodeMissingTransactionFields  TransactionErrorCode = "TXN-010004"
	ErrCodeNotesTooLong              TransactionErrorCode = "TXN-010005"
	ErrCodeTxnPropertyNotFound       TransactionErrorCode = "TXN-010006"

	// Lookup errors (02XXXX)
	ErrCodeTransactionNotFound TransactionErrorCode = "TXN-020001"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
