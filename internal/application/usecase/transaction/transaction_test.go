package transaction

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/rental-ledger/backend/internal/application/usecase/usecasetest"
	"github.com/rental-ledger/backend/internal/domain/entity"
	domainerror "github.com/rental-ledger/backend/internal/domain/error"
)

func newRepos() (*usecasetest.TransactionRepository, *usecasetest.PropertyRepository) {
	txRepo := usecasetest.NewTransactionRepository(
		entity.Transaction{ID: 1, PropertyID: 1, Type: entity.TransactionTypeIncome, Category: "Rent", Amount: decimal.NewFromInt(1000), Date: "2024-01-15"},
		entity.Transaction{ID: 2, PropertyID: 2, Type: entity.TransactionTypeExpense, Category: "Repairs", Amount: decimal.NewFromInt(80), Date: "2024-03-02"},
	)
	propRepo := usecasetest.NewPropertyRepository(entity.Property{ID: 1, Name: "Lake House"}, entity.Property{ID: 2, Name: "Barn Venue"})
	return txRepo, propRepo
}

func assertTransactionCode(t *testing.T, err error, expected domainerror.TransactionErrorCode) {
	t.Helper()
	var txErr *domainerror.TransactionError
	if !errors.As(err, &txErr) {
		t.Fatalf("expected TransactionError, got %v", err)
	}
	if txErr.Code != expected {
		t.Errorf("expected code %s, got %s", expected, txErr.Code)
	}
}

func TestCreateTransactionUseCase(t *testing.T) {
	valid := CreateTransactionInput{
		PropertyID: 1,
		Type:       entity.TransactionTypeExpense,
		Category:   "Cleaning",
		Amount:     decimal.RequireFromString("45.90"),
		Date:       "2024-02-29",
		Notes:      "after check-out",
	}

	tests := []struct {
		name         string
		mutate       func(in *CreateTransactionInput)
		expectedCode domainerror.TransactionErrorCode
	}{
		{name: "valid", mutate: func(in *CreateTransactionInput) {}},
		{name: "zero amount is allowed", mutate: func(in *CreateTransactionInput) { in.Amount = decimal.Zero }},
		{name: "invalid type", mutate: func(in *CreateTransactionInput) { in.Type = "refund" }, expectedCode: domainerror.ErrCodeInvalidTransactionType},
		{name: "timestamp date", mutate: func(in *CreateTransactionInput) { in.Date = "2024-02-29T10:00:00Z" }, expectedCode: domainerror.ErrCodeInvalidTransactionDate},
		{name: "impossible date", mutate: func(in *CreateTransactionInput) { in.Date = "2023-02-29" }, expectedCode: domainerror.ErrCodeInvalidTransactionDate},
		{name: "negative amount", mutate: func(in *CreateTransactionInput) { in.Amount = decimal.NewFromInt(-1) }, expectedCode: domainerror.ErrCodeNegativeTransactionAmount},
		{name: "blank category", mutate: func(in *CreateTransactionInput) { in.Category = "  " }, expectedCode: domainerror.ErrCodeMissingTransactionFields},
		{name: "notes too long", mutate: func(in *CreateTransactionInput) { in.Notes = strings.Repeat("n", MaxNotesLength+1) }, expectedCode: domainerror.ErrCodeNotesTooLong},
		{name: "unknown property", mutate: func(in *CreateTransactionInput) { in.PropertyID = 42 }, expectedCode: domainerror.ErrCodeTxnPropertyNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txRepo, propRepo := newRepos()
			input := valid
			tt.mutate(&input)

			transaction, err := NewCreateTransactionUseCase(txRepo, propRepo).Execute(context.Background(), input)

			if tt.expectedCode != "" {
				assertTransactionCode(t, err, tt.expectedCode)
				if len(txRepo.Transactions) != 2 {
					t.Error("expected nothing to be stored")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if transaction.ID != 3 {
				t.Errorf("expected ID 3, got %d", transaction.ID)
			}
			if len(txRepo.Transactions) != 3 {
				t.Errorf("expected 3 stored transactions, got %d", len(txRepo.Transactions))
			}
		})
	}
}

func TestUpdateTransactionUseCase(t *testing.T) {
	txRepo, propRepo := newRepos()
	uc := NewUpdateTransactionUseCase(txRepo, propRepo)
	amount := decimal.NewFromInt(1100)
	notes := "rent increase"

	updated, err := uc.Execute(context.Background(), UpdateTransactionInput{TransactionID: 1, Amount: &amount, Notes: &notes})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !updated.Amount.Equal(amount) || updated.Notes != notes || updated.Category != "Rent" {
		t.Errorf("unexpected update result %+v", updated)
	}

	stored, _ := txRepo.FindByID(context.Background(), 1)
	if !stored.Amount.Equal(amount) {
		t.Errorf("expected stored amount %s, got %s", amount, stored.Amount)
	}
}

func TestUpdateTransactionUseCase_Errors(t *testing.T) {
	negative := decimal.NewFromInt(-10)
	unknownProperty := int64(99)

	tests := []struct {
		name         string
		input        UpdateTransactionInput
		expectedCode domainerror.TransactionErrorCode
	}{
		{name: "missing transaction", input: UpdateTransactionInput{TransactionID: 50}, expectedCode: domainerror.ErrCodeTransactionNotFound},
		{name: "negative amount", input: UpdateTransactionInput{TransactionID: 1, Amount: &negative}, expectedCode: domainerror.ErrCodeNegativeTransactionAmount},
		{name: "unknown property", input: UpdateTransactionInput{TransactionID: 1, PropertyID: &unknownProperty}, expectedCode: domainerror.ErrCodeTxnPropertyNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txRepo, propRepo := newRepos()

			_, err := NewUpdateTransactionUseCase(txRepo, propRepo).Execute(context.Background(), tt.input)

			assertTransactionCode(t, err, tt.expectedCode)
		})
	}
}

func TestDeleteTransactionUseCase(t *testing.T) {
	txRepo, _ := newRepos()
	uc := NewDeleteTransactionUseCase(txRepo)

	if err := uc.Execute(context.Background(), 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(txRepo.Transactions) != 1 {
		t.Errorf("expected 1 remaining transaction, got %d", len(txRepo.Transactions))
	}

	assertTransactionCode(t, uc.Execute(context.Background(), 2), domainerror.ErrCodeTransactionNotFound)
}

func TestGetTransactionUseCase(t *testing.T) {
	txRepo, _ := newRepos()
	uc := NewGetTransactionUseCase(txRepo)

	transaction, err := uc.Execute(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if transaction.Category != "Rent" {
		t.Errorf("expected Rent, got %s", transaction.Category)
	}

	_, err = uc.Execute(context.Background(), 7)
	assertTransactionCode(t, err, domainerror.ErrCodeTransactionNotFound)
}

func TestListTransactionsUseCase(t *testing.T) {
	txRepo, _ := newRepos()
	uc := NewListTransactionsUseCase(txRepo)
	propertyID := int64(2)

	output, err := uc.Execute(context.Background(), ListTransactionsInput{PropertyID: &propertyID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Transactions) != 1 || output.Transactions[0].ID != 2 {
		t.Errorf("unexpected transactions %+v", output.Transactions)
	}

	output, err = uc.Execute(context.Background(), ListTransactionsInput{StartDate: "2024-01-01", EndDate: "2024-01-31"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Transactions) != 1 || output.Transactions[0].ID != 1 {
		t.Errorf("unexpected transactions %+v", output.Transactions)
	}

	_, err = uc.Execute(context.Background(), ListTransactionsInput{StartDate: "01/01/2024", EndDate: "2024-01-31"})
	assertTransactionCode(t, err, domainerror.ErrCodeInvalidTransactionDate)
}
