package persistence

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rental-ledger/backend/internal/domain/entity"
	domainerror "github.com/rental-ledger/backend/internal/domain/error"
	"github.com/rental-ledger/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = conn.Close() })

	db, err := gorm.Open(sqlite.Dialector{Conn: conn}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}
	if err := db.AutoMigrate(&model.PropertyModel{}, &model.TransactionModel{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func seed(t *testing.T, db *gorm.DB) (*entity.Property, *entity.Property, []*entity.Transaction) {
	t.Helper()
	ctx := context.Background()
	props := NewPropertyRepository(db)
	txs := NewTransactionRepository(db)

	lake := entity.NewProperty("Lake House", "1 Shore Rd")
	barn := entity.NewProperty("Barn Venue", "")
	for _, p := range []*entity.Property{lake, barn} {
		if err := props.Create(ctx, p); err != nil {
			t.Fatalf("failed to create property: %v", err)
		}
	}

	transactions := []*entity.Transaction{
		entity.NewTransaction(lake.ID, entity.TransactionTypeIncome, "Rent", decimal.NewFromInt(1200), "2024-01-15", ""),
		entity.NewTransaction(lake.ID, entity.TransactionTypeExpense, "Repairs", decimal.RequireFromString("80.25"), "2024-02-01", "gutter"),
		entity.NewTransaction(barn.ID, entity.TransactionTypeIncome, "Event", decimal.NewFromInt(3000), "2024-01-31", ""),
		entity.NewTransaction(barn.ID, entity.TransactionTypeExpense, "Tax", decimal.NewFromInt(400), "2023-12-31", ""),
	}
	for _, tx := range transactions {
		if err := txs.Create(ctx, tx); err != nil {
			t.Fatalf("failed to create transaction: %v", err)
		}
	}
	return lake, barn, transactions
}

func TestTransactionRepository_FindByPropertyAndDate(t *testing.T) {
	db := newTestDB(t)
	lake, _, _ := seed(t, db)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	tests := []struct {
		name        string
		propertyID  *int64
		start, end  string
		expectedIDs []int64
	}{
		{name: "everything in store order", expectedIDs: []int64{1, 2, 3, 4}},
		{name: "one property", propertyID: &lake.ID, expectedIDs: []int64{1, 2}},
		{name: "inclusive range", start: "2024-01-01", end: "2024-01-31", expectedIDs: []int64{1, 3}},
		{name: "property and range", propertyID: &lake.ID, start: "2024-02-01", end: "2024-02-29", expectedIDs: []int64{2}},
		{name: "half-open range is ignored", start: "2024-01-01", expectedIDs: []int64{1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := repo.FindByPropertyAndDate(ctx, tt.propertyID, tt.start, tt.end)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(result) != len(tt.expectedIDs) {
				t.Fatalf("expected %d transactions, got %d", len(tt.expectedIDs), len(result))
			}
			for i, id := range tt.expectedIDs {
				if result[i].ID != id {
					t.Errorf("position %d: expected ID %d, got %d", i, id, result[i].ID)
				}
			}
		})
	}
}

func TestTransactionRepository_RoundTrip(t *testing.T) {
	db := newTestDB(t)
	_, barn, transactions := seed(t, db)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	found, err := repo.FindByID(ctx, transactions[1].ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found.Amount.Equal(decimal.RequireFromString("80.25")) || found.Notes != "gutter" || found.Date != "2024-02-01" {
		t.Errorf("unexpected transaction %+v", found)
	}

	found.PropertyID = barn.ID
	found.Category = "Roof"
	if err := repo.Update(ctx, found); err != nil {
		t.Fatalf("unexpected update error: %v", err)
	}
	updated, _ := repo.FindByID(ctx, found.ID)
	if updated.Category != "Roof" || updated.PropertyID != barn.ID {
		t.Errorf("expected updated fields, got %+v", updated)
	}

	if err := repo.Delete(ctx, found.ID); err != nil {
		t.Fatalf("unexpected delete error: %v", err)
	}
	if _, err := repo.FindByID(ctx, found.ID); !errors.Is(err, domainerror.ErrTransactionNotFound) {
		t.Errorf("expected ErrTransactionNotFound, got %v", err)
	}
	if err := repo.Delete(ctx, found.ID); !errors.Is(err, domainerror.ErrTransactionNotFound) {
		t.Errorf("expected ErrTransactionNotFound on second delete, got %v", err)
	}
	missing := &entity.Transaction{ID: 999, Type: entity.TransactionTypeIncome}
	if err := repo.Update(ctx, missing); !errors.Is(err, domainerror.ErrTransactionNotFound) {
		t.Errorf("expected ErrTransactionNotFound on update, got %v", err)
	}
}

func TestPropertyRepository(t *testing.T) {
	db := newTestDB(t)
	lake, barn, _ := seed(t, db)
	repo := NewPropertyRepository(db)
	ctx := context.Background()

	properties, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(properties) != 2 || properties[0].ID != lake.ID || properties[1].Name != "Barn Venue" {
		t.Errorf("unexpected properties %+v", properties)
	}

	exists, err := repo.ExistsByID(ctx, barn.ID)
	if err != nil || !exists {
		t.Errorf("expected property %d to exist, got %v (%v)", barn.ID, exists, err)
	}
	exists, _ = repo.ExistsByID(ctx, 42)
	if exists {
		t.Error("expected property 42 not to exist")
	}

	if _, err := repo.FindByID(ctx, 42); !errors.Is(err, domainerror.ErrPropertyNotFound) {
		t.Errorf("expected ErrPropertyNotFound, got %v", err)
	}
}
