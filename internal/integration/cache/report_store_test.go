package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/rental-ledger/backend/internal/application/adapter"
	"github.com/rental-ledger/backend/internal/domain/entity"
	domainerror "github.com/rental-ledger/backend/internal/domain/error"
	"github.com/rental-ledger/backend/internal/domain/finance"
)

func newSnapshot() *adapter.ReportSnapshot {
	propertyID := int64(3)
	quarter := 2
	return &adapter.ReportSnapshot{
		ID: uuid.New(),
		Filter: finance.ReportFilter{
			PropertyID: &propertyID,
			Period:     finance.PeriodQuarter,
			Year:       2024,
			Quarter:    &quarter,
		},
		Report: finance.FinancialReport{
			Period:       "2024-Q2",
			TotalIncome:  decimal.NewFromInt(900),
			TotalExpense: decimal.RequireFromString("120.50"),
			NetProfit:    decimal.RequireFromString("779.50"),
			Transactions: []entity.Transaction{
				{ID: 7, PropertyID: 3, Type: entity.TransactionTypeExpense, Category: "Cleaning", Amount: decimal.RequireFromString("120.50"), Date: "2024-05-10", Notes: `say "hi"`},
			},
		},
		PropertyLabel: "Lake House",
		GeneratedAt:   time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestRedisReportStore_RoundTrip(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	store := NewRedisReportStore(client)
	ctx := context.Background()
	snapshot := newSnapshot()

	if err := store.Save(ctx, snapshot, time.Hour); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	got, err := store.Get(ctx, snapshot.ID)
	if err != nil {
		t.Fatalf("unexpected get error: %v", err)
	}

	expectedCSV := finance.SerializeCSV(snapshot.Report, snapshot.PropertyLabel)
	if csv := finance.SerializeCSV(got.Report, got.PropertyLabel); csv != expectedCSV {
		t.Errorf("expected identical CSV after round trip, got:\n%s\nexpected:\n%s", csv, expectedCSV)
	}
	if got.Filter.Quarter == nil || *got.Filter.Quarter != 2 || got.Filter.Month != nil {
		t.Errorf("unexpected filter %+v", got.Filter)
	}
	if !got.GeneratedAt.Equal(snapshot.GeneratedAt) {
		t.Errorf("expected generated at %s, got %s", snapshot.GeneratedAt, got.GeneratedAt)
	}
}

func TestRedisReportStore_Expiry(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	store := NewRedisReportStore(client)
	ctx := context.Background()
	snapshot := newSnapshot()

	if err := store.Save(ctx, snapshot, time.Minute); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}
	server.FastForward(2 * time.Minute)

	if _, err := store.Get(ctx, snapshot.ID); !errors.Is(err, domainerror.ErrReportNotFound) {
		t.Errorf("expected ErrReportNotFound after expiry, got %v", err)
	}
}

func TestMemoryReportStore(t *testing.T) {
	store := NewMemoryReportStore().(*memoryReportStore)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()
	snapshot := newSnapshot()

	if err := store.Save(ctx, snapshot, time.Minute); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}
	if _, err := store.Get(ctx, snapshot.ID); err != nil {
		t.Fatalf("unexpected get error: %v", err)
	}

	now = now.Add(time.Minute)
	if _, err := store.Get(ctx, snapshot.ID); !errors.Is(err, domainerror.ErrReportNotFound) {
		t.Errorf("expected ErrReportNotFound after expiry, got %v", err)
	}
	if _, err := store.Get(ctx, uuid.New()); !errors.Is(err, domainerror.ErrReportNotFound) {
		t.Errorf("expected ErrReportNotFound for unknown ID, got %v", err)
	}
}
