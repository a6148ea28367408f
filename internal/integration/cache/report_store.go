// Package cache implements short-lived storage of generated reports.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/rental-ledger/backend/internal/application/adapter"
	"github.com/rental-ledger/backend/internal/domain/entity"
	domainerror "github.com/rental-ledger/backend/internal/domain/error"
	"github.com/rental-ledger/backend/internal/domain/finance"
)

const reportKeyPrefix = "report:"

// redisReportStore implements adapter.ReportStore on top of Redis.
type redisReportStore struct {
	client redis.Cmdable
}

// NewRedisReportStore creates a report store backed by client.
func NewRedisReportStore(client redis.Cmdable) adapter.ReportStore {
	return &redisReportStore{client: client}
}

// Save stores snapshot as JSON under its ID with the given expiry.
func (s *redisReportStore) Save(ctx context.Context, snapshot *adapter.ReportSnapshot, ttl time.Duration) error {
	payload, err := json.Marshal(snapshotRecordFrom(snapshot))
	if err != nil {
		return fmt.Errorf("failed to encode report snapshot: %w", err)
	}
	return s.client.Set(ctx, reportKey(snapshot.ID), payload, ttl).Err()
}

// Get loads the snapshot with the given ID.
func (s *redisReportStore) Get(ctx context.Context, id uuid.UUID) (*adapter.ReportSnapshot, error) {
	payload, err := s.client.Get(ctx, reportKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domainerror.ErrReportNotFound
		}
		return nil, err
	}

	var record snapshotRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, fmt.Errorf("failed to decode report snapshot: %w", err)
	}
	return record.toSnapshot(), nil
}

func reportKey(id uuid.UUID) string {
	return reportKeyPrefix + id.String()
}

// snapshotRecord is the JSON form of a report snapshot.
type snapshotRecord struct {
	ID            uuid.UUID           `json:"id"`
	PropertyID    *int64              `json:"property_id,omitempty"`
	Period        string              `json:"period"`
	Year          int                 `json:"year"`
	Month         *int                `json:"month,omitempty"`
	Quarter       *int                `json:"quarter,omitempty"`
	Label         string              `json:"label"`
	TotalIncome   decimal.Decimal     `json:"total_income"`
	TotalExpense  decimal.Decimal     `json:"total_expense"`
	NetProfit     decimal.Decimal     `json:"net_profit"`
	Transactions  []transactionRecord `json:"transactions"`
	PropertyLabel string              `json:"property_label"`
	GeneratedAt   time.Time           `json:"generated_at"`
}

type transactionRecord struct {
	ID         int64           `json:"id"`
	PropertyID int64           `json:"property_id"`
	Type       string          `json:"type"`
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Date       string          `json:"date"`
	Notes      string          `json:"notes,omitempty"`
}

func snapshotRecordFrom(s *adapter.ReportSnapshot) snapshotRecord {
	transactions := make([]transactionRecord, len(s.Report.Transactions))
	for i, t := range s.Report.Transactions {
		transactions[i] = transactionRecord{
			ID:         t.ID,
			PropertyID: t.PropertyID,
			Type:       string(t.Type),
			Category:   t.Category,
			Amount:     t.Amount,
			Date:       t.Date,
			Notes:      t.Notes,
		}
	}

	return snapshotRecord{
		ID:            s.ID,
		PropertyID:    s.Filter.PropertyID,
		Period:        string(s.Filter.Period),
		Year:          s.Filter.Year,
		Month:         s.Filter.Month,
		Quarter:       s.Filter.Quarter,
		Label:         s.Report.Period,
		TotalIncome:   s.Report.TotalIncome,
		TotalExpense:  s.Report.TotalExpense,
		NetProfit:     s.Report.NetProfit,
		Transactions:  transactions,
		PropertyLabel: s.PropertyLabel,
		GeneratedAt:   s.GeneratedAt,
	}
}

func (r snapshotRecord) toSnapshot() *adapter.ReportSnapshot {
	transactions := make([]entity.Transaction, len(r.Transactions))
	for i, t := range r.Transactions {
		transactions[i] = entity.Transaction{
			ID:         t.ID,
			PropertyID: t.PropertyID,
			Type:       entity.TransactionType(t.Type),
			Category:   t.Category,
			Amount:     t.Amount,
			Date:       t.Date,
			Notes:      t.Notes,
		}
	}

	return &adapter.ReportSnapshot{
		ID: r.ID,
		Filter: finance.ReportFilter{
			PropertyID: r.PropertyID,
			Period:     finance.PeriodType(r.Period),
			Year:       r.Year,
			Month:      r.Month,
			Quarter:    r.Quarter,
		},
		Report: finance.FinancialReport{
			Period:       r.Label,
			TotalIncome:  r.TotalIncome,
			TotalExpense: r.TotalExpense,
			NetProfit:    r.NetProfit,
			Transactions: transactions,
		},
		PropertyLabel: r.PropertyLabel,
		GeneratedAt:   r.GeneratedAt,
	}
}
