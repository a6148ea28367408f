package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rental-ledger/backend/internal/domain/finance"
)

// ReportSnapshot is a generated report kept for later export.
type ReportSnapshot struct {
	ID            uuid.UUID
	Filter        finance.ReportFilter
	Report        finance.FinancialReport
	PropertyLabel string
	GeneratedAt   time.Time
}

// ReportStore keeps report snapshots for a limited time.
type ReportStore interface {
	// Save stores a snapshot; it expires after ttl.
	Save(ctx context.Context, snapshot *ReportSnapshot, ttl time.Duration) error

	// Get returns the snapshot with the given ID, or domainerror.ErrReportNotFound.
	Get(ctx context.Context, id uuid.UUID) (*ReportSnapshot, error)
}
