package report

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rental-ledger/backend/internal/application/adapter"
	"github.com/rental-ledger/backend/internal/domain/finance"
)

// GenerateReportOutput represents a generated report. ID is uuid.Nil when
// the snapshot could not be stored.
type GenerateReportOutput struct {
	ID            uuid.UUID
	Report        finance.FinancialReport
	PropertyLabel string
	DisplayLabel  string
	GeneratedAt   time.Time
	ExpiresAt     time.Time
}

// GenerateReportUseCase handles report generation.
type GenerateReportUseCase struct {
	loader      loader
	reportStore adapter.ReportStore
	snapshotTTL time.Duration
}

// NewGenerateReportUseCase creates a new GenerateReportUseCase instance.
func NewGenerateReportUseCase(
	transactionRepo adapter.TransactionRepository,
	propertyRepo adapter.PropertyRepository,
	reportStore adapter.ReportStore,
	metrics adapter.MetricsRecorder,
	snapshotTTL time.Duration,
) *GenerateReportUseCase {
	return &GenerateReportUseCase{
		loader: loader{
			transactionRepo: transactionRepo,
			propertyRepo:    propertyRepo,
			metrics:         metrics,
		},
		reportStore: reportStore,
		snapshotTTL: snapshotTTL,
	}
}

// Execute validates the filter, generates the report and keeps a snapshot of
// it for later export.
func (uc *GenerateReportUseCase) Execute(ctx context.Context, filter finance.ReportFilter) (*GenerateReportOutput, error) {
	if err := ValidateFilter(filter); err != nil {
		return nil, err
	}

	report, propertyLabel, err := uc.loader.generate(ctx, filter)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	snapshot := &adapter.ReportSnapshot{
		ID:            uuid.New(),
		Filter:        filter,
		Report:        report,
		PropertyLabel: propertyLabel,
		GeneratedAt:   now,
	}

	output := &GenerateReportOutput{
		Report:        report,
		PropertyLabel: propertyLabel,
		DisplayLabel:  filter.DisplayLabel(),
		GeneratedAt:   now,
	}

	if err := uc.reportStore.Save(ctx, snapshot, uc.snapshotTTL); err != nil {
		slog.Warn("Failed to store report snapshot", "period", report.Period, "error", err)
		return output, nil
	}

	output.ID = snapshot.ID
	output.ExpiresAt = now.Add(uc.snapshotTTL)

	slog.Info("Report generated",
		"report_id", snapshot.ID,
		"period", report.Period,
		"transactions", len(report.Transactions),
	)
	return output, nil
}
