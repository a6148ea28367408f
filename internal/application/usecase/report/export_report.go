package report

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/rental-ledger/backend/internal/application/adapter"
	domainerror "github.com/rental-ledger/backend/internal/domain/error"
	"github.com/rental-ledger/backend/internal/domain/finance"
)

// ExportReportInput selects the report to export: a stored snapshot when
// ReportID is set, otherwise a report generated on the fly from Filter.
type ExportReportInput struct {
	ReportID *uuid.UUID
	Filter   finance.ReportFilter
}

// ExportReportOutput holds the CSV document and its suggested file name.
type ExportReportOutput struct {
	FileName string
	Content  string
}

// ExportReportUseCase handles CSV report export.
type ExportReportUseCase struct {
	loader      loader
	reportStore adapter.ReportStore
	metrics     adapter.MetricsRecorder
}

// NewExportReportUseCase creates a new ExportReportUseCase instance.
func NewExportReportUseCase(
	transactionRepo adapter.TransactionRepository,
	propertyRepo adapter.PropertyRepository,
	reportStore adapter.ReportStore,
	metrics adapter.MetricsRecorder,
) *ExportReportUseCase {
	return &ExportReportUseCase{
		loader: loader{
			transactionRepo: transactionRepo,
			propertyRepo:    propertyRepo,
			metrics:         metrics,
		},
		reportStore: reportStore,
		metrics:     metrics,
	}
}

// Execute renders the selected report as CSV.
func (uc *ExportReportUseCase) Execute(ctx context.Context, input ExportReportInput) (*ExportReportOutput, error) {
	if input.ReportID != nil {
		return uc.exportSnapshot(ctx, *input.ReportID)
	}

	if err := ValidateFilter(input.Filter); err != nil {
		return nil, err
	}

	report, propertyLabel, err := uc.loader.generate(ctx, input.Filter)
	if err != nil {
		return nil, err
	}
	return render(report, propertyLabel), nil
}

func (uc *ExportReportUseCase) exportSnapshot(ctx context.Context, id uuid.UUID) (*ExportReportOutput, error) {
	snapshot, err := uc.reportStore.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrReportNotFound) {
			uc.metrics.RecordReportCache(false)
			return nil, domainerror.NewReportError(
				domainerror.ErrCodeReportNotFound,
				"report not found or expired",
				domainerror.ErrReportNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load report snapshot: %w", err)
	}

	uc.metrics.RecordReportCache(true)
	return render(snapshot.Report, snapshot.PropertyLabel), nil
}

func render(report finance.FinancialReport, propertyLabel string) *ExportReportOutput {
	return &ExportReportOutput{
		FileName: finance.ExportFileName(report),
		Content:  finance.SerializeCSV(report, propertyLabel),
	}
}
