// Package report contains report generation and export use cases.
package report

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/rental-ledger/backend/internal/application/adapter"
	"github.com/rental-ledger/backend/internal/domain/entity"
	domainerror "github.com/rental-ledger/backend/internal/domain/error"
	"github.com/rental-ledger/backend/internal/domain/finance"
)

// maxYear is the largest year a four-digit period label can hold.
const maxYear = 9999

// ValidateFilter checks that filter describes a period the engine can label.
// A nil or zero month or quarter is accepted and means the whole year.
func ValidateFilter(filter finance.ReportFilter) error {
	if !filter.Period.IsValid() {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidPeriod,
			"invalid period",
			domainerror.ErrInvalidPeriod,
		)
	}
	if filter.Year == 0 {
		return domainerror.NewReportError(
			domainerror.ErrCodeMissingYear,
			"year is required",
			domainerror.ErrMissingYear,
		)
	}
	if filter.Year < 1 || filter.Year > maxYear {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidYear,
			"invalid year",
			domainerror.ErrInvalidYear,
		)
	}
	if filter.Month != nil && *filter.Month != 0 && (*filter.Month < 1 || *filter.Month > 12) {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidMonth,
			"invalid month",
			domainerror.ErrInvalidMonth,
		)
	}
	if filter.Quarter != nil && *filter.Quarter != 0 && (*filter.Quarter < 1 || *filter.Quarter > 4) {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidQuarter,
			"invalid quarter",
			domainerror.ErrInvalidQuarter,
		)
	}
	if filter.PropertyID != nil && *filter.PropertyID <= 0 {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidPropertyID,
			"invalid property_id",
			domainerror.ErrInvalidPropertyID,
		)
	}
	return nil
}

// loader fetches the data a report is generated from.
type loader struct {
	transactionRepo adapter.TransactionRepository
	propertyRepo    adapter.PropertyRepository
	metrics         adapter.MetricsRecorder
}

// generate fetches the transactions inside the filter's date bounds together
// with the property list, and builds the report and its property label.
func (l *loader) generate(ctx context.Context, filter finance.ReportFilter) (finance.FinancialReport, string, error) {
	var (
		transactions []entity.Transaction
		properties   []entity.Property
	)

	start, end := filter.Bounds()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		t, err := l.transactionRepo.FindByPropertyAndDate(gCtx, filter.PropertyID, start, end)
		if err != nil {
			return fmt.Errorf("failed to fetch transactions: %w", err)
		}
		transactions = t
		return nil
	})

	g.Go(func() error {
		p, err := l.propertyRepo.List(gCtx)
		if err != nil {
			return fmt.Errorf("failed to list properties: %w", err)
		}
		properties = p
		return nil
	})

	if err := g.Wait(); err != nil {
		return finance.FinancialReport{}, "", err
	}

	report := finance.Generate(transactions, filter)

	if malformed := finance.CountMalformed(report.Transactions); malformed > 0 {
		slog.Warn("Report contains malformed transactions excluded from totals",
			"count", malformed,
			"period", report.Period,
		)
		l.metrics.RecordMalformedRecords("report", malformed)
	}

	return report, finance.PropertyLabel(filter.PropertyID, properties), nil
}
