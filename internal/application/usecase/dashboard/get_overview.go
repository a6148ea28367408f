// Package dashboard contains dashboard-related use cases.
package dashboard

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

// GetOverviewInput represents the input for the dashboard overview.
type GetOverviewInput struct {
	PropertyID  *int64
	Granularity finance.Granularity
}

// GetOverviewOutput represents the dashboard overview of one property or of
// all properties.
type GetOverviewOutput struct {
	PropertyID       *int64
	PropertyLabel    string
	Granularity      finance.Granularity
	Summary          finance.TransactionSummary
	Cashflow         []finance.MonthlyData
	Chart            finance.ChartData
	Categories       []finance.CategoryExpense
	TransactionCount int
	MalformedCount   int
}

// GetOverviewUseCase builds the dashboard overview.
type GetOverviewUseCase struct {
	transactionRepo adapter.TransactionRepository
	propertyRepo    adapter.PropertyRepository
	metrics         adapter.MetricsRecorder
}

// NewGetOverviewUseCase creates a new GetOverviewUseCase instance.
func NewGetOverviewUseCase(
	transactionRepo adapter.TransactionRepository,
	propertyRepo adapter.PropertyRepository,
	metrics adapter.MetricsRecorder,
) *GetOverviewUseCase {
	return &GetOverviewUseCase{
		transactionRepo: transactionRepo,
		propertyRepo:    propertyRepo,
		metrics:         metrics,
	}
}

// Execute loads the transactions in scope and runs every dashboard aggregation over them.
func (uc *GetOverviewUseCase) Execute(ctx context.Context, input GetOverviewInput) (*GetOverviewOutput, error) {
	granularity := input.Granularity
	if granularity == "" {
		granularity = finance.GranularityMonth
	}
	if !granularity.IsValid() {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidGranularity,
			"invalid granularity",
			domainerror.ErrInvalidGranularity,
		)
	}
	if input.PropertyID != nil && *input.PropertyID <= 0 {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidPropertyID,
			"invalid property_id",
			domainerror.ErrInvalidPropertyID,
		)
	}

	var (
		transactions []entity.Transaction
		properties   []entity.Property
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		t, err := uc.transactionRepo.FindByPropertyAndDate(gCtx, input.PropertyID, "", "")
		if err != nil {
			return fmt.Errorf("failed to fetch transactions: %w", err)
		}
		transactions = t
		return nil
	})

	g.Go(func() error {
		p, err := uc.propertyRepo.List(gCtx)
		if err != nil {
			return fmt.Errorf("failed to list properties: %w", err)
		}
		properties = p
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	malformed := finance.CountMalformed(transactions)
	if malformed > 0 {
		slog.Warn("Skipping malformed transactions in dashboard overview",
			"count", malformed,
			"property_id", input.PropertyID,
		)
		uc.metrics.RecordMalformedRecords("dashboard", malformed)
	}

	cashflow := finance.ByPeriod(transactions, granularity)

	return &GetOverviewOutput{
		PropertyID:       input.PropertyID,
		PropertyLabel:    finance.PropertyLabel(input.PropertyID, properties),
		Granularity:      granularity,
		Summary:          finance.Summarize(transactions),
		Cashflow:         cashflow,
		Chart:            finance.ChartSeries(cashflow),
		Categories:       finance.ByCategory(transactions),
		TransactionCount: len(transactions) - malformed,
		MalformedCount:   malformed,
	}, nil
}
