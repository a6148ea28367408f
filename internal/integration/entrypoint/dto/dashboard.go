package dto

import (
	"github.com/rental-ledger/backend/internal/application/usecase/dashboard"
)

// DashboardResponse represents the dashboard overview response.
type DashboardResponse struct {
	PropertyID       *int64                `json:"property_id"`
	PropertyLabel    string                `json:"property_label"`
	Granularity      string                `json:"granularity"`
	Summary          SummaryResponse       `json:"summary"`
	Cashflow         []CashflowResponse    `json:"cashflow"`
	Chart            ChartResponse         `json:"chart"`
	Categories       []CategoryAmountEntry `json:"categories"`
	TransactionCount int                   `json:"transaction_count"`
	MalformedCount   int                   `json:"malformed_count"`
}

// SummaryResponse represents income, expense and profit totals.
type SummaryResponse struct {
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	NetProfit    float64 `json:"net_profit"`
}

// CashflowResponse represents one period bucket.
type CashflowResponse struct {
	Period  string  `json:"period"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Profit  float64 `json:"profit"`
}

// ChartResponse represents parallel chart series.
type ChartResponse struct {
	Labels  []string  `json:"labels"`
	Income  []float64 `json:"income"`
	Expense []float64 `json:"expense"`
	Profit  []float64 `json:"profit"`
}

// CategoryAmountEntry represents the expense total of one category.
type CategoryAmountEntry struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// ToDashboardResponse converts a GetOverviewOutput to a DashboardResponse DTO.
func ToDashboardResponse(output *dashboard.GetOverviewOutput) DashboardResponse {
	cashflow := make([]CashflowResponse, len(output.Cashflow))
	for i, bucket := range output.Cashflow {
		cashflow[i] = CashflowResponse{
			Period:  bucket.Period,
			Income:  toFloat(bucket.Income),
			Expense: toFloat(bucket.Expense),
			Profit:  toFloat(bucket.Profit),
		}
	}

	categories := make([]CategoryAmountEntry, len(output.Categories))
	for i, c := range output.Categories {
		categories[i] = CategoryAmountEntry{Category: c.Category, Amount: toFloat(c.Amount)}
	}

	labels := output.Chart.Labels
	if labels == nil {
		labels = []string{}
	}

	return DashboardResponse{
		PropertyID:    output.PropertyID,
		PropertyLabel: output.PropertyLabel,
		Granularity:   string(output.Granularity),
		Summary: SummaryResponse{
			TotalIncome:  toFloat(output.Summary.TotalIncome),
			TotalExpense: toFloat(output.Summary.TotalExpense),
			NetProfit:    toFloat(output.Summary.NetProfit),
		},
		Cashflow: cashflow,
		Chart: ChartResponse{
			Labels:  labels,
			Income:  toFloats(output.Chart.Income),
			Expense: toFloats(output.Chart.Expense),
			Profit:  toFloats(output.Chart.Profit),
		},
		Categories:       categories,
		TransactionCount: output.TransactionCount,
		MalformedCount:   output.MalformedCount,
	}
}
