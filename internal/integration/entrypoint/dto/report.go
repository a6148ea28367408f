package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/rental-ledger/backend/internal/application/usecase/report"
	"github.com/rental-ledger/backend/internal/domain/finance"
)

// GenerateReportRequest represents the request body for report generation.
type GenerateReportRequest struct {
	PropertyID *int64 `json:"property_id"`
	Period     string `json:"period" binding:"required"`
	Year       int    `json:"year"`
	Month      *int   `json:"month"`
	Quarter    *int   `json:"quarter"`
}

// ToFilter converts the request to an engine filter.
func (r GenerateReportRequest) ToFilter() finance.ReportFilter {
	return finance.ReportFilter{
		PropertyID: r.PropertyID,
		Period:     finance.PeriodType(r.Period),
		Year:       r.Year,
		Month:      r.Month,
		Quarter:    r.Quarter,
	}
}

// ReportResponse represents a generated report.
type ReportResponse struct {
	ID            *string               `json:"id"`
	Period        string                `json:"period"`
	DisplayLabel  string                `json:"display_label"`
	PropertyLabel string                `json:"property_label"`
	TotalIncome   float64               `json:"total_income"`
	TotalExpense  float64               `json:"total_expense"`
	NetProfit     float64               `json:"net_profit"`
	Transactions  []TransactionResponse `json:"transactions"`
	GeneratedAt   string                `json:"generated_at"`
	ExpiresAt     *string               `json:"expires_at"`
}

// ToReportResponse converts a GenerateReportOutput to a ReportResponse DTO.
// ID and ExpiresAt are null when the snapshot could not be stored.
func ToReportResponse(output *report.GenerateReportOutput) ReportResponse {
	response := ReportResponse{
		Period:        output.Report.Period,
		DisplayLabel:  output.DisplayLabel,
		PropertyLabel: output.PropertyLabel,
		TotalIncome:   toFloat(output.Report.TotalIncome),
		TotalExpense:  toFloat(output.Report.TotalExpense),
		NetProfit:     toFloat(output.Report.NetProfit),
		Transactions:  ToTransactionListResponse(output.Report.Transactions).Transactions,
		GeneratedAt:   output.GeneratedAt.Format(time.RFC3339),
	}

	if output.ID != uuid.Nil {
		id := output.ID.String()
		expiresAt := output.ExpiresAt.Format(time.RFC3339)
		response.ID = &id
		response.ExpiresAt = &expiresAt
	}
	return response
}
