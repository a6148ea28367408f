package finance

import (
	"github.com/shopspring/decimal"

	"github.com/rental-ledger/backend/internal/domain/entity"
)

const (
	// AllPropertiesLabel names a report that is not scoped to a property.
	AllPropertiesLabel = "All Properties"
	// UnknownPropertyLabel names a report scoped to a property that no longer exists.
	UnknownPropertyLabel = "Unknown Property"
)

// FinancialReport is a snapshot of one filtered period.
type FinancialReport struct {
	Period       string
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	NetProfit    decimal.Decimal
	Transactions []entity.Transaction
}

// Generate filters transactions by filter and totals the result.
func Generate(transactions []entity.Transaction, filter ReportFilter) FinancialReport {
	filtered := FilterByPeriod(transactions, filter)
	summary := Summarize(filtered)

	return FinancialReport{
		Period:       filter.Label(),
		TotalIncome:  summary.TotalIncome,
		TotalExpense: summary.TotalExpense,
		NetProfit:    summary.NetProfit,
		Transactions: filtered,
	}
}

// PropertyLabel returns the name used for propertyID in report headers.
func PropertyLabel(propertyID *int64, properties []entity.Property) string {
	if propertyID == nil {
		return AllPropertiesLabel
	}
	for _, p := range properties {
		if p.ID == *propertyID {
			return p.Name
		}
	}
	return UnknownPropertyLabel
}
