package finance

import (
	"fmt"
	"strings"
)

// csvColumns is the header row of the transaction table.
const csvColumns = "Date,Type,Category,Amount,Notes"

// SerializeCSV renders report as a plain-text table: a header block with the
// title, period and totals, then one row per transaction in report order.
// Lines are separated by "\n" with no trailing newline.
func SerializeCSV(report FinancialReport, propertyLabel string) string {
	lines := make([]string, 0, 8+len(report.Transactions))

	lines = append(lines,
		"Financial Report - "+propertyLabel,
		"Period: "+report.Period,
		"",
		"Total Income,"+report.TotalIncome.String(),
		"Total Expense,"+report.TotalExpense.String(),
		"Net Profit,"+report.NetProfit.String(),
		"",
		csvColumns,
	)

	for _, t := range report.Transactions {
		lines = append(lines, strings.Join([]string{
			t.Date,
			string(t.Type),
			csvField(t.Category),
			t.Amount.String(),
			quote(t.Notes),
		}, ","))
	}

	return strings.Join(lines, "\n")
}

// ExportFileName returns the suggested download name for report.
func ExportFileName(report FinancialReport) string {
	return fmt.Sprintf("financial-report-%s.csv", report.Period)
}

// csvField quotes s only when it would otherwise break the row.
func csvField(s string) string {
	if strings.ContainsAny(s, ",\"\r\n") {
		return quote(s)
	}
	return s
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
