package finance

import (
	"fmt"

	"github.com/rental-ledger/backend/internal/domain/entity"
)

// PeriodType is the kind of period a report covers.
type PeriodType string

const (
	PeriodMonth   PeriodType = "month"
	PeriodQuarter PeriodType = "quarter"
	PeriodYear    PeriodType = "year"
)

// IsValid reports whether p is a supported period type.
func (p PeriodType) IsValid() bool {
	switch p {
	case PeriodMonth, PeriodQuarter, PeriodYear:
		return true
	}
	return false
}

// ReportFilter selects the transactions of one period, optionally scoped to a
// single property. A nil PropertyID means all properties.
//
// Month and Quarter only matter when Period matches. When the matching field
// is nil or zero the filter falls back to the whole year.
type ReportFilter struct {
	PropertyID *int64
	Period     PeriodType
	Year       int
	Month      *int // 1-12
	Quarter    *int // 1-4
}

// monthSet returns the selected month when the filter is month-scoped.
func (f ReportFilter) monthSet() (int, bool) {
	if f.Period != PeriodMonth || f.Month == nil || *f.Month == 0 {
		return 0, false
	}
	return *f.Month, true
}

// quarterSet returns the selected quarter when the filter is quarter-scoped.
func (f ReportFilter) quarterSet() (int, bool) {
	if f.Period != PeriodQuarter || f.Quarter == nil || *f.Quarter == 0 {
		return 0, false
	}
	return *f.Quarter, true
}

// Matches reports whether t falls inside the filter. Transactions whose date
// cannot be parsed never match.
func (f ReportFilter) Matches(t entity.Transaction) bool {
	if f.PropertyID != nil && t.PropertyID != *f.PropertyID {
		return false
	}

	date, ok := ParseDate(t.Date)
	if !ok || date.Year != f.Year {
		return false
	}

	if month, ok := f.monthSet(); ok {
		return date.Month == month
	}
	if quarter, ok := f.quarterSet(); ok {
		return date.Quarter() == quarter
	}
	return true
}

// Label returns the machine-readable period label: "2024-03", "2024-Q2" or "2024".
func (f ReportFilter) Label() string {
	if month, ok := f.monthSet(); ok {
		return fmt.Sprintf("%04d-%02d", f.Year, month)
	}
	if quarter, ok := f.quarterSet(); ok {
		return fmt.Sprintf("%04d-Q%d", f.Year, quarter)
	}
	return fmt.Sprintf("%04d", f.Year)
}

// DisplayLabel returns a human-readable period label such as "March 2024",
// "Q2 (Apr-Jun) 2024" or "Year 2024".
func (f ReportFilter) DisplayLabel() string {
	if month, ok := f.monthSet(); ok {
		if name, known := monthNames[month]; known {
			return fmt.Sprintf("%s %d", name, f.Year)
		}
	}
	if quarter, ok := f.quarterSet(); ok {
		if name, known := quarterNames[quarter]; known {
			return fmt.Sprintf("%s %d", name, f.Year)
		}
	}
	return fmt.Sprintf("Year %d", f.Year)
}

// Bounds returns the inclusive first and last ISO dates the filter can match.
// Month and quarter values outside their ranges widen to the whole year.
func (f ReportFilter) Bounds() (start, end string) {
	firstMonth, lastMonth := 1, 12

	if month, ok := f.monthSet(); ok && month >= 1 && month <= 12 {
		firstMonth, lastMonth = month, month
	} else if quarter, ok := f.quarterSet(); ok && quarter >= 1 && quarter <= 4 {
		firstMonth = (quarter-1)*3 + 1
		lastMonth = firstMonth + 2
	}

	start = CalendarDate{Year: f.Year, Month: firstMonth, Day: 1}.String()
	end = CalendarDate{Year: f.Year, Month: lastMonth, Day: lastDayOfMonth(f.Year, lastMonth)}.String()
	return start, end
}

// FilterByPeriod returns the transactions matching filter, in input order.
// The result shares no backing array with the input.
func FilterByPeriod(transactions []entity.Transaction, filter ReportFilter) []entity.Transaction {
	result := make([]entity.Transaction, 0)
	for _, t := range transactions {
		if filter.Matches(t) {
			result = append(result, t)
		}
	}
	return result
}
