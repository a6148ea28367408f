// Package finance implements the financial aggregation and reporting engine.
//
// Every function in this package is a pure computation over an in-memory
// transaction list: no I/O, no logging, no retained state between calls.
// Callers may invoke any of them concurrently without coordination.
package finance

import (
	"fmt"
	"time"
)

// DateLayout is the ISO 8601 calendar date layout used for transaction dates.
const DateLayout = "2006-01-02"

// Granularity selects the bucket size used when grouping transactions by time.
type Granularity string

const (
	GranularityMonth   Granularity = "month"
	GranularityQuarter Granularity = "quarter"
	GranularityYear    Granularity = "year"
)

// IsValid reports whether g is a supported granularity.
func (g Granularity) IsValid() bool {
	switch g {
	case GranularityMonth, GranularityQuarter, GranularityYear:
		return true
	}
	return false
}

// CalendarDate is a date without time-of-day or timezone semantics.
type CalendarDate struct {
	Year  int
	Month int // 1-12
	Day   int
}

// Quarter returns the 1-based quarter the date falls in.
func (d CalendarDate) Quarter() int {
	return Quarter(d.Month)
}

// String formats the date as YYYY-MM-DD.
func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// ParseDate parses a transaction date. It accepts YYYY-MM-DD and, for data
// written by older clients, a full RFC 3339 timestamp whose calendar date is
// taken as written. Anything else is reported as unparseable.
func ParseDate(s string) (CalendarDate, bool) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return CalendarDate{}, false
		}
	}
	return CalendarDate{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}, true
}

// Quarter maps a 1-based month to its 1-based quarter.
func Quarter(month int) int {
	return (month-1)/3 + 1
}

// BucketKey returns the key of the bucket containing d.
// Formats: month "2024-01", quarter "2024-Q1", year "2024".
// Unknown granularities bucket by month.
func BucketKey(d CalendarDate, granularity Granularity) string {
	switch granularity {
	case GranularityQuarter:
		return fmt.Sprintf("%04d-Q%d", d.Year, d.Quarter())
	case GranularityYear:
		return fmt.Sprintf("%04d", d.Year)
	default:
		return fmt.Sprintf("%04d-%02d", d.Year, d.Month)
	}
}

// monthNames holds full English month names, indexed by month number.
var monthNames = map[int]string{
	1:  "January",
	2:  "February",
	3:  "March",
	4:  "April",
	5:  "May",
	6:  "June",
	7:  "July",
	8:  "August",
	9:  "September",
	10: "October",
	11: "November",
	12: "December",
}

// quarterNames holds the quarter labels shown next to a year.
var quarterNames = map[int]string{
	1: "Q1 (Jan-Mar)",
	2: "Q2 (Apr-Jun)",
	3: "Q3 (Jul-Sep)",
	4: "Q4 (Oct-Dec)",
}

// lastDayOfMonth returns the number of days in the given month.
func lastDayOfMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
