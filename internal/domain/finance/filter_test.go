package finance

import (
	"testing"

	"github.com/rental-ledger/backend/internal/domain/entity"
)

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

func TestParseDate(t *testing.T) {
	tests := []struct {
		input    string
		ok       bool
		expected CalendarDate
	}{
		{input: "2024-05-10", ok: true, expected: CalendarDate{Year: 2024, Month: 5, Day: 10}},
		{input: "2024-12-31T23:30:00-05:00", ok: true, expected: CalendarDate{Year: 2024, Month: 12, Day: 31}},
		{input: "2024-13-01", ok: false},
		{input: "2024-02-30", ok: false},
		{input: "", ok: false},
		{input: "10/05/2024", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseDate(tt.input)
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, ok)
			}
			if ok && got != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, got)
			}
		})
	}
}

func TestBucketKey(t *testing.T) {
	date := CalendarDate{Year: 2024, Month: 8, Day: 3}

	tests := map[Granularity]string{
		GranularityMonth:   "2024-08",
		GranularityQuarter: "2024-Q3",
		GranularityYear:    "2024",
		Granularity("day"): "2024-08",
	}

	for granularity, expected := range tests {
		if got := BucketKey(date, granularity); got != expected {
			t.Errorf("granularity %s: expected %s, got %s", granularity, expected, got)
		}
	}
}

func TestQuarter(t *testing.T) {
	expected := []int{1, 1, 1, 2, 2, 2, 3, 3, 3, 4, 4, 4}
	for month := 1; month <= 12; month++ {
		if got := Quarter(month); got != expected[month-1] {
			t.Errorf("month %d: expected Q%d, got Q%d", month, expected[month-1], got)
		}
	}
}

func TestReportFilter_Matches(t *testing.T) {
	may := tx(1, 5, entity.TransactionTypeIncome, "Rent", "100", "2024-05-10")
	otherProperty := tx(2, 7, entity.TransactionTypeIncome, "Rent", "100", "2024-05-10")

	tests := []struct {
		name        string
		filter      ReportFilter
		transaction entity.Transaction
		expected    bool
	}{
		{
			name:        "quarter filter includes month inside the quarter",
			filter:      ReportFilter{PropertyID: int64Ptr(5), Period: PeriodQuarter, Year: 2024, Quarter: intPtr(2)},
			transaction: may,
			expected:    true,
		},
		{
			name:        "quarter filter excludes another property",
			filter:      ReportFilter{PropertyID: int64Ptr(5), Period: PeriodQuarter, Year: 2024, Quarter: intPtr(2)},
			transaction: otherProperty,
			expected:    false,
		},
		{
			name:        "quarter filter excludes other quarters",
			filter:      ReportFilter{Period: PeriodQuarter, Year: 2024, Quarter: intPtr(3)},
			transaction: may,
			expected:    false,
		},
		{
			name:        "month filter matches the same month",
			filter:      ReportFilter{Period: PeriodMonth, Year: 2024, Month: intPtr(5)},
			transaction: may,
			expected:    true,
		},
		{
			name:        "month filter rejects other months",
			filter:      ReportFilter{Period: PeriodMonth, Year: 2024, Month: intPtr(4)},
			transaction: may,
			expected:    false,
		},
		{
			name:        "year mismatch is rejected",
			filter:      ReportFilter{Period: PeriodYear, Year: 2023},
			transaction: may,
			expected:    false,
		},
		{
			name:        "month period without month falls back to the whole year",
			filter:      ReportFilter{Period: PeriodMonth, Year: 2024},
			transaction: may,
			expected:    true,
		},
		{
			name:        "quarter period with zero quarter falls back to the whole year",
			filter:      ReportFilter{Period: PeriodQuarter, Year: 2024, Quarter: intPtr(0)},
			transaction: may,
			expected:    true,
		},
		{
			name:        "stale month is ignored for a quarter period",
			filter:      ReportFilter{Period: PeriodQuarter, Year: 2024, Month: intPtr(1), Quarter: intPtr(2)},
			transaction: may,
			expected:    true,
		},
		{
			name:        "stale quarter is ignored for a year period",
			filter:      ReportFilter{Period: PeriodYear, Year: 2024, Quarter: intPtr(4)},
			transaction: may,
			expected:    true,
		},
		{
			name:        "unparseable date never matches",
			filter:      ReportFilter{Period: PeriodYear, Year: 2024},
			transaction: tx(3, 5, entity.TransactionTypeIncome, "Rent", "100", "2024/05/10"),
			expected:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Matches(tt.transaction); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestFilterByPeriod_YearAcrossProperties(t *testing.T) {
	transactions := []entity.Transaction{
		tx(1, 1, entity.TransactionTypeIncome, "Rent", "1", "2024-01-01"),
		tx(2, 2, entity.TransactionTypeExpense, "Tax", "1", "2023-12-31"),
		tx(3, 3, entity.TransactionTypeIncome, "Rent", "1", "2024-12-31"),
		tx(4, 4, entity.TransactionTypeExpense, "Tax", "1", "2025-01-01"),
	}

	result := FilterByPeriod(transactions, ReportFilter{Period: PeriodYear, Year: 2024})

	if len(result) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(result))
	}
	if result[0].ID != 1 || result[1].ID != 3 {
		t.Errorf("expected IDs [1 3] in input order, got [%d %d]", result[0].ID, result[1].ID)
	}
}

func TestReportFilter_Labels(t *testing.T) {
	tests := []struct {
		name            string
		filter          ReportFilter
		expectedLabel   string
		expectedDisplay string
		expectedStart   string
		expectedEnd     string
	}{
		{
			name:            "month",
			filter:          ReportFilter{Period: PeriodMonth, Year: 2024, Month: intPtr(2)},
			expectedLabel:   "2024-02",
			expectedDisplay: "February 2024",
			expectedStart:   "2024-02-01",
			expectedEnd:     "2024-02-29",
		},
		{
			name:            "quarter",
			filter:          ReportFilter{Period: PeriodQuarter, Year: 2023, Quarter: intPtr(4)},
			expectedLabel:   "2023-Q4",
			expectedDisplay: "Q4 (Oct-Dec) 2023",
			expectedStart:   "2023-10-01",
			expectedEnd:     "2023-12-31",
		},
		{
			name:            "year",
			filter:          ReportFilter{Period: PeriodYear, Year: 2024},
			expectedLabel:   "2024",
			expectedDisplay: "Year 2024",
			expectedStart:   "2024-01-01",
			expectedEnd:     "2024-12-31",
		},
		{
			name:            "month period without month",
			filter:          ReportFilter{Period: PeriodMonth, Year: 2024},
			expectedLabel:   "2024",
			expectedDisplay: "Year 2024",
			expectedStart:   "2024-01-01",
			expectedEnd:     "2024-12-31",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Label(); got != tt.expectedLabel {
				t.Errorf("expected label %s, got %s", tt.expectedLabel, got)
			}
			if got := tt.filter.DisplayLabel(); got != tt.expectedDisplay {
				t.Errorf("expected display label %s, got %s", tt.expectedDisplay, got)
			}
			start, end := tt.filter.Bounds()
			if start != tt.expectedStart || end != tt.expectedEnd {
				t.Errorf("expected bounds %s..%s, got %s..%s", tt.expectedStart, tt.expectedEnd, start, end)
			}
		})
	}
}
