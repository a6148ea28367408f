package finance

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/rental-ledger/backend/internal/domain/entity"
)

// MonthlyData is the income/expense aggregate of one bucket. Despite the name
// it is used for every granularity; Period holds the bucket key.
type MonthlyData struct {
	Period  string
	Income  decimal.Decimal
	Expense decimal.Decimal
	Profit  decimal.Decimal
}

// CategoryExpense is the total expense booked under one category.
type CategoryExpense struct {
	Category string
	Amount   decimal.Decimal
}

// ChartData holds parallel series ready for a bar or line chart.
type ChartData struct {
	Labels  []string
	Income  []decimal.Decimal
	Expense []decimal.Decimal
	Profit  []decimal.Decimal
}

type bucketTotals struct {
	income  decimal.Decimal
	expense decimal.Decimal
}

// ByPeriod groups well-formed transactions into buckets of the given
// granularity. Only buckets holding at least one transaction are returned,
// sorted ascending by bucket key.
func ByPeriod(transactions []entity.Transaction, granularity Granularity) []MonthlyData {
	buckets := NewOrderedMap[string, bucketTotals]()

	for _, t := range transactions {
		if !IsWellFormed(t) {
			continue
		}
		date, _ := ParseDate(t.Date)
		key := BucketKey(date, granularity)

		totals, ok := buckets.Get(key)
		if !ok {
			totals = bucketTotals{income: decimal.Zero, expense: decimal.Zero}
		}
		if t.Type == entity.TransactionTypeIncome {
			totals.income = totals.income.Add(t.Amount)
		} else {
			totals.expense = totals.expense.Add(t.Amount)
		}
		buckets.Set(key, totals)
	}

	result := make([]MonthlyData, 0, buckets.Len())
	buckets.Each(func(key string, totals bucketTotals) {
		result = append(result, MonthlyData{
			Period:  key,
			Income:  totals.income,
			Expense: totals.expense,
			Profit:  totals.income.Sub(totals.expense),
		})
	})

	// Keys are zero-padded with the year first, so string order is chronological.
	sort.Slice(result, func(i, j int) bool {
		return result[i].Period < result[j].Period
	})

	return result
}

// ByCategory totals well-formed expense transactions per category, in the
// order each category is first encountered.
func ByCategory(transactions []entity.Transaction) []CategoryExpense {
	categories := NewOrderedMap[string, decimal.Decimal]()

	for _, t := range transactions {
		if t.Type != entity.TransactionTypeExpense || !IsWellFormed(t) {
			continue
		}
		current, ok := categories.Get(t.Category)
		if !ok {
			current = decimal.Zero
		}
		categories.Set(t.Category, current.Add(t.Amount))
	}

	result := make([]CategoryExpense, 0, categories.Len())
	categories.Each(func(category string, amount decimal.Decimal) {
		result = append(result, CategoryExpense{Category: category, Amount: amount})
	})
	return result
}

// ChartSeries splits bucket aggregates into parallel label/value series.
func ChartSeries(data []MonthlyData) ChartData {
	chart := ChartData{
		Labels:  make([]string, len(data)),
		Income:  make([]decimal.Decimal, len(data)),
		Expense: make([]decimal.Decimal, len(data)),
		Profit:  make([]decimal.Decimal, len(data)),
	}
	for i, d := range data {
		chart.Labels[i] = d.Period
		chart.Income[i] = d.Income
		chart.Expense[i] = d.Expense
		chart.Profit[i] = d.Profit
	}
	return chart
}
