// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/shopspring/decimal"

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// toFloat converts an amount for chart-oriented responses.
func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

func toFloats(ds []decimal.Decimal) []float64 {
	result := make([]float64, len(ds))
	for i, d := range ds {
		result[i] = toFloat(d)
	}
	return result
}
