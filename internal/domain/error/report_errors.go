// Package error defines domain-specific errors for the Rental Ledger application.
package error

import "errors"

// Report and dashboard domain errors.
var (
	// ErrInvalidPeriod is returned when the report period is not month, quarter or year.
	ErrInvalidPeriod = errors.New("period must be: month, quarter, or year")

	// ErrMissingYear is returned when the report year is not provided.
	ErrMissingYear = errors.New("year is required")

	// ErrInvalidYear is returned when the report year is out of range.
	ErrInvalidYear = errors.New("year must be between 1 and 9999")

	// ErrInvalidMonth is returned when the report month is out of range.
	ErrInvalidMonth = errors.New("month must be between 1 and 12")

	// ErrInvalidQuarter is returned when the report quarter is out of range.
	ErrInvalidQuarter = errors.New("quarter must be between 1 and 4")

	// ErrInvalidGranularity is returned when the cashflow granularity is not valid.
	ErrInvalidGranularity = errors.New("granularity must be: month, quarter, or year")

	// ErrInvalidPropertyID is returned when a property_id parameter is not a positive integer.
	ErrInvalidPropertyID = errors.New("property_id must be a positive integer")

	// ErrReportNotFound is returned when a report snapshot does not exist or has expired.
	ErrReportNotFound = errors.New("report not found")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidPeriod      ReportErrorCode = "RPT-010001"
	ErrCodeMissingYear        ReportErrorCode = "RPT-010002"
	ErrCodeInvalidYear        ReportErrorCode = "RPT-010003"
	ErrCodeInvalidMonth       ReportErrorCode = "RPT-010004"
	ErrCodeInvalidQuarter     ReportErrorCode = "RPT-010005"
	ErrCodeInvalidGranularity ReportErrorCode = "RPT-010006"
	ErrCodeInvalidPropertyID  ReportErrorCode = "RPT-010007"

	// Lookup errors (02XXXX)
	ErrCodeReportNotFound ReportErrorCode = "RPT-020001"

	// Internal errors (99XXXX)
	ErrCodeReportInternalError ReportErrorCode = "RPT-990001"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
