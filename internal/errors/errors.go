// Package errors provides custom error types for the MoneyMap API.
// All service-layer errors should use AppError so handlers can translate
// failures into consistent JSON responses without leaking internals.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrValidation     = &AppError{Code: "VALIDATION_ERROR", Message: "Record failed validation", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Identity errors. Only raised when token verification is enabled.
var (
	ErrUnauthorized = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrForbidden    = &AppError{Code: "FORBIDDEN", Message: "You do not own this resource", StatusCode: http.StatusForbidden}
)

// Financial record errors. Messages match the user-visible strings of the
// original HTTP surface.
var (
	ErrRecordNotFound    = &AppError{Code: "RECORD_NOT_FOUND", Message: "Record not found.", StatusCode: http.StatusNotFound}
	ErrNoRecords         = &AppError{Code: "NO_RECORDS", Message: "No records found for the user.", StatusCode: http.StatusNotFound}
	ErrNoRecordsForMonth = &AppError{Code: "NO_RECORDS_FOR_MONTH", Message: "No records found for the specified month.", StatusCode: http.StatusNotFound}
	ErrInvalidRecordID   = &AppError{Code: "INVALID_RECORD_ID", Message: "Invalid record ID.", StatusCode: http.StatusBadRequest}
	ErrMonthYearRequired = &AppError{Code: "MONTH_YEAR_REQUIRED", Message: "Valid month and year are required.", StatusCode: http.StatusBadRequest}
	ErrInvalidMonthYear  = &AppError{Code: "INVALID_MONTH_YEAR", Message: "Month must be between 1 and 12, and year must be realistic.", StatusCode: http.StatusBadRequest}
)

// Investment errors.
var (
	ErrInvestmentNotFound    = &AppError{Code: "INVESTMENT_NOT_FOUND", Message: "Investment not found.", StatusCode: http.StatusNotFound}
	ErrNoInvestments         = &AppError{Code: "NO_INVESTMENTS", Message: "No investments found for the user.", StatusCode: http.StatusNotFound}
	ErrNoInvestmentsInRange  = &AppError{Code: "NO_INVESTMENTS_IN_RANGE", Message: "No investments found for the specified date range.", StatusCode: http.StatusNotFound}
	ErrInvalidInvestmentID   = &AppError{Code: "INVALID_INVESTMENT_ID", Message: "Invalid investment ID.", StatusCode: http.StatusBadRequest}
	ErrDateRangeRequired     = &AppError{Code: "DATE_RANGE_REQUIRED", Message: "Start date and end date are required.", StatusCode: http.StatusBadRequest}
	ErrInvalidDateFormat     = &AppError{Code: "INVALID_DATE_FORMAT", Message: "Invalid date format.", StatusCode: http.StatusBadRequest}
	ErrInvalidInvestmentSpan = &AppError{Code: "INVALID_INVESTMENT_SPAN", Message: "Start date must not be after end date.", StatusCode: http.StatusBadRequest}
)
