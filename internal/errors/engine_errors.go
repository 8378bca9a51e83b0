package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// ErrorCategory represents different types of errors that can occur
type ErrorCategory string

const (
	// Fatal to the call: the caller gets an error instead of a decision
	ErrorCategoryConfiguration ErrorCategory = "CONFIG"
	ErrorCategoryMissingData   ErrorCategory = "MISSING_DATA"

	// Absorbed locally: a faulting evaluator degrades to a NONE verdict
	ErrorCategoryEvaluator ErrorCategory = "EVALUATOR"

	// Collaborator errors (market info, snapshot loading)
	ErrorCategoryExchange ErrorCategory = "EXCHANGE"
	ErrorCategoryData     ErrorCategory = "DATA"
	ErrorCategoryNetwork  ErrorCategory = "NETWORK"
	ErrorCategoryTimeout  ErrorCategory = "TIMEOUT"

	// Temporary errors
	ErrorCategoryTemporary ErrorCategory = "TEMPORARY"
	ErrorCategoryRateLimit ErrorCategory = "RATE_LIMIT"
)

// EngineError represents a categorized error with context
type EngineError struct {
	Category   ErrorCategory
	Component  string
	Operation  string
	Message    string
	Underlying error
	Context    map[string]interface{}
	Retryable  bool
}

// Error implements the error interface
func (e *EngineError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("[%s:%s] %s in %s: %v", e.Category, e.Component, e.Operation, e.Message, e.Underlying)
	}
	return fmt.Sprintf("[%s:%s] %s in %s", e.Category, e.Component, e.Operation, e.Message)
}

// Unwrap returns the underlying error for error unwrapping
func (e *EngineError) Unwrap() error {
	return e.Underlying
}

// IsRetryable returns whether this error can be retried
func (e *EngineError) IsRetryable() bool {
	return e.Retryable
}

// IsFatal returns whether this error aborts the decision call
func (e *EngineError) IsFatal() bool {
	return e.Category == ErrorCategoryConfiguration ||
		e.Category == ErrorCategoryMissingData
}

// NewEngineError creates a new categorized engine error
func NewEngineError(category ErrorCategory, component, operation, message string) *EngineError {
	return &EngineError{
		Category:  category,
		Component: component,
		Operation: operation,
		Message:   message,
		Context:   make(map[string]interface{}),
		Retryable: isRetryableCategory(category),
	}
}

// WrapError wraps an existing error with engine error context
func WrapError(err error, category ErrorCategory, component, operation string) *EngineError {
	if err == nil {
		return nil
	}

	return &EngineError{
		Category:   category,
		Component:  component,
		Operation:  operation,
		Message:    "operation failed",
		Underlying: err,
		Context:    make(map[string]interface{}),
		Retryable:  isRetryableCategory(category),
	}
}

// WithContext adds context information to the error
func (e *EngineError) WithContext(key string, value interface{}) *EngineError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// WithRetryable sets the retryable flag
func (e *EngineError) WithRetryable(retryable bool) *EngineError {
	e.Retryable = retryable
	return e
}

// isRetryableCategory determines if an error category is generally retryable
func isRetryableCategory(category ErrorCategory) bool {
	switch category {
	case ErrorCategoryNetwork, ErrorCategoryTimeout, ErrorCategoryTemporary, ErrorCategoryRateLimit:
		return true
	case ErrorCategoryConfiguration, ErrorCategoryMissingData, ErrorCategoryEvaluator:
		return false
	default:
		return true
	}
}

// CategorizeError attempts to categorize a generic error
func CategorizeError(err error, component, operation string) *EngineError {
	if err == nil {
		return nil
	}

	var engErr *EngineError
	if stderrors.As(err, &engErr) {
		return engErr
	}

	errMsg := strings.ToLower(err.Error())

	if strings.Contains(errMsg, "timeout") || strings.Contains(errMsg, "context deadline exceeded") {
		return WrapError(err, ErrorCategoryTimeout, component, operation)
	}

	if strings.Contains(errMsg, "connection") || strings.Contains(errMsg, "network") ||
		strings.Contains(errMsg, "dns") || strings.Contains(errMsg, "dial") {
		return WrapError(err, ErrorCategoryNetwork, component, operation)
	}

	if strings.Contains(errMsg, "rate limit") || strings.Contains(errMsg, "too many requests") {
		return WrapError(err, ErrorCategoryRateLimit, component, operation)
	}

	if strings.Contains(errMsg, "invalid") || strings.Contains(errMsg, "minimum") ||
		strings.Contains(errMsg, "maximum") {
		return WrapError(err, ErrorCategoryConfiguration, component, operation)
	}

	return WrapError(err, ErrorCategoryTemporary, component, operation)
}

// Common error constructors

func NewConfigurationError(component, operation, message string) *EngineError {
	return NewEngineError(ErrorCategoryConfiguration, component, operation, message)
}

func NewMissingDataError(component, operation, message string) *EngineError {
	return NewEngineError(ErrorCategoryMissingData, component, operation, message)
}

func NewEvaluatorFault(component, operation string, err error) *EngineError {
	return WrapError(err, ErrorCategoryEvaluator, component, operation)
}

func NewExchangeError(component, operation string, err error) *EngineError {
	return WrapError(err, ErrorCategoryExchange, component, operation)
}

func NewDataError(component, operation string, err error) *EngineError {
	return WrapError(err, ErrorCategoryData, component, operation).WithRetryable(false)
}

func NewNetworkError(component, operation string, err error) *EngineError {
	return WrapError(err, ErrorCategoryNetwork, component, operation)
}

func NewTimeoutError(component, operation string, err error) *EngineError {
	return WrapError(err, ErrorCategoryTimeout, component, operation)
}

// Category predicates used by callers to branch on failure kinds

// IsConfigurationError reports whether err is an EngineError carrying
// the configuration category.
func IsConfigurationError(err error) bool {
	return hasCategory(err, ErrorCategoryConfiguration)
}

// IsMissingDataError reports whether err is an EngineError carrying the
// missing-data category.
func IsMissingDataError(err error) bool {
	return hasCategory(err, ErrorCategoryMissingData)
}

// IsEvaluatorFault reports whether err is an EngineError carrying the
// evaluator category.
func IsEvaluatorFault(err error) bool {
	return hasCategory(err, ErrorCategoryEvaluator)
}

func hasCategory(err error, category ErrorCategory) bool {
	var engErr *EngineError
	if stderrors.As(err, &engErr) {
		return engErr.Category == category
	}
	return false
}

// ErrorStats tracks error statistics
type ErrorStats struct {
	TotalErrors      int
	ErrorsByCategory map[ErrorCategory]int
	RecentErrors     []*EngineError
	MaxRecentErrors  int
}

// NewErrorStats creates a new error statistics tracker
func NewErrorStats(maxRecentErrors int) *ErrorStats {
	return &ErrorStats{
		ErrorsByCategory: make(map[ErrorCategory]int),
		RecentErrors:     make([]*EngineError, 0, maxRecentErrors),
		MaxRecentErrors:  maxRecentErrors,
	}
}

// RecordError records an error in the statistics
func (es *ErrorStats) RecordError(err *EngineError) {
	es.TotalErrors++
	es.ErrorsByCategory[err.Category]++

	es.RecentErrors = append(es.RecentErrors, err)
	if len(es.RecentErrors) > es.MaxRecentErrors {
		es.RecentErrors = es.RecentErrors[1:]
	}
}

// GetErrorRate returns the error rate for a specific category
func (es *ErrorStats) GetErrorRate(category ErrorCategory) float64 {
	if es.TotalErrors == 0 {
		return 0.0
	}
	return float64(es.ErrorsByCategory[category]) / float64(es.TotalErrors)
}
