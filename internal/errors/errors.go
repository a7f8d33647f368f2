// Package errors provides a lightweight structured error type (SiteForgeError)
// for category-based classification in the generation engine and CLI.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCategory represents the category of a SiteForge error for classification
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// Document model and mutation errors
	CategoryDocument ErrorCategory = "document"
	CategoryMutation ErrorCategory = "mutation"

	// Generation and rendering errors
	CategoryGenerate ErrorCategory = "generate"
	CategoryRender   ErrorCategory = "render"

	// Runtime and infrastructure errors
	CategoryFileSystem ErrorCategory = "filesystem"
	CategoryDaemon     ErrorCategory = "daemon"
	CategoryInternal   ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
	SeverityInfo    ErrorSeverity = "info"    // Informational, no impact
)

// SiteForgeError is a structured error with category, severity, and context
type SiteForgeError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for SiteForgeError
type ContextFields map[string]any

// Error implements the error interface
func (e *SiteForgeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *SiteForgeError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *SiteForgeError) WithContext(key string, value any) *SiteForgeError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new SiteForgeError
func New(category ErrorCategory, severity ErrorSeverity, message string) *SiteForgeError {
	return &SiteForgeError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new SiteForgeError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *SiteForgeError {
	return &SiteForgeError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// CategoryOf extracts the category from an error chain, or CategoryInternal
// when the chain carries no SiteForgeError.
func CategoryOf(err error) ErrorCategory {
	var sfe *SiteForgeError
	if errors.As(err, &sfe) {
		return sfe.Category
	}
	return CategoryInternal
}

// IsFatal reports whether the error chain carries a fatal SiteForgeError.
func IsFatal(err error) bool {
	var sfe *SiteForgeError
	if errors.As(err, &sfe) {
		return sfe.Severity == SeverityFatal
	}
	return false
}
