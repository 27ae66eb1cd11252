package common

import (
	"fmt"
	"time"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeConfiguration for configuration errors, fatal at startup
	ErrorTypeConfiguration ErrorType = "configuration"
	// ErrorTypeNetwork for transport failures talking to Jira
	ErrorTypeNetwork ErrorType = "network"
	// ErrorTypeJira for unexpected Jira API responses
	ErrorTypeJira ErrorType = "jira"
)

// AutomationError represents a structured error with context
type AutomationError struct {
	Type      ErrorType              `json:"type"`
	Code      string                 `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	Context   map[string]interface{} `json:"context,omitempty"`
	Cause     error                  `json:"-"`
}

// Error implements the error interface
func (e *AutomationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s:%s] %s: %s", e.Type, e.Code, e.Message, e.Details)
	}
	if e.Cause != nil {
		return fmt.Sprintf("[%s:%s] %s: %v", e.Type, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Type, e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *AutomationError) Unwrap() error {
	return e.Cause
}

// Fatal reports whether the error must stop the process.
func (e *AutomationError) Fatal() bool {
	return e.Type == ErrorTypeConfiguration
}

// WithContext adds context to the error
func (e *AutomationError) WithContext(key string, value interface{}) *AutomationError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// WithDetails sets the details string
func (e *AutomationError) WithDetails(details string) *AutomationError {
	e.Details = details
	return e
}

// NewError creates a new AutomationError
func NewError(errorType ErrorType, code, message string) *AutomationError {
	return &AutomationError{
		Type:      errorType,
		Code:      code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// NewConfigurationError creates a configuration error
func NewConfigurationError(code, message string) *AutomationError {
	return NewError(ErrorTypeConfiguration, code, message)
}

// NewNetworkError creates a network error
func NewNetworkError(code, message string) *AutomationError {
	return NewError(ErrorTypeNetwork, code, message)
}

// NewJiraError creates a Jira-specific error
func NewJiraError(code, message string) *AutomationError {
	return NewError(ErrorTypeJira, code, message)
}

// WrapError wraps an existing error with AutomationError context
func WrapError(err error, errorType ErrorType, code, message string) *AutomationError {
	return &AutomationError{
		Type:      errorType,
		Code:      code,
		Message:   message,
		Timestamp: time.Now(),
		Cause:     err,
	}
}
