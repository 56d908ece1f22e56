package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for the generation pipeline
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Parameter errors
	ErrParametersNotFound ErrorCode = "PARAMETERS_NOT_FOUND"
	ErrParse              ErrorCode = "PARSE"

	// Template errors
	ErrTemplateNotFound ErrorCode = "TEMPLATE_NOT_FOUND"
	ErrTemplateSyntax   ErrorCode = "TEMPLATE_SYNTAX"

	// Secret generation
	ErrSecretGenerate ErrorCode = "SECRET_GENERATE"

	// FileSystem errors
	ErrIO ErrorCode = "IO"
)

// SettingsError represents a structured error with code and details
type SettingsError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SettingsError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SettingsError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *SettingsError) Is(target error) bool {
	var targetErr *SettingsError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SettingsError with the given code and message
func New(code ErrorCode, message string) *SettingsError {
	return &SettingsError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SettingsError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SettingsError {
	return &SettingsError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a SettingsError
func Wrap(err error, code ErrorCode, message string) *SettingsError {
	if err == nil {
		return nil
	}
	return &SettingsError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SettingsError {
	if err == nil {
		return nil
	}
	return &SettingsError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *SettingsError) WithDetail(key string, value interface{}) *SettingsError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var settingsErr *SettingsError
	if errors.As(err, &settingsErr) {
		return settingsErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a SettingsError
func GetErrorCode(err error) ErrorCode {
	var settingsErr *SettingsError
	if errors.As(err, &settingsErr) {
		return settingsErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a SettingsError
func GetErrorDetails(err error) map[string]interface{} {
	var settingsErr *SettingsError
	if errors.As(err, &settingsErr) {
		return settingsErr.Details
	}
	return nil
}
