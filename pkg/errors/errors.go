package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown  ErrorCode = "UNKNOWN"
	ErrInternal ErrorCode = "INTERNAL"

	// Configuration errors
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigParse   ErrorCode = "CONFIG_PARSE"
	ErrConfigInvalid ErrorCode = "CONFIG_INVALID"

	// Runtime identity errors
	ErrExecutable ErrorCode = "EXECUTABLE"
	ErrLock       ErrorCode = "LOCK"

	// Mirror errors
	ErrPathMapping ErrorCode = "PATH_MAPPING"
	ErrClean       ErrorCode = "CLEAN"
	ErrCopy        ErrorCode = "COPY"
)

// BackupError represents a structured error with code and details
type BackupError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *BackupError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *BackupError) Unwrap() error {
	return e.Wrapped
}

// Is matches any BackupError carrying the same code
func (e *BackupError) Is(target error) bool {
	var targetErr *BackupError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new BackupError with the given code and message
func New(code ErrorCode, message string) *BackupError {
	return &BackupError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new BackupError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *BackupError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with a BackupError
func Wrap(err error, code ErrorCode, message string) *BackupError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *BackupError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *BackupError) WithDetail(key string, value interface{}) *BackupError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var backupErr *BackupError
	if errors.As(err, &backupErr) {
		return backupErr.Code == code
	}
	return false
}

// IsConfigError reports whether err came from loading or validating configuration.
func IsConfigError(err error) bool {
	switch GetErrorCode(err) {
	case ErrConfigLoad, ErrConfigParse, ErrConfigInvalid:
		return true
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a BackupError
func GetErrorCode(err error) ErrorCode {
	var backupErr *BackupError
	if errors.As(err, &backupErr) {
		return backupErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a BackupError
func GetErrorDetails(err error) map[string]interface{} {
	var backupErr *BackupError
	if errors.As(err, &backupErr) {
		return backupErr.Details
	}
	return nil
}
