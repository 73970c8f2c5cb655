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
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Repository errors
	ErrRepoNotFound  ErrorCode = "REPO_NOT_FOUND"
	ErrConfigMissing ErrorCode = "CONFIG_MISSING"
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigParse   ErrorCode = "CONFIG_PARSE"
	ErrConfigValid   ErrorCode = "CONFIG_INVALID"

	// Backup errors
	ErrDisplacedMove ErrorCode = "DISPLACED_MOVE_FAILED"
	ErrBackupCreate  ErrorCode = "BACKUP_CREATE"
	ErrMarkerWrite   ErrorCode = "MARKER_WRITE"

	// Text surgery errors
	ErrBlockEdit ErrorCode = "BLOCK_EDIT_FAILED"

	// Collaborator errors
	ErrExternalTool ErrorCode = "EXTERNAL_TOOL_MISSING"

	// FileSystem errors
	ErrFileAccess    ErrorCode = "FILE_ACCESS"
	ErrFileWrite     ErrorCode = "FILE_WRITE"
	ErrSymlinkCreate ErrorCode = "SYMLINK_CREATE"
	ErrDirCreate     ErrorCode = "DIR_CREATE"
)

// HyprkitError represents a structured error with code and details
type HyprkitError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *HyprkitError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *HyprkitError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *HyprkitError) Is(target error) bool {
	var targetErr *HyprkitError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new HyprkitError with the given code and message
func New(code ErrorCode, message string) *HyprkitError {
	return &HyprkitError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new HyprkitError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *HyprkitError {
	return &HyprkitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a HyprkitError
func Wrap(err error, code ErrorCode, message string) *HyprkitError {
	if err == nil {
		return nil
	}
	return &HyprkitError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *HyprkitError {
	if err == nil {
		return nil
	}
	return &HyprkitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *HyprkitError) WithDetail(key string, value interface{}) *HyprkitError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var kitErr *HyprkitError
	if errors.As(err, &kitErr) {
		return kitErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a HyprkitError
func GetErrorCode(err error) ErrorCode {
	var kitErr *HyprkitError
	if errors.As(err, &kitErr) {
		return kitErr.Code
	}
	return ErrUnknown
}
