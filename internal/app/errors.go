package app

import "fmt"

// AppErrorType represents the type of application error.
type AppErrorType int

const (
	// ArgumentInvalid indicates a malformed or ambiguous bump request.
	ArgumentInvalid AppErrorType = iota
	// TargetUnknown indicates a bump target that is not whitelisted.
	TargetUnknown
	// ScanFailed indicates the addons root could not be read.
	ScanFailed
)

// AppError represents an application-layer error. These are the fatal
// cases: everything else degrades to reported warnings.
type AppError struct {
	// Type is the error type.
	Type AppErrorType
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewArgumentError creates an invalid-argument error.
func NewArgumentError(message string) *AppError {
	return &AppError{Type: ArgumentInvalid, Message: message}
}

// NewTargetError creates an unknown-target error.
func NewTargetError(message string) *AppError {
	return &AppError{Type: TargetUnknown, Message: message}
}

// NewScanError wraps a fatal scan failure.
func NewScanError(cause error) *AppError {
	return &AppError{Type: ScanFailed, Message: "addon scan failed", Cause: cause}
}
