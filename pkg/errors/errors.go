// Package errors defines the failure kinds a retitle run can end in.
//
// A rename list line that is not "from<TAB>to" fails with PARSE and carries
// the offending line and its 1-based lineNumber. A forward rename that the
// filesystem refuses fails with RENAME (details from, to). When undoing the
// already-applied renames itself fails, the result is ROLLBACK, which leaves
// the directory in a mixed state and maps to exit status 2. Listing the
// directory, reading or writing the rename list, reading stdin and running
// the editor each have their own code so the CLI can name the collaborator
// that failed. LOCKED means another retitle holds the directory.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode names a failure kind. Values are stable and appear in brackets
// at the front of Error().
type ErrorCode string

const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrPermission   ErrorCode = "PERMISSION"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Malformed rename list line
	ErrParse ErrorCode = "PARSE"

	// Forward rename failed; undo of applied renames failed
	ErrRename   ErrorCode = "RENAME"
	ErrRollback ErrorCode = "ROLLBACK"

	// Collaborator I/O errors
	ErrListDir   ErrorCode = "LIST_DIR"
	ErrReadFile  ErrorCode = "READ_FILE"
	ErrWriteFile ErrorCode = "WRITE_FILE"
	ErrReadStdin ErrorCode = "READ_STDIN"
	ErrEditor    ErrorCode = "EDITOR"

	// Directory already locked by another run
	ErrLocked ErrorCode = "LOCKED"
)

// RetitleError is a failure of a given kind. Details holds the values a
// caller needs to report it, such as the from/to of a failed rename.
type RetitleError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error renders "[CODE] message", followed by the wrapped cause if any.
func (e *RetitleError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *RetitleError) Unwrap() error {
	return e.Wrapped
}

// Is reports a match when target is a RetitleError of the same kind.
func (e *RetitleError) Is(target error) bool {
	var targetErr *RetitleError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New returns a failure of kind code with no underlying cause.
func New(code ErrorCode, message string) *RetitleError {
	return &RetitleError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf is New with a formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) *RetitleError {
	return &RetitleError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap classifies err, typically an I/O error from the filesystem or the
// editor, as kind code. It returns nil when err is nil.
func Wrap(err error, code ErrorCode, message string) *RetitleError {
	if err == nil {
		return nil
	}
	return &RetitleError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *RetitleError {
	if err == nil {
		return nil
	}
	return &RetitleError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail records key=value and returns e for chaining.
func (e *RetitleError) WithDetail(key string, value interface{}) *RetitleError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails records every entry of details.
func (e *RetitleError) WithDetails(details map[string]interface{}) *RetitleError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode reports whether the first RetitleError in err's chain is of
// kind code. The CLI uses it to pick the exit status.
func IsErrorCode(err error, code ErrorCode) bool {
	var retitleErr *RetitleError
	if errors.As(err, &retitleErr) {
		return retitleErr.Code == code
	}
	return false
}

// GetErrorCode returns the kind of err, or ErrUnknown for uncoded errors.
func GetErrorCode(err error) ErrorCode {
	var retitleErr *RetitleError
	if errors.As(err, &retitleErr) {
		return retitleErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details of the first RetitleError in err's
// chain, or nil.
func GetErrorDetails(err error) map[string]interface{} {
	var retitleErr *RetitleError
	if errors.As(err, &retitleErr) {
		return retitleErr.Details
	}
	return nil
}
