package errors

import (
	"fmt"

	crdb "github.com/cockroachdb/errors"
)

// Process exit codes.
const (
	ExitSuccess = 0
	// ExitUser covers bad input, failed validation and declined prompts.
	ExitUser = 1
	// ExitSystem covers I/O and environment failures.
	ExitSystem = 2
)

// Sentinels shared by commands and the packages they call.
var (
	// ErrInvalidName marks a marketplace, plugin or skill name that is not kebab-case.
	ErrInvalidName = crdb.New("invalid name")
	// ErrNotFound marks a missing marketplace, manifest or skill.
	ErrNotFound = crdb.New("resource not found")
	// ErrAlreadyExists marks the target of a create operation that is already there.
	ErrAlreadyExists = crdb.New("already exists")
	// ErrAborted marks an operation the user declined at a prompt.
	ErrAborted = crdb.New("aborted")
)

// Re-exported from github.com/cockroachdb/errors so callers need one import.
var (
	New   = crdb.New
	Newf  = crdb.Newf
	Wrap  = crdb.Wrap
	Wrapf = crdb.Wrapf
	Is    = crdb.Is
	As    = crdb.As
)

// ExitError carries the exit code for err and an optional hint printed
// after the error message.
type ExitError struct {
	Err        error
	Code       int
	Suggestion string
}

// NewExitError returns an ExitError without a hint.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// NewUserError returns an ExitError with ExitUser.
func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{Err: err, Code: ExitUser, Suggestion: suggestion}
}

// NewSystemError returns an ExitError with ExitSystem.
func NewSystemError(err error, suggestion string) *ExitError {
	return &ExitError{Err: err, Code: ExitSystem, Suggestion: suggestion}
}

// NewConfigError reports an unusable config file and points at mkt config.
func NewConfigError(err error) *ExitError {
	return NewUserError(err, "Run: mkt config list")
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// Code returns the exit code carried by err, ExitSuccess for nil, and
// ExitUser for errors without an ExitError in their chain.
func Code(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if crdb.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUser
}
