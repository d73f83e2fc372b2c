package errors

import (
	"fmt"

	crdb "github.com/cockroachdb/errors"
)

// Process exit statuses.
const (
	ExitSuccess = 0
	// ExitUser covers bad input, validation failures and declined prompts.
	ExitUser = 1
	// ExitSystem covers I/O, network and failed dispatches.
	ExitSystem = 2
)

var (
	ErrUnknownPlatform    = crdb.New("unknown platform")
	ErrNoPlatformSelected = crdb.New("no platform selected")
	ErrValidationFailed   = crdb.New("validation failed")
	ErrPostFailed         = crdb.New("post failed")
	ErrNotFound           = crdb.New("not found")
	ErrInvalidConfig      = crdb.New("invalid configuration")
	ErrUnsupportedFormat  = crdb.New("unsupported draft format")
)

var (
	New   = crdb.New
	Newf  = crdb.Newf
	Wrap  = crdb.Wrap
	Wrapf = crdb.Wrapf
	Is    = crdb.Is
	As    = crdb.As
	Mark  = crdb.Mark
)

// ExitError attaches a process exit status and an optional hint to err.
// main prints Suggestion beneath the message and exits with Code.
type ExitError struct {
	Err        error
	Code       int
	Suggestion string
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) Unwrap() error { return e.Err }

// NewExitErrorWithSuggestion wraps err with an explicit code and hint.
func NewExitErrorWithSuggestion(err error, code int, suggestion string) *ExitError {
	return &ExitError{Err: err, Code: code, Suggestion: suggestion}
}

// NewUserError marks err as the user's to fix.
func NewUserError(err error, suggestion string) *ExitError {
	return NewExitErrorWithSuggestion(err, ExitUser, suggestion)
}

// NewSystemError marks err as an environment or remote failure.
func NewSystemError(err error, suggestion string) *ExitError {
	return NewExitErrorWithSuggestion(err, ExitSystem, suggestion)
}

// NewConfigError is a user error that points at the doctor command.
func NewConfigError(err error) *ExitError {
	return NewUserError(err, "Run: shotgun doctor")
}

// ExitCode maps err to a process exit status. nil is success; an error
// with no ExitError anywhere in its chain counts as a system failure.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ee *ExitError
	if crdb.As(err, &ee) {
		return ee.Code
	}
	return ExitSystem
}
