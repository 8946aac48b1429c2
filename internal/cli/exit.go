package cli

import "errors"

// Process exit statuses of mrfgen.
const (
	ExitOK     = 0
	ExitFailed = 1 // build or I/O failure
	ExitUsage  = 2 // bad flags or configuration
)

// exitError tags err with the status main exits with.
type exitError struct {
	code int
	op   string
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return e.op
	}
	return e.op + ": " + e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

// fail prefixes err with op and attaches an exit status; err may be nil.
func fail(code int, op string, err error) error {
	return &exitError{code: code, op: op, err: err}
}

// ExitCode maps an error returned by the root command to a process status.
// Errors that carry no status, such as cobra's flag parse errors, map to
// ExitFailed.
func ExitCode(err error) int {
	var e *exitError
	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &e):
		return e.code
	default:
		return ExitFailed
	}
}
