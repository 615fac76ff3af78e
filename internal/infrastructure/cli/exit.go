package cli

import "fmt"

// Process exit codes. Child exit codes are mirrored verbatim for `run` and
// the stage commands; ExitInternal marks fatal errors that are not a child
// outcome (unspawnable shell, broken config) so CI systems can tell the two
// apart.
const (
	ExitOK       = 0
	ExitInternal = 125
)

// ExitCodeError carries the process exit code for main to propagate.
// Err is optional: a mirrored child failure was already reported through
// the banner, so there is nothing further to print.
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}
