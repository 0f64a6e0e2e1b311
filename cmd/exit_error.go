package cmd

import "fmt"

// ExitError signals a non-zero exit status without calling os.Exit in RunE
// handlers. The message has already been reported when Reported is set.
type ExitError struct {
	Code     int
	Err      error
	Reported bool
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}
