package cli

import "errors"

// ErrInterrupted is returned by prompts when the user interrupts the program
// (SIGINT) or input ends before an answer is read.
var ErrInterrupted = errors.New("interrupted by user")

// FormatError returns a user-friendly error message.
// It prefixes the error with "error: " for consistent CLI output.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	return "error: " + err.Error()
}
