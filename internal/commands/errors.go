package commands

import (
	"fmt"
	"io"

	"taskify/internal/api"
	"taskify/internal/exitcode"
)

// reportExitCode picks the exit code for a failed backend call: a rejected
// token maps to the auth code, everything else is a backend error.
func reportExitCode(err error) int {
	if api.IsAuthError(err) {
		return exitcode.AuthError
	}
	return exitcode.BackendError
}

// reportBackendError prints a backend failure and returns its exit code.
func reportBackendError(errOut io.Writer, err error) int {
	if api.IsAuthError(err) {
		fmt.Fprintf(errOut, "error: %v\n", err)
	} else {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
	}
	return reportExitCode(err)
}
