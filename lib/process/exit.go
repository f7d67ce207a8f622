// Copyright 2026 The Clipboot Authors
// SPDX-License-Identifier: Apache-2.0

package process

import (
	"fmt"
	"os"
)

// Bootstrap exit codes. Code 1 is reserved for unexpected errors
// surfaced by main(); the precondition failures below get distinct
// codes so a wrapping script can tell them apart.
const (
	// ExitRuntimeMissing: no usable interpreter was found on PATH.
	ExitRuntimeMissing = 2

	// ExitWrongDirectory: the current directory is not the project
	// root (marker file absent).
	ExitWrongDirectory = 3

	// ExitManifestMissing: the dependency manifest file does not exist.
	ExitManifestMissing = 4

	// ExitWorkspaceError: the workspace directory could not be created.
	ExitWorkspaceError = 5
)

// Fatal writes "error: err" to stderr and exits with code 1. Use it in
// main() for errors from run() where the structured logger may not be
// initialized.
func Fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

// ExitError signals a specific exit code without printing an extra
// error message. When a stage returns an ExitError, main exits with
// the specified code without printing the error string — the stage is
// expected to have already written its own diagnostic.
//
// The launcher also uses ExitError to forward the target application's
// exit status: a child exiting 7 becomes ExitError{Code: 7}.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode returns the exit code. main() checks for this interface on
// returned errors to distinguish "handled non-zero exit" from
// "unexpected error to display".
func (e *ExitError) ExitCode() int {
	return e.Code
}
