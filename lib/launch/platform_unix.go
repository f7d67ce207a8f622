// Copyright 2026 The Clipboot Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !windows

package launch

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

// Default returns the unix platform variant: the command-line entry at
// the project root. The GUI entry depends on tkinter, which many unix
// Python installs lack, so the shell variant has always targeted the
// CLI entry.
func Default() Platform {
	return Platform{
		Name:         "unix",
		Entry:        Entry{Script: "cli_main.py", Dir: "."},
		Interpreters: []string{"python3", "python"},
	}
}

// checkExecutable verifies the interpreter has execute permission for
// this process, not merely an executable bit somewhere in the mode.
func checkExecutable(path string) error {
	return unix.Access(path, unix.X_OK)
}

// childExitCode extracts the exit status from a finished child.
// Signal deaths map to the shell convention 128+signal so callers see
// the same status a shell wrapper would have reported.
func childExitCode(exitErr *exec.ExitError) int {
	if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return 128 + int(status.Signal())
	}
	return exitErr.ExitCode()
}
