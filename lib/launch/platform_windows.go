// Copyright 2026 The Clipboot Authors
// SPDX-License-Identifier: Apache-2.0

//go:build windows

package launch

import (
	"fmt"
	"os"
	"os/exec"
)

// Default returns the windows platform variant: the GUI entry in the
// src/ directory, launched via the py launcher when available.
func Default() Platform {
	return Platform{
		Name:         "windows",
		Entry:        Entry{Script: "main.py", Dir: "src"},
		Interpreters: []string{"py", "python"},
	}
}

// checkExecutable verifies the interpreter path exists and is a file.
// Windows has no execute bit; PATHEXT resolution already happened in
// the runtime probe's LookPath.
func checkExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	return nil
}

// childExitCode extracts the exit status from a finished child.
func childExitCode(exitErr *exec.ExitError) int {
	return exitErr.ExitCode()
}
