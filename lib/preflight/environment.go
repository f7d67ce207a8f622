// Copyright 2026 The Clipboot Authors
// SPDX-License-Identifier: Apache-2.0

package preflight

import (
	"os"
	"os/exec"
	"strings"
)

// Environment abstracts the ambient host state the checks inspect.
// Fields are function values rather than an interface so tests can
// fake exactly the lookups a check uses and leave the rest nil.
type Environment struct {
	// LookPath resolves an executable name on PATH.
	LookPath func(file string) (string, error)

	// Getenv reads an environment variable ("" when unset).
	Getenv func(key string) string

	// Stat stats a filesystem path.
	Stat func(name string) (os.FileInfo, error)

	// InterpreterVersion reports the version string of the
	// interpreter at the given path (e.g., "Python 3.12.1").
	InterpreterVersion func(path string) (string, error)
}

// System returns the Environment backed by the real host.
func System() Environment {
	return Environment{
		LookPath:           exec.LookPath,
		Getenv:             os.Getenv,
		Stat:               os.Stat,
		InterpreterVersion: interpreterVersion,
	}
}

// interpreterVersion runs "<path> --version" and returns the first
// line of output. Older Python 2 interpreters print the version to
// stderr, so both streams are captured.
func interpreterVersion(path string) (string, error) {
	output, err := exec.Command(path, "--version").CombinedOutput()
	if err != nil {
		return "", err
	}
	line, _, _ := strings.Cut(strings.TrimSpace(string(output)), "\n")
	return strings.TrimSpace(line), nil
}
