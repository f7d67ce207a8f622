// Copyright 2026 The Clipboot Authors
// SPDX-License-Identifier: Apache-2.0

package preflight

import (
	"fmt"
	"strings"
)

// isolationVariables are the environment variables that indicate an
// active isolated Python context, in the order they are checked.
var isolationVariables = []string{"VIRTUAL_ENV", "CONDA_PREFIX"}

// RuntimeProbe is the outcome of interpreter discovery. Path and
// Version are only meaningful when Found is true.
type RuntimeProbe struct {
	Found   bool
	Path    string
	Version string
}

// CheckRuntime probes PATH for the first usable interpreter among the
// candidates. The version probe is best-effort: an interpreter that
// resolves on PATH but fails "--version" is still reported found, with
// an empty version string, since the launcher may well succeed.
func CheckRuntime(env Environment, candidates []string) (RuntimeProbe, Result) {
	for _, name := range candidates {
		path, err := env.LookPath(name)
		if err != nil {
			continue
		}

		probe := RuntimeProbe{Found: true, Path: path}
		if version, err := env.InterpreterVersion(path); err == nil {
			probe.Version = version
			return probe, Pass("runtime", fmt.Sprintf("%s (%s)", version, path))
		}
		return probe, Pass("runtime", path)
	}

	return RuntimeProbe{}, Fail("runtime",
		fmt.Sprintf("no interpreter found on PATH (tried: %s) — install Python 3",
			strings.Join(candidates, ", ")))
}

// CheckProjectRoot verifies the current directory is the project root
// by the presence of the marker file.
func CheckProjectRoot(env Environment, marker string) Result {
	info, err := env.Stat(marker)
	if err != nil {
		return Fail("project root",
			fmt.Sprintf("%s not found — run from the project root directory", marker))
	}
	if info.IsDir() {
		return Fail("project root",
			fmt.Sprintf("%s is a directory, expected the application entry file", marker))
	}
	return Pass("project root", fmt.Sprintf("%s present", marker))
}

// CheckIsolation reports whether an isolated Python context is active.
// This is purely advisory: a bare system interpreter works, it just
// pollutes the global site-packages when dependencies install.
func CheckIsolation(env Environment) Result {
	for _, key := range isolationVariables {
		if value := env.Getenv(key); value != "" {
			return Pass("isolation", fmt.Sprintf("%s=%s", key, value))
		}
	}
	return Warn("isolation",
		"no virtual environment active — consider: python3 -m venv .venv && source .venv/bin/activate")
}
