// Copyright 2026 The Clipboot Authors
// SPDX-License-Identifier: Apache-2.0

package launch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"

	"github.com/crypto-clipboard/clipboot/lib/process"
)

// Entry identifies one of the externally-owned application entry
// points.
type Entry struct {
	// Script is the entry script filename (e.g., "cli_main.py").
	Script string

	// Dir is the directory containing the script, relative to the
	// project root. The entry point resolves its own resources
	// relative to its location, so the child runs with this as its
	// working directory. "." means the project root itself.
	Dir string
}

// Platform describes the per-platform variable points of the launch
// stage. Default() returns the variant for the compiling GOOS.
type Platform struct {
	// Name labels the variant in logs ("unix", "windows").
	Name string

	// Entry is the entry point this variant launches.
	Entry Entry

	// Interpreters are the interpreter names probed on PATH, in
	// preference order.
	Interpreters []string
}

// Spec is the resolved launch request: the interpreter from the
// runtime probe, the platform's entry point, and the argument vector
// forwarded verbatim from the bootstrapper's own invocation.
type Spec struct {
	Interpreter string
	Entry       Entry
	Args        []string
	Logger      *slog.Logger
}

// Run starts the entry point and blocks for the lifetime of the
// target application. Standard input, output, and error are inherited
// so interactive use works end-to-end. A non-zero child exit surfaces
// as *process.ExitError carrying the child's status; nil means the
// child exited 0.
func Run(ctx context.Context, spec Spec) error {
	logger := spec.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if err := checkExecutable(spec.Interpreter); err != nil {
		return fmt.Errorf("interpreter not executable: %w", err)
	}

	argv := append([]string{spec.Entry.Script}, spec.Args...)
	cmd := exec.CommandContext(ctx, spec.Interpreter, argv...)
	if spec.Entry.Dir != "" && spec.Entry.Dir != "." {
		cmd.Dir = spec.Entry.Dir
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	logger.Info("launching target application",
		"interpreter", spec.Interpreter,
		"entry", spec.Entry.Script,
		"dir", spec.Entry.Dir,
		"args", spec.Args,
	)

	// An interrupt during the wait belongs to the target: the terminal
	// delivers it to the whole foreground process group, and the child
	// owns the graceful-shutdown response. Ignoring it here keeps this
	// process alive long enough to report the child's exit status.
	signal.Ignore(os.Interrupt)

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return &process.ExitError{Code: childExitCode(exitErr)}
		}
		return fmt.Errorf("launching %s: %w", spec.Entry.Script, err)
	}

	return nil
}
