// Copyright 2026 The Clipboot Authors
// SPDX-License-Identifier: Apache-2.0

// clipboot bootstraps the Crypto Clipboard application: it verifies a
// Python runtime and the project root, installs the declared
// dependencies, prepares the output workspace, and hands off to the
// platform's entry point with the original arguments and stdio.
//
// Usage:
//
//	clipboot [args...]
//
// Every argument is forwarded verbatim to the target application;
// clipboot reserves no flags of its own. The process exits with the
// target's exit status, or with a distinct code when a precondition
// fails: 2 runtime missing, 3 wrong working directory, 4 manifest
// missing, 5 workspace error.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/crypto-clipboard/clipboot/lib/config"
	"github.com/crypto-clipboard/clipboot/lib/launch"
	"github.com/crypto-clipboard/clipboot/lib/preflight"
	"github.com/crypto-clipboard/clipboot/lib/process"
	"github.com/crypto-clipboard/clipboot/lib/provision"
	"github.com/crypto-clipboard/clipboot/lib/workspace"
)

func main() {
	if err := run(); err != nil {
		// Stages print their own diagnostics and return an ExitError
		// with the desired code. Don't print a redundant "error:" line
		// for those.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		process.Fatal(err)
	}
}

func run() error {
	ctx := context.Background()
	logger := process.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	platform := launch.Default()
	candidates := cfg.Runtime.Interpreters
	if len(candidates) == 0 {
		candidates = platform.Interpreters
	}

	// Stage 1: preflight. The two fatal checks each terminate with
	// their own exit code before anything mutates; the isolation
	// check is advisory only.
	env := preflight.System()

	probe, runtimeResult := preflight.CheckRuntime(env, candidates)
	preflight.PrintResult(os.Stdout, runtimeResult)
	if !probe.Found {
		return &process.ExitError{Code: process.ExitRuntimeMissing}
	}

	rootResult := preflight.CheckProjectRoot(env, cfg.Paths.Marker)
	preflight.PrintResult(os.Stdout, rootResult)
	if rootResult.Status == preflight.StatusFail {
		return &process.ExitError{Code: process.ExitWrongDirectory}
	}

	preflight.PrintResult(os.Stdout, preflight.CheckIsolation(env))

	// Stage 2: provision. Only a missing manifest is fatal; installer
	// failures degrade to a warning and the sequence continues.
	installer := &provision.Installer{
		Interpreter:   probe.Path,
		Manifest:      cfg.Paths.Manifest,
		StampPath:     cfg.StampPath(),
		SkipUnchanged: cfg.Provision.SkipUnchanged,
		Logger:        logger,
	}
	outcome, err := installer.Provision(ctx)
	if errors.Is(err, provision.ErrManifestMissing) {
		preflight.PrintResult(os.Stdout, preflight.Fail("manifest", err.Error()))
		return &process.ExitError{Code: process.ExitManifestMissing}
	}
	if err != nil {
		return err
	}
	switch {
	case outcome.Skipped:
		preflight.PrintResult(os.Stdout, preflight.Pass("dependencies", "unchanged since last install"))
	case outcome.Warning != "":
		preflight.PrintResult(os.Stdout, preflight.Warn("dependencies", outcome.Warning))
	default:
		preflight.PrintResult(os.Stdout, preflight.Pass("dependencies", "installed from "+cfg.Paths.Manifest))
	}

	// Stage 3: workspace.
	if err := workspace.Ensure(cfg.Paths.Workspace); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return &process.ExitError{Code: process.ExitWorkspaceError}
	}

	// Stage 4: handoff. Blocks for the lifetime of the target; its
	// exit status becomes ours.
	return launch.Run(ctx, launch.Spec{
		Interpreter: probe.Path,
		Entry:       platform.Entry,
		Args:        os.Args[1:],
		Logger:      logger,
	})
}
