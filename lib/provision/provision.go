// Copyright 2026 The Clipboot Authors
// SPDX-License-Identifier: Apache-2.0

package provision

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"time"

	"github.com/zeebo/blake3"
)

// ErrManifestMissing is returned when the dependency manifest file
// does not exist. This is the only fatal provisioning condition.
var ErrManifestMissing = errors.New("dependency manifest not found")

// Installer runs the dependency-installation stage.
type Installer struct {
	// Interpreter is the resolved interpreter path from the runtime
	// probe. Dependencies install via "<interpreter> -m pip".
	Interpreter string

	// Manifest is the path of the dependency manifest.
	Manifest string

	// StampPath is where the provisioning stamp is recorded. Empty
	// disables stamping.
	StampPath string

	// SkipUnchanged skips the installer when the manifest hash
	// matches the recorded stamp.
	SkipUnchanged bool

	// Logger for operational logging.
	Logger *slog.Logger

	// runCommand overrides the installer invocation in tests. When
	// nil, the real pip subprocess runs with inherited stdout/stderr.
	runCommand func(ctx context.Context, interpreter string, args ...string) error
}

// Outcome describes a completed (non-fatal) provisioning run.
type Outcome struct {
	// Skipped is true when the manifest was unchanged since the last
	// successful install and the installer did not run.
	Skipped bool

	// Warning is a human-readable summary when the installer reported
	// a failure. The stage still counts as completed.
	Warning string
}

// Provision ensures the manifest's dependencies are installed. The
// returned error is non-nil only when the manifest itself is unusable;
// installer failures surface as Outcome.Warning.
func (i *Installer) Provision(ctx context.Context) (Outcome, error) {
	logger := i.Logger
	if logger == nil {
		logger = slog.Default()
	}

	data, err := os.ReadFile(i.Manifest)
	if os.IsNotExist(err) {
		return Outcome{}, fmt.Errorf("%s: %w", i.Manifest, ErrManifestMissing)
	}
	if err != nil {
		return Outcome{}, fmt.Errorf("reading manifest: %w", err)
	}

	manifestHash := blake3.Sum256(data)

	if i.SkipUnchanged && i.StampPath != "" {
		if recorded, err := readStamp(i.StampPath); err == nil {
			if recorded.matches(manifestHash[:], i.Interpreter) {
				logger.Info("manifest unchanged since last install, skipping",
					"manifest", i.Manifest,
					"installed_at", recorded.InstalledAt,
				)
				return Outcome{Skipped: true}, nil
			}
		}
	}

	run := i.runCommand
	if run == nil {
		run = runPip
	}

	logger.Info("installing dependencies",
		"manifest", i.Manifest,
		"interpreter", i.Interpreter,
	)

	if err := run(ctx, i.Interpreter, "-m", "pip", "install", "-r", i.Manifest); err != nil {
		logger.Warn("dependency installation failed",
			"manifest", i.Manifest,
			"error", err,
		)
		return Outcome{Warning: "some dependencies may not have installed"}, nil
	}

	if i.StampPath != "" {
		record := stamp{
			ManifestHash: manifestHash[:],
			Interpreter:  i.Interpreter,
			InstalledAt:  time.Now().UTC(),
		}
		if err := writeStamp(i.StampPath, record); err != nil {
			// Not worth failing over: the next run just reinstalls.
			logger.Warn("writing provisioning stamp", "path", i.StampPath, "error", err)
		}
	}

	return Outcome{}, nil
}

// runPip executes the pip install with output passed through, so the
// user sees installation progress directly.
func runPip(ctx context.Context, interpreter string, args ...string) error {
	cmd := exec.CommandContext(ctx, interpreter, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
