// Copyright 2026 The Clipboot Authors
// SPDX-License-Identifier: Apache-2.0

// clipboot-doctor diagnoses the environment the bootstrapper would run
// in, without provisioning or launching anything. It runs the same
// preflight checks as clipboot plus manifest and workspace inspection,
// prints a checklist, and exits 1 when any check fails.
//
// Usage:
//
//	clipboot-doctor [--json] [--config FILE]
//
// This is a read-only triage tool: it never fixes anything itself.
// Each failure message names the command or action that repairs it.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/crypto-clipboard/clipboot/lib/config"
	"github.com/crypto-clipboard/clipboot/lib/launch"
	"github.com/crypto-clipboard/clipboot/lib/preflight"
	"github.com/crypto-clipboard/clipboot/lib/process"
	"github.com/crypto-clipboard/clipboot/lib/version"
)

func main() {
	if err := run(); err != nil {
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		process.Fatal(err)
	}
}

func run() error {
	flags := pflag.NewFlagSet("clipboot-doctor", pflag.ContinueOnError)
	jsonOutput := flags.Bool("json", false, "machine-readable JSON output")
	configPath := flags.String("config", "", "config file path (default: CLIPBOOT_CONFIG or clipboot.yaml)")
	showVersion := flags.Bool("version", false, "print version and exit")
	fullVersion := flags.Bool("full", false, "with --version, include Go and platform details")

	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}
	if *showVersion {
		if *fullVersion {
			fmt.Printf("clipboot-doctor %s\n", version.Full())
		} else {
			fmt.Printf("clipboot-doctor %s\n", version.Info())
		}
		return nil
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	env := preflight.System()
	platform := launch.Default()
	candidates := cfg.Runtime.Interpreters
	if len(candidates) == 0 {
		candidates = platform.Interpreters
	}

	results := collectResults(env, cfg, candidates)

	if *jsonOutput {
		output := preflight.BuildJSON(results)
		if err := json.NewEncoder(os.Stdout).Encode(output); err != nil {
			return err
		}
		if !output.OK {
			return &process.ExitError{Code: 1}
		}
		return nil
	}

	return preflight.PrintChecklist(os.Stdout, results)
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

// collectResults runs every doctor check in bootstrap order. The
// manifest and workspace paths are relative to the project root, so
// those checks are skipped when the project-root check fails — their
// results would only restate that the doctor is running from the
// wrong directory.
func collectResults(env preflight.Environment, cfg *config.Config, candidates []string) []preflight.Result {
	_, runtimeResult := preflight.CheckRuntime(env, candidates)
	rootResult := preflight.CheckProjectRoot(env, cfg.Paths.Marker)

	results := []preflight.Result{
		runtimeResult,
		rootResult,
		preflight.CheckIsolation(env),
	}

	if rootResult.Status == preflight.StatusFail {
		return append(results,
			preflight.Skip("manifest", "skipped: not at the project root"),
			preflight.Skip("workspace", "skipped: not at the project root"),
		)
	}

	return append(results,
		checkManifest(env, cfg.Paths.Manifest),
		checkWorkspace(env, cfg.Paths.Workspace),
	)
}

// checkManifest verifies the dependency manifest exists. The
// bootstrapper treats its absence as fatal, so the doctor reports it
// as a failure.
func checkManifest(env preflight.Environment, manifest string) preflight.Result {
	info, err := env.Stat(manifest)
	if err != nil {
		return preflight.Fail("manifest",
			fmt.Sprintf("%s not found — restore it or point paths.manifest elsewhere", manifest))
	}
	if info.IsDir() {
		return preflight.Fail("manifest", fmt.Sprintf("%s is a directory", manifest))
	}
	return preflight.Pass("manifest", manifest+" present")
}

// checkWorkspace reports the workspace state. Absence is not a
// failure — the bootstrapper creates it — but a non-directory in the
// way is.
func checkWorkspace(env preflight.Environment, path string) preflight.Result {
	info, err := env.Stat(path)
	if os.IsNotExist(err) {
		return preflight.Pass("workspace", path+" absent (created at bootstrap)")
	}
	if err != nil {
		return preflight.Fail("workspace", fmt.Sprintf("cannot stat %s: %v", path, err))
	}
	if !info.IsDir() {
		return preflight.Fail("workspace",
			fmt.Sprintf("%s exists but is not a directory — move it aside", path))
	}
	return preflight.Pass("workspace", path+" present")
}
