// Copyright 2026 The Clipboot Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/crypto-clipboard/clipboot/lib/config"
	"github.com/crypto-clipboard/clipboot/lib/preflight"
)

// statIn returns a Stat function rooted in dir.
func statIn(dir string) preflight.Environment {
	return preflight.Environment{
		Stat: func(name string) (os.FileInfo, error) {
			return os.Stat(filepath.Join(dir, name))
		},
	}
}

// doctorEnv returns a full fake Environment rooted in dir, with no
// interpreter on PATH and no isolation variables set.
func doctorEnv(dir string) preflight.Environment {
	env := statIn(dir)
	env.LookPath = func(file string) (string, error) {
		return "", os.ErrNotExist
	}
	env.Getenv = func(string) string { return "" }
	return env
}

func statusOf(t *testing.T, results []preflight.Result, name string) preflight.Status {
	t.Helper()
	for _, result := range results {
		if result.Name == name {
			return result.Status
		}
	}
	t.Fatalf("no %q result in %v", name, results)
	return ""
}

func TestCollectResultsSkipsRelativeChecksOutsideProjectRoot(t *testing.T) {
	// Empty directory: no marker, so the project-root check fails and
	// the manifest/workspace checks (relative paths) must be skipped,
	// not reported as independent failures.
	results := collectResults(doctorEnv(t.TempDir()), config.Default(), []string{"python3"})

	if got := statusOf(t, results, "project root"); got != preflight.StatusFail {
		t.Errorf("project root = %s, want fail", got)
	}
	if got := statusOf(t, results, "manifest"); got != preflight.StatusSkip {
		t.Errorf("manifest = %s, want skip outside the project root", got)
	}
	if got := statusOf(t, results, "workspace"); got != preflight.StatusSkip {
		t.Errorf("workspace = %s, want skip outside the project root", got)
	}
}

func TestCollectResultsChecksManifestAtProjectRoot(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "cli_main.py"), []byte("# entry\n"), 0644); err != nil {
		t.Fatal(err)
	}

	results := collectResults(doctorEnv(dir), config.Default(), []string{"python3"})

	// Marker present: the manifest check runs for real and fails
	// because requirements.txt is absent.
	if got := statusOf(t, results, "manifest"); got != preflight.StatusFail {
		t.Errorf("manifest = %s, want fail for a missing manifest", got)
	}
	if got := statusOf(t, results, "workspace"); got != preflight.StatusPass {
		t.Errorf("workspace = %s, want pass (absent is created at bootstrap)", got)
	}
}

func TestCheckManifestPresent(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "requirements.txt"), []byte("cryptography\n"), 0644); err != nil {
		t.Fatal(err)
	}

	result := checkManifest(statIn(dir), "requirements.txt")

	if result.Status != preflight.StatusPass {
		t.Errorf("status = %s, want pass: %s", result.Status, result.Message)
	}
}

func TestCheckManifestMissing(t *testing.T) {
	result := checkManifest(statIn(t.TempDir()), "requirements.txt")

	if result.Status != preflight.StatusFail {
		t.Errorf("status = %s, want fail", result.Status)
	}
	if !strings.Contains(result.Message, "requirements.txt") {
		t.Errorf("message should name the manifest, got %q", result.Message)
	}
}

func TestCheckWorkspaceAbsentIsNotAFailure(t *testing.T) {
	result := checkWorkspace(statIn(t.TempDir()), "output")

	if result.Status != preflight.StatusPass {
		t.Errorf("status = %s, want pass (bootstrap creates it)", result.Status)
	}
	if !strings.Contains(result.Message, "created at bootstrap") {
		t.Errorf("message should explain the absence is fine, got %q", result.Message)
	}
}

func TestCheckWorkspacePresent(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "output"), 0755); err != nil {
		t.Fatal(err)
	}

	result := checkWorkspace(statIn(dir), "output")

	if result.Status != preflight.StatusPass {
		t.Errorf("status = %s, want pass", result.Status)
	}
}

func TestCheckWorkspaceBlockedByFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "output"), []byte("in the way"), 0644); err != nil {
		t.Fatal(err)
	}

	result := checkWorkspace(statIn(dir), "output")

	if result.Status != preflight.StatusFail {
		t.Errorf("status = %s, want fail when a file blocks the workspace path", result.Status)
	}
}
