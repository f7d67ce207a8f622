// Copyright 2026 The Clipboot Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !windows

package launch

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/crypto-clipboard/clipboot/lib/process"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// writeScript writes an entry script into dir and returns a Spec
// launching it with /bin/sh standing in for the interpreter.
func writeScript(t *testing.T, dir, body string, args ...string) Spec {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "entry.sh"), []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return Spec{
		Interpreter: "/bin/sh",
		Entry:       Entry{Script: "entry.sh", Dir: dir},
		Args:        args,
		Logger:      quietLogger(),
	}
}

func TestRunPropagatesZeroExit(t *testing.T) {
	spec := writeScript(t, t.TempDir(), "exit 0\n")

	if err := Run(context.Background(), spec); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestRunPropagatesNonZeroExit(t *testing.T) {
	spec := writeScript(t, t.TempDir(), "exit 7\n")

	err := Run(context.Background(), spec)

	var exitErr *process.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected ExitError, got %v", err)
	}
	if exitErr.Code != 7 {
		t.Errorf("exit code = %d, want 7", exitErr.Code)
	}
}

func TestRunForwardsArgumentsVerbatim(t *testing.T) {
	dir := t.TempDir()
	// The script records its argv and cwd; the bootstrapper must
	// forward arguments unmodified and run the entry from its own
	// directory.
	spec := writeScript(t, dir, "printf '%s\\n' \"$@\" > argv.txt; pwd > cwd.txt\n",
		"--verbose", "foo")

	if err := Run(context.Background(), spec); err != nil {
		t.Fatalf("Run: %v", err)
	}

	argv, err := os.ReadFile(filepath.Join(dir, "argv.txt"))
	if err != nil {
		t.Fatalf("reading recorded argv: %v", err)
	}
	if got, want := string(argv), "--verbose\nfoo\n"; got != want {
		t.Errorf("forwarded argv = %q, want %q", got, want)
	}

	cwd, err := os.ReadFile(filepath.Join(dir, "cwd.txt"))
	if err != nil {
		t.Fatalf("reading recorded cwd: %v", err)
	}
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(string(cwd)); got != resolved {
		t.Errorf("child cwd = %q, want %q", got, resolved)
	}
}

func TestRunZeroArgumentsForwardedAsZero(t *testing.T) {
	dir := t.TempDir()
	spec := writeScript(t, dir, "echo $# > count.txt\n")

	if err := Run(context.Background(), spec); err != nil {
		t.Fatalf("Run: %v", err)
	}

	count, err := os.ReadFile(filepath.Join(dir, "count.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(string(count)); got != "0" {
		t.Errorf("child argc = %s, want 0", got)
	}
}

func TestRunMissingInterpreter(t *testing.T) {
	spec := Spec{
		Interpreter: filepath.Join(t.TempDir(), "no-such-python"),
		Entry:       Entry{Script: "cli_main.py", Dir: "."},
		Logger:      quietLogger(),
	}

	err := Run(context.Background(), spec)
	if err == nil {
		t.Fatal("expected error for missing interpreter")
	}
	var exitErr *process.ExitError
	if errors.As(err, &exitErr) {
		t.Errorf("missing interpreter should not masquerade as a child exit, got %v", err)
	}
}

func TestRunNonExecutableInterpreter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "python3")
	if err := os.WriteFile(path, []byte("not a binary"), 0644); err != nil {
		t.Fatal(err)
	}

	spec := Spec{
		Interpreter: path,
		Entry:       Entry{Script: "cli_main.py", Dir: "."},
		Logger:      quietLogger(),
	}

	if err := Run(context.Background(), spec); err == nil {
		t.Fatal("expected error for non-executable interpreter")
	}
}

func TestDefaultPlatformIsCommandLineEntry(t *testing.T) {
	platform := Default()

	if platform.Entry.Script != "cli_main.py" {
		t.Errorf("entry script = %q, want cli_main.py", platform.Entry.Script)
	}
	if platform.Entry.Dir != "." {
		t.Errorf("entry dir = %q, want .", platform.Entry.Dir)
	}
	if len(platform.Interpreters) == 0 || platform.Interpreters[0] != "python3" {
		t.Errorf("interpreters = %v, want python3 first", platform.Interpreters)
	}
}
