// Copyright 2026 The Clipboot Authors
// SPDX-License-Identifier: Apache-2.0

// Package process provides binary entrypoint helpers for the clipboot
// binaries. It centralizes the two legitimate raw I/O patterns that
// exist outside the structured logger:
//
//   - Fatal error reporting to stderr when the logger may not be
//     initialized (pre-logger).
//   - Process exit after an unrecoverable error in main().
//
// It also defines the bootstrap exit codes. Each fatal precondition
// class has its own code so callers (shell wrappers, CI) can tell the
// failure modes apart without parsing output. On a successful launch
// the bootstrapper never chooses its own exit code — it exits with
// whatever status the target application returned.
package process
