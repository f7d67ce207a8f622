// Copyright 2026 The Clipboot Authors
// SPDX-License-Identifier: Apache-2.0

// Package launch transfers control to the Crypto Clipboard entry
// point. The two historical platform scripts collapse here into one
// pipeline parameterized by [Platform]: which entry script to run,
// which directory it resolves its resources from, and which
// interpreter names to probe. The variant is fixed at compile time by
// GOOS — unix builds launch the command-line entry (cli_main.py at the
// project root), windows builds launch the GUI entry (main.py in
// src/).
//
// The handoff is a blocking wait with inherited stdio: the argument
// vector is forwarded verbatim, the child's exit status becomes the
// bootstrapper's, and an interrupt during the wait is the target
// application's to handle (the parent ignores it so the child's exit
// status still propagates).
package launch
