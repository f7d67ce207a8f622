// Copyright 2026 The Clipboot Authors
// SPDX-License-Identifier: Apache-2.0

// Package provision installs the target application's declared
// dependencies from its manifest (requirements.txt) using the
// discovered interpreter's pip module.
//
// The stage is deliberately forgiving: a missing manifest is the only
// fatal condition. Installer failures (individual packages, network,
// permissions) are downgraded to a single warning because the
// environment may already be satisfied from a prior run, and failing
// here would block an otherwise-runnable application.
//
// A stamp file inside the workspace records the BLAKE3 hash of the
// manifest after each successful install, so unchanged manifests skip
// the installer entirely on repeat runs. The stamp is advisory — any
// problem reading or writing it simply means the installer runs again.
package provision
