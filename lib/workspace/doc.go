// Copyright 2026 The Clipboot Authors
// SPDX-License-Identifier: Apache-2.0

// Package workspace prepares the writable output directory the target
// application expects to exist at runtime. Preparation is idempotent:
// an existing directory is left untouched, and the bootstrapper never
// deletes it.
package workspace
