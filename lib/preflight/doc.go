// Copyright 2026 The Clipboot Authors
// SPDX-License-Identifier: Apache-2.0

// Package preflight implements the precondition checks that run before
// any mutating bootstrap stage: interpreter discovery, project-root
// verification, and the environment-isolation advisory.
//
// Checks never consult ambient process state directly. Everything they
// need from the host (PATH lookup, environment variables, file stat,
// interpreter version probing) is injected through an [Environment]
// value, so the checks are unit-testable with fake environments.
// [System] builds the Environment backed by the real host.
//
// Each check produces a [Result] with a pass/fail/warn status and a
// human-readable message. The two fatal checks (runtime, project root)
// are fatal by the caller's decision, not the check's — a result is
// just an observation.
package preflight
