// Copyright 2026 The Clipboot Authors
// SPDX-License-Identifier: Apache-2.0

package preflight

// Status is the outcome of a single preflight check.
type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
	StatusWarn Status = "warn"
	StatusSkip Status = "skip"
)

// Result holds the outcome of a single preflight check.
type Result struct {
	Name    string `json:"name"`
	Status  Status `json:"status"`
	Message string `json:"message"`
}

// Pass creates a passing check result.
func Pass(name, message string) Result {
	return Result{Name: name, Status: StatusPass, Message: message}
}

// Fail creates a failing check result.
func Fail(name, message string) Result {
	return Result{Name: name, Status: StatusFail, Message: message}
}

// Warn creates a warning check result. Warnings are advisory and never
// block the bootstrap sequence.
func Warn(name, message string) Result {
	return Result{Name: name, Status: StatusWarn, Message: message}
}

// Skip creates a skipped check result. Checks are skipped when a
// prerequisite check failed (e.g., the doctor's manifest and workspace
// checks skip when the project-root check failed, since their relative
// paths are meaningless outside the project root).
func Skip(name, message string) Result {
	return Result{Name: name, Status: StatusSkip, Message: message}
}
