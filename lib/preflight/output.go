// Copyright 2026 The Clipboot Authors
// SPDX-License-Identifier: Apache-2.0

package preflight

import (
	"fmt"
	"io"
	"strings"

	"github.com/crypto-clipboard/clipboot/lib/process"
)

// PrintResult prints one check result as a checklist line.
func PrintResult(w io.Writer, result Result) {
	prefix := strings.ToUpper(string(result.Status))
	fmt.Fprintf(w, "[%-5s]  %-14s  %s\n", prefix, result.Name, result.Message)
}

// PrintChecklist prints check results as a human-readable checklist
// followed by a one-line summary. Returns an ExitError with code 1
// when any check failed; warnings do not affect the exit status.
func PrintChecklist(w io.Writer, results []Result) error {
	anyFailed := false
	for _, result := range results {
		PrintResult(w, result)
		if result.Status == StatusFail {
			anyFailed = true
		}
	}

	fmt.Fprintln(w)
	if anyFailed {
		fmt.Fprintln(w, "Some checks failed.")
		return &process.ExitError{Code: 1}
	}
	fmt.Fprintln(w, "All checks passed.")
	return nil
}

// JSONOutput is the machine-readable output structure for
// clipboot-doctor --json.
type JSONOutput struct {
	Checks []Result `json:"checks"`
	OK     bool     `json:"ok"`
}

// BuildJSON builds the JSON output struct from check results.
func BuildJSON(results []Result) JSONOutput {
	for _, result := range results {
		if result.Status == StatusFail {
			return JSONOutput{Checks: results, OK: false}
		}
	}
	return JSONOutput{Checks: results, OK: true}
}
