// Copyright 2026 The Clipboot Authors
// SPDX-License-Identifier: Apache-2.0

package workspace

import (
	"fmt"
	"os"
)

// Ensure creates the workspace directory, including any missing parent
// segments. Calling it on an existing directory is a no-op. A path
// that exists but is not a directory, or any other filesystem error
// (e.g., permission denied), is returned as an error.
func Ensure(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("creating workspace %s: %w", path, err)
	}
	return nil
}
