// Copyright 2026 The Clipboot Authors
// SPDX-License-Identifier: Apache-2.0

package provision

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/crypto-clipboard/clipboot/lib/codec"
)

// stamp records a successful install: which manifest content (by
// BLAKE3 hash) was installed with which interpreter, and when.
type stamp struct {
	ManifestHash []byte    `cbor:"manifest_hash"`
	Interpreter  string    `cbor:"interpreter"`
	InstalledAt  time.Time `cbor:"installed_at"`
}

// matches reports whether the stamp covers the given manifest hash and
// interpreter. A different interpreter means a different site-packages,
// so the stamp does not apply.
func (s *stamp) matches(manifestHash []byte, interpreter string) bool {
	return bytes.Equal(s.ManifestHash, manifestHash) && s.Interpreter == interpreter
}

// readStamp reads and decodes the stamp file.
func readStamp(path string) (*stamp, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var record stamp
	if err := codec.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("decoding stamp: %w", err)
	}
	return &record, nil
}

// writeStamp writes the stamp atomically (temp file + rename) so a
// crash mid-write never leaves a partial stamp behind. The stamp lives
// inside the workspace, which is not prepared until the stage after
// provisioning, so the parent directory is created here when missing.
func writeStamp(path string, record stamp) error {
	data, err := codec.Marshal(record)
	if err != nil {
		return fmt.Errorf("encoding stamp: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating stamp directory: %w", err)
		}
	}

	temporaryPath := path + ".tmp"
	if err := os.WriteFile(temporaryPath, data, 0644); err != nil {
		return fmt.Errorf("writing temporary stamp: %w", err)
	}
	if err := os.Rename(temporaryPath, path); err != nil {
		os.Remove(temporaryPath)
		return fmt.Errorf("renaming stamp into place: %w", err)
	}
	return nil
}
