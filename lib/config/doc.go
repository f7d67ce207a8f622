// Copyright 2026 The Clipboot Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration for the bootstrap pipeline.
//
// The bootstrapper works with zero configuration: the defaults
// describe the Crypto Clipboard project layout (cli_main.py marker at
// the project root, requirements.txt manifest, output/ workspace).
// An optional clipboot.yaml in the project root — or a file named by
// the CLIPBOOT_CONFIG environment variable — overrides individual
// fields. There is no other discovery and environment variables never
// override file values, so the effective configuration is always
// auditable from one file.
package config
