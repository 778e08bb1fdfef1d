// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package app

// Output format constants
const (
	// FormatJSON is the JSON output format
	FormatJSON = "json"
	// FormatText is the text output format
	FormatText = "text"
	// FormatYAML is the YAML output format
	FormatYAML = "yaml"
	// FormatTOML is the TOML output format
	FormatTOML = "toml"
)
