// Package configs provides embedded configuration files for bumped.
package configs

import _ "embed"

// DefaultConfigYAML is the scaffold written by `bumped init`, without tracked files.
//
//go:embed default.yaml
var DefaultConfigYAML []byte
