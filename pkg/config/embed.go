package config

import (
	_ "embed"
)

// defaultConfig is the built-in managed-path table, compiled into the
// binary so a bare repository checkout works without any configuration.
//
//go:embed defaults.toml
var defaultConfig []byte
