// Package config loads the managed-path table: the built-in defaults
// compiled into the binary, optionally adjusted by a hyprkit.toml file
// at the repository root. The table itself is fixed; the override file
// can mark entries optional, drop entries, and disable wiring blocks,
// nothing more.
package config

import (
	"bytes"
	"os"
	"slices"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/hyprkit/hyprkit/pkg/errors"
	"github.com/hyprkit/hyprkit/pkg/logging"
	"github.com/hyprkit/hyprkit/pkg/types"
)

var log = logging.GetLogger("config")

// Config is the resolved managed-path table for one run.
type Config struct {
	Paths  []types.ManagedPath `toml:"paths"`
	Wiring WiringConfig        `toml:"wiring"`
}

// WiringConfig controls which marker blocks install maintains.
type WiringConfig struct {
	// Disabled lists wiring block names install must not touch.
	Disabled []string `toml:"disabled"`
}

// Override is the schema of hyprkit.toml at the repository root.
type Override struct {
	// Optional marks managed paths by name as optional: a missing
	// source is skipped instead of aborting the run.
	Optional []string `toml:"optional"`

	// Disable drops managed paths by name from the run entirely.
	Disable []string `toml:"disable"`

	Wiring WiringConfig `toml:"wiring"`
}

// BlockDisabled reports whether the named wiring block is disabled.
func (c *Config) BlockDisabled(name string) bool {
	return slices.Contains(c.Wiring.Disabled, name)
}

// Default returns the built-in managed-path table.
func Default() (*Config, error) {
	var cfg Config
	dec := toml.NewDecoder(bytes.NewReader(defaultConfig))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "built-in defaults are invalid")
	}
	return &cfg, nil
}

// Load returns the managed-path table, applying the override file at
// overridePath when it exists. Unknown keys in the override file are
// rejected so typos do not silently change behavior.
func Load(fs types.FS, overridePath string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	data, err := fs.ReadFile(overridePath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read %s", overridePath)
	}

	var ov Override
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&ov); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "cannot parse %s", overridePath)
	}

	if err := cfg.apply(ov); err != nil {
		return nil, err
	}
	log.Debug().Str("path", overridePath).Msg("applied repository config override")
	return cfg, nil
}

func (c *Config) apply(ov Override) error {
	for _, name := range append(append([]string{}, ov.Optional...), ov.Disable...) {
		if c.find(name) < 0 {
			return errors.Newf(errors.ErrConfigValid, "unknown managed path %q in override", name)
		}
	}

	for _, name := range ov.Optional {
		c.Paths[c.find(name)].Optional = true
	}

	if len(ov.Disable) > 0 {
		kept := c.Paths[:0]
		for _, mp := range c.Paths {
			if !slices.Contains(ov.Disable, mp.Name) {
				kept = append(kept, mp)
			}
		}
		c.Paths = kept
	}

	c.Wiring.Disabled = append(c.Wiring.Disabled, ov.Wiring.Disabled...)
	return nil
}

func (c *Config) find(name string) int {
	for i, mp := range c.Paths {
		if mp.Name == name {
			return i
		}
	}
	return -1
}
