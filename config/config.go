// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2023 The AIPG developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	"gitlab.com/aipg/walletcore/corelog"
	"gitlab.com/aipg/walletcore/types/chaincfg"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigFilename = "walletcore.yaml"
	defaultLogLevel       = "info"
)

// MetricsConfig toggles the prometheus collectors of the parameter registry.
type MetricsConfig struct {
	Enable bool `yaml:"enable" toml:"enable"`
}

// Config selects the active network and configures the ambient stack.
type Config struct {
	// Network is the name of the profile activated at startup.
	Network string `yaml:"network" toml:"network"`
	// DebugLevel is either one level for every unit or a list of
	// unit=level pairs, e.g. "CFG=debug,MTRC=warn".
	DebugLevel string         `yaml:"debug_level" toml:"debug_level"`
	Log        corelog.Config `yaml:"log" toml:"log"`
	Metrics    MetricsConfig  `yaml:"metrics" toml:"metrics"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Network:    chaincfg.DefaultNetName,
		DebugLevel: defaultLogLevel,
		Log:        corelog.Config{}.Default(),
	}
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Expand initial ~ to OS specific home directory.
	if strings.HasPrefix(path, "~") {
		if homeDir, err := os.UserHomeDir(); err == nil {
			path = strings.Replace(path, "~", homeDir, 1)
		}
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but they variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}

// LoadConfig reads a .yaml or .toml configuration file on top of the
// defaults and validates it. An empty path means walletcore.yaml in the
// working directory; a missing default file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = defaultConfigFilename
	}
	path = cleanAndExpandPath(path)

	cfgFile, err := os.Open(path)
	switch {
	case err == nil:
		defer cfgFile.Close()

		if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
			err = yaml.NewDecoder(cfgFile).Decode(&cfg)
		} else if strings.HasSuffix(path, ".toml") {
			err = toml.NewDecoder(cfgFile).Decode(&cfg)
		} else {
			return nil, errors.Errorf("invalid config file extension %q, must be .yaml or .toml", filepath.Ext(path))
		}
		if err != nil {
			return nil, errors.Wrapf(err, "unable to parse config file %s", path)
		}

	case os.IsNotExist(err) && !explicit:
	default:
		return nil, errors.Wrap(err, "unable to open config file")
	}

	if cfg.Log.Directory != "" {
		cfg.Log.Directory = cleanAndExpandPath(cfg.Log.Directory)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that can be checked without building the registry.
// The network name is resolved by Init against the registry.
func (cfg *Config) Validate() error {
	if cfg.Network == "" {
		cfg.Network = chaincfg.DefaultNetName
	}
	if cfg.DebugLevel == "" {
		cfg.DebugLevel = defaultLogLevel
	}
	if _, err := parseDebugLevels(cfg.DebugLevel); err != nil {
		return err
	}
	return nil
}

// validLogLevel returns whether or not logLevel is a valid debug log level.
func validLogLevel(logLevel string) bool {
	switch logLevel {
	case "trace", "debug", "info", "warn", "error":
		return true
	}
	return false
}

// supportedUnits returns a sorted slice of the logging units.
func supportedUnits() []string {
	units := make([]string, 0, len(logUnits))
	for _, unit := range logUnits {
		units = append(units, unit)
	}
	sort.Strings(units)
	return units
}

// parseDebugLevels turns a debug level specification into a per-unit level
// map. A bare level applies to every unit.
func parseDebugLevels(debugLevel string) (map[string]string, error) {
	levels := make(map[string]string, len(logUnits))

	// When the specified string doesn't have any delimiters, treat it as
	// the log level for all units.
	if !strings.Contains(debugLevel, ",") && !strings.Contains(debugLevel, "=") {
		if !validLogLevel(debugLevel) {
			return nil, fmt.Errorf("the specified debug level [%v] is invalid", debugLevel)
		}
		for _, unit := range logUnits {
			levels[unit] = debugLevel
		}
		return levels, nil
	}

	for _, pair := range strings.Split(debugLevel, ",") {
		fields := strings.Split(pair, "=")
		if len(fields) != 2 {
			return nil, fmt.Errorf("the specified debug level contains an invalid "+
				"unit/level pair [%v]", pair)
		}

		unit, level := fields[0], fields[1]
		if !knownUnit(unit) {
			return nil, fmt.Errorf("the specified unit [%v] is invalid -- "+
				"supported units %v", unit, supportedUnits())
		}
		if !validLogLevel(level) {
			return nil, fmt.Errorf("the specified debug level [%v] is invalid", level)
		}
		levels[unit] = level
	}
	return levels, nil
}
