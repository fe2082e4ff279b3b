// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2017 The Decred developers
// Copyright (c) 2023 The AIPG developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package config

import (
	"github.com/rs/zerolog"
	"gitlab.com/aipg/walletcore/corelog"
)

const (
	logUnitCFG  = "CFG"
	logUnitMTRC = "MTRC"
)

var logUnits = []string{logUnitCFG, logUnitMTRC}

func knownUnit(unit string) bool {
	for _, u := range logUnits {
		if u == unit {
			return true
		}
	}
	return false
}

// newUnitLoggers creates one logger per unit with the level configured for
// it. Units without an explicit level use the corelog config level.
func newUnitLoggers(cfg *Config) (map[string]zerolog.Logger, error) {
	levels, err := parseDebugLevels(cfg.DebugLevel)
	if err != nil {
		return nil, err
	}

	loggers := make(map[string]zerolog.Logger, len(logUnits))
	for _, unit := range logUnits {
		level := cfg.Log.ParseLevel()
		if name, ok := levels[unit]; ok {
			if parsed, err := zerolog.ParseLevel(name); err == nil {
				level = parsed
			}
		}
		loggers[unit] = corelog.New(unit, level, cfg.Log)
	}
	return loggers, nil
}
