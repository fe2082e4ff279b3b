// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2023 The AIPG developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package config

import (
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"gitlab.com/aipg/walletcore/corelog"
	"gitlab.com/aipg/walletcore/node/metrics"
	"gitlab.com/aipg/walletcore/types/chaincfg"
)

// Runtime bundles what Init builds. Components created after startup
// should receive Selector (or one *chaincfg.Params) from here instead of
// calling ActiveNetParams.
type Runtime struct {
	Selector *chaincfg.Selector
	Metrics  *metrics.NetParamsMetrics
	Log      zerolog.Logger
	// WalletFormats are the mnemonic derivation formats offered on restore.
	WalletFormats []chaincfg.WalletFormat
}

// Init loads the bundled network profiles, activates cfg.Network and
// installs the selector behind ActiveNetParams. reg may be nil, in that
// case no metrics are collected.
func Init(cfg *Config, reg prometheus.Registerer) (*Runtime, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	loggers, err := newUnitLoggers(cfg)
	if err != nil {
		return nil, err
	}

	rt := &Runtime{Log: loggers[logUnitCFG]}
	loader := &chaincfg.Loader{Log: rt.Log}
	if cfg.Metrics.Enable && reg != nil {
		rt.Metrics = metrics.NetParams(reg, loggers[logUnitMTRC])
		loader.Reporter = rt.Metrics
	}

	registry, err := chaincfg.DefaultRegistry(loader)
	if err != nil {
		return nil, err
	}
	rt.Selector, err = chaincfg.NewSelector(registry, cfg.Network, rt.Log)
	if err != nil {
		return nil, err
	}
	rt.WalletFormats = loader.WalletFormats(chaincfg.ResWalletFormats)

	active := rt.Selector.Active()
	if rt.Metrics != nil {
		for _, name := range registry.Names() {
			p, _ := registry.Lookup(name)
			rt.Metrics.Read(p)
		}
	}
	rt.Log.Info().Str("network", active.Name()).
		Int32("maxCheckpoint", active.MaxCheckpoint()).
		Int32("maxLegacyCheckpoint", active.MaxLegacyCheckpoint()).
		Int("walletFormats", len(rt.WalletFormats)).
		Msg("network parameters loaded")

	activeSelector.Store(rt.Selector)
	return rt, nil
}

// activeSelector backs the process-wide accessors below. It is only for
// code that cannot be handed a selector at construction.
var (
	activeSelector atomic.Pointer[chaincfg.Selector]
	defaultOnce    sync.Once
)

func selector() *chaincfg.Selector {
	if s := activeSelector.Load(); s != nil {
		return s
	}
	defaultOnce.Do(func() {
		registry, err := chaincfg.DefaultRegistry(&chaincfg.Loader{Log: corelog.Disabled})
		if err != nil {
			// bundled static data is broken, nothing can run
			panic(err)
		}
		s, err := chaincfg.NewSelector(registry, chaincfg.DefaultNetName, corelog.Disabled)
		if err != nil {
			panic(err)
		}
		activeSelector.CompareAndSwap(nil, s)
	})
	return activeSelector.Load()
}

// ActiveNetParams returns the parameters of the currently active network.
// Callers must keep the returned pointer for the whole operation rather
// than calling this repeatedly.
func ActiveNetParams() *chaincfg.Params {
	return selector().Active()
}

// SetActiveNet switches the process-wide active network by name.
func SetActiveNet(name string) error {
	return errors.WithStack(selector().SwitchToName(name))
}
