/*
 * Copyright (c) 2023 The AIPG developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chaincfg

import (
	"embed"
	"encoding/json"
	"io/fs"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Bundled resource names.
const (
	ResCheckpoints        = "checkpoints.json"
	ResCheckpointsDGW     = "checkpoints_dgw.json"
	ResCheckpointsDGWTest = "checkpoints_dgw_testnet.json"
	ResServers            = "servers.json"
	ResServersTest        = "servers_testnet.json"
	ResWalletFormats      = "bip39_wallet_formats.json"
)

//go:embed resources/*.json
var bundled embed.FS

// Resources returns the read-only resources shipped with the binary.
func Resources() fs.FS {
	sub, err := fs.Sub(bundled, "resources")
	if err != nil {
		// the directory is compiled in, Sub can't fail on it
		panic(err)
	}
	return sub
}

// LoadReporter is notified about every resource that degraded to empty.
type LoadReporter interface {
	ResourceLoadFailed(resource string, err error)
}

// Loader reads bundled resources once at startup. Failures never abort:
// the caller gets an empty value and the failure is logged and reported.
type Loader struct {
	FS       fs.FS
	Log      zerolog.Logger
	Reporter LoadReporter
}

func (l *Loader) fsys() fs.FS {
	if l.FS == nil {
		return Resources()
	}
	return l.FS
}

func (l *Loader) report(err *DataLoadError) {
	l.Log.Warn().Err(err.Err).Str("resource", err.Resource).
		Msg("resource unavailable, continuing with empty table")
	if l.Reporter != nil {
		l.Reporter.ResourceLoadFailed(err.Resource, err)
	}
}

// ServerPorts maps a protocol letter ("t" tcp, "s" ssl) to a port.
type ServerPorts map[string]string

// Servers reads the default server directory: host -> protocol -> port.
// The content is passed through untouched.
func (l *Loader) Servers(name string) map[string]ServerPorts {
	servers := map[string]ServerPorts{}
	if err := l.readJSON(name, &servers); err != nil {
		l.report(&DataLoadError{Resource: name, Err: err})
		return map[string]ServerPorts{}
	}
	return servers
}

// WalletFormat describes a derivation path offered when restoring from a
// BIP39 seed.
type WalletFormat struct {
	Description     string `json:"desc"`
	Derivation      string `json:"derivation"`
	ScriptType      string `json:"script_type"`
	IterateAccounts bool   `json:"iterate_accounts"`
}

// WalletFormats reads the supported mnemonic derivation formats. The list
// does not depend on the network.
func (l *Loader) WalletFormats(name string) []WalletFormat {
	var formats []WalletFormat
	if err := l.readJSON(name, &formats); err != nil {
		l.report(&DataLoadError{Resource: name, Err: err})
		return nil
	}
	return formats
}

func (l *Loader) readJSON(name string, v interface{}) error {
	data, err := fs.ReadFile(l.fsys(), name)
	if err != nil {
		return err
	}
	return errors.Wrap(json.Unmarshal(data, v), "malformed json")
}
