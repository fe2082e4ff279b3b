/*
 * Copyright (c) 2023 The AIPG developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chaincfg

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/pkg/errors"
)

// ForkSchedule holds the activation points of the consensus upgrades the
// header verifier has to know about.
type ForkSchedule struct {
	X16Rv2ActivationTime   int64
	KawpowActivationTime   int64
	KawpowActivationHeight int32
	DGWActivationHeight    int32
}

// ParamsConfig is the complete data set of one network. A new network is
// added by filling one of these in, never by special-casing behaviour.
type ParamsConfig struct {
	Name      string
	IsTestNet bool

	// Address encoding magics
	PrivateKeyID        byte
	PubKeyHashAddrID    byte
	ScriptHashAddrID    byte
	ScriptHashAddrIDAlt byte
	Bech32HRPSegwit     string

	// Genesis is the block hash in display (reversed) byte order.
	Genesis string

	HDCoinType         uint32
	HDPrivateKeyIDs    map[Scheme]uint32
	HDPublicKeyIDs     map[Scheme]uint32
	AssetPrefix        []byte
	CoinbaseMaturity   int32
	Forks              ForkSchedule
	DefaultPorts       ServerPorts
	DefaultServers     map[string]ServerPorts
	MessageChannels    []string
	ShortName          string
	LongName           string
	MultisigAssets     bool
	LNRealmByte        byte
	LegacyCheckpoints  []Checkpoint
	DGWCheckpoints     []Checkpoint
	DGWCheckpointStart int32
	DGWCheckpointSpace int32
	BurnAmounts        BurnAmounts
	BurnAddresses      BurnAddresses
}

// Params is an immutable network profile. It can only be obtained from
// NewParams, which enforces every invariant of the data set.
type Params struct {
	cfg         ParamsConfig
	genesis     chainhash.Hash
	checkpoints *Checkpoints
	hdKeyIDs    HDKeyIDs
	burn        *BurnTable
}

// NewParams validates cfg and builds a profile from it. Any error is a
// ConfigInvariantError carrying the profile name.
func NewParams(cfg ParamsConfig) (*Params, error) {
	if cfg.Name == "" {
		return nil, invariantErr("name", "network name is empty")
	}

	genesis, err := parseGenesis(cfg.Genesis)
	if err != nil {
		return nil, withProfile(cfg.Name, err)
	}

	checkpoints, err := NewCheckpoints(cfg.LegacyCheckpoints, cfg.DGWCheckpoints,
		cfg.DGWCheckpointStart, cfg.DGWCheckpointSpace)
	if err != nil {
		return nil, withProfile(cfg.Name, err)
	}

	hdKeyIDs, err := NewHDKeyIDs(cfg.HDPrivateKeyIDs, cfg.HDPublicKeyIDs)
	if err != nil {
		return nil, withProfile(cfg.Name, err)
	}

	burn, err := NewBurnTable(cfg.BurnAmounts, cfg.BurnAddresses)
	if err != nil {
		return nil, withProfile(cfg.Name, err)
	}

	// detach every slice and map from the caller
	cfg.AssetPrefix = append([]byte(nil), cfg.AssetPrefix...)
	cfg.MessageChannels = append([]string(nil), cfg.MessageChannels...)
	cfg.DefaultPorts = copyPorts(cfg.DefaultPorts)
	cfg.DefaultServers = copyServers(cfg.DefaultServers)
	cfg.LegacyCheckpoints, cfg.DGWCheckpoints = nil, nil
	cfg.HDPrivateKeyIDs, cfg.HDPublicKeyIDs = nil, nil

	return &Params{
		cfg:         cfg,
		genesis:     genesis,
		checkpoints: checkpoints,
		hdKeyIDs:    hdKeyIDs,
		burn:        burn,
	}, nil
}

func parseGenesis(s string) (chainhash.Hash, error) {
	if len(s) != chainhash.MaxHashStringSize {
		return chainhash.Hash{}, invariantErr("genesis",
			"%q must be %d hex digits", s, chainhash.MaxHashStringSize)
	}
	if _, err := hex.DecodeString(s); err != nil {
		return chainhash.Hash{}, invariantErr("genesis", "%q is not hex: %v", s, err)
	}
	h, err := chainhash.NewHashFromStr(s)
	if err != nil {
		return chainhash.Hash{}, invariantErr("genesis", "%v", err)
	}
	return *h, nil
}

// Name is the registry key of the network.
func (p *Params) Name() string { return p.cfg.Name }

// IsTestNet reports whether the network is a test network.
func (p *Params) IsTestNet() bool { return p.cfg.IsTestNet }

// PrivateKeyID is the WIF prefix byte.
func (p *Params) PrivateKeyID() byte { return p.cfg.PrivateKeyID }

// PubKeyHashAddrID is the version byte of pay-to-pubkey-hash addresses.
func (p *Params) PubKeyHashAddrID() byte { return p.cfg.PubKeyHashAddrID }

// ScriptHashAddrID is the version byte of pay-to-script-hash addresses.
func (p *Params) ScriptHashAddrID() byte { return p.cfg.ScriptHashAddrID }

// ScriptHashAddrIDAlt is the alternative P2SH version byte.
func (p *Params) ScriptHashAddrIDAlt() byte { return p.cfg.ScriptHashAddrIDAlt }

// Bech32HRPSegwit is the human readable part of segwit addresses.
func (p *Params) Bech32HRPSegwit() string { return p.cfg.Bech32HRPSegwit }

// Bolt11HRP is the invoice prefix, the same as the segwit one.
func (p *Params) Bolt11HRP() string { return p.cfg.Bech32HRPSegwit }

// Genesis is the genesis block hash in display order.
func (p *Params) Genesis() string { return p.cfg.Genesis }

// HDCoinType is the BIP44 coin type.
func (p *Params) HDCoinType() uint32 { return p.cfg.HDCoinType }

func (p *Params) CoinbaseMaturity() int32 { return p.cfg.CoinbaseMaturity }
func (p *Params) Forks() ForkSchedule     { return p.cfg.Forks }
func (p *Params) ShortName() string       { return p.cfg.ShortName }
func (p *Params) LongName() string        { return p.cfg.LongName }
func (p *Params) MultisigAssets() bool    { return p.cfg.MultisigAssets }
func (p *Params) LNRealmByte() byte       { return p.cfg.LNRealmByte }

// Checkpoints returns the checkpoint table owned by the profile.
func (p *Params) Checkpoints() *Checkpoints { return p.checkpoints }

// HDKeyIDs returns the extended key version maps.
func (p *Params) HDKeyIDs() HDKeyIDs { return p.hdKeyIDs }

// Burn returns the asset burn table.
func (p *Params) Burn() *BurnTable { return p.burn }

// AssetPrefix returns a copy of the asset script marker.
func (p *Params) AssetPrefix() []byte { return append([]byte(nil), p.cfg.AssetPrefix...) }

// MessageChannels returns a copy of the default message channels.
func (p *Params) MessageChannels() []string {
	return append([]string(nil), p.cfg.MessageChannels...)
}

// DefaultPorts returns a copy of the protocol -> port map.
func (p *Params) DefaultPorts() ServerPorts { return copyPorts(p.cfg.DefaultPorts) }

// DefaultServers is the opaque host -> protocol -> port directory.
func (p *Params) DefaultServers() map[string]ServerPorts {
	return copyServers(p.cfg.DefaultServers)
}

// GenesisHash returns the genesis block hash in wire byte order.
func (p *Params) GenesisHash() *chainhash.Hash {
	h := p.genesis
	return &h
}

// GenesisHashBytes decodes the display-order genesis hex and reverses it
// into wire order.
func (p *Params) GenesisHashBytes() ([]byte, error) {
	return reverseHex(p.cfg.Genesis)
}

func reverseHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(err, "unable to decode genesis hash")
	}
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return b, nil
}

// MaxLegacyCheckpoint is max(0, legacyCount*2016 - 1).
func (p *Params) MaxLegacyCheckpoint() int32 {
	return p.checkpoints.MaxLegacyHeight()
}

// MaxCheckpoint is max(0, dgwStart + dgwCount*dgwSpacing - 1).
func (p *Params) MaxCheckpoint() int32 {
	return p.checkpoints.MaxHeight()
}

// IsCheckpointed reports whether a header at height lies inside the
// checkpointed region, where the verifier may not hold the header yet.
func (p *Params) IsCheckpointed(height int32) bool {
	return height < p.MaxCheckpoint()
}

func copyPorts(in ServerPorts) ServerPorts {
	out := make(ServerPorts, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func copyServers(in map[string]ServerPorts) map[string]ServerPorts {
	out := make(map[string]ServerPorts, len(in))
	for host, ports := range in {
		out[host] = copyPorts(ports)
	}
	return out
}
