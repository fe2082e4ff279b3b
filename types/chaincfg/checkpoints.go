/*
 * Copyright (c) 2023 The AIPG developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chaincfg

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"io/fs"
	"math"
	"math/big"

	"github.com/pkg/errors"
)

// LegacyCheckpointInterval is the number of blocks covered by one legacy
// checkpoint (one pre-DGW retarget window).
const LegacyCheckpointInterval = 2016

// Checkpoint identifies the last header of a checkpointed window.
// Target is nil when the resource only lists hashes.
type Checkpoint struct {
	Hash   string
	Target *big.Int
}

func (cp Checkpoint) clone() Checkpoint {
	if cp.Target != nil {
		cp.Target = new(big.Int).Set(cp.Target)
	}
	return cp
}

// Checkpoints tracks the checkpointed region of the chain across the
// legacy era and the DGW era.
type Checkpoints struct {
	legacy     []Checkpoint
	dgw        []Checkpoint
	dgwStart   int32
	dgwSpacing int32
}

// NewCheckpoints validates the DGW schedule and copies both lists.
func NewCheckpoints(legacy, dgw []Checkpoint, dgwStart, dgwSpacing int32) (*Checkpoints, error) {
	if dgwStart < 0 {
		return nil, invariantErr("dgw checkpoints", "activation height %d is negative", dgwStart)
	}
	if dgwSpacing <= 0 && len(dgw) > 0 {
		return nil, invariantErr("dgw checkpoints", "spacing %d must be positive", dgwSpacing)
	}
	if end := int64(dgwStart) + int64(len(dgw))*int64(dgwSpacing); end > math.MaxInt32 {
		return nil, invariantErr("dgw checkpoints", "checkpointed region ends at %d, past the int32 height range", end)
	}
	if err := checkLegacySpan(len(legacy), len(dgw), dgwStart, dgwSpacing); err != nil {
		return nil, invariantErr("legacy checkpoints", "%v", err)
	}

	return &Checkpoints{
		legacy:     append([]Checkpoint(nil), legacy...),
		dgw:        append([]Checkpoint(nil), dgw...),
		dgwStart:   dgwStart,
		dgwSpacing: dgwSpacing,
	}, nil
}

// checkLegacySpan rejects a legacy era that runs into the first DGW window.
func checkLegacySpan(legacyCount, dgwCount int, dgwStart, dgwSpacing int32) error {
	maxLegacy := int64(legacyCount)*LegacyCheckpointInterval - 1
	if maxLegacy > math.MaxInt32 {
		return errors.Errorf("%d legacy checkpoints exceed the int32 height range", legacyCount)
	}
	if dgwCount > 0 && maxLegacy >= int64(dgwStart)+int64(dgwSpacing)-1 {
		return errors.Errorf("legacy checkpoints reach height %d, past the first dgw checkpoint", maxLegacy)
	}
	return nil
}

func legacyHeight(count int) int32 {
	return int32(count)*LegacyCheckpointInterval - 1
}

// LegacyCount is the number of legacy checkpoints.
func (c *Checkpoints) LegacyCount() int { return len(c.legacy) }

// DGWCount is the number of DGW checkpoints.
func (c *Checkpoints) DGWCount() int { return len(c.dgw) }

// DGWStart is the height at which DGW checkpoints take over.
func (c *Checkpoints) DGWStart() int32 { return c.dgwStart }

// DGWSpacing is the number of blocks covered by one DGW checkpoint.
func (c *Checkpoints) DGWSpacing() int32 { return c.dgwSpacing }

// Legacy returns the i-th legacy checkpoint.
func (c *Checkpoints) Legacy(i int) (Checkpoint, bool) {
	if i < 0 || i >= len(c.legacy) {
		return Checkpoint{}, false
	}
	return c.legacy[i].clone(), true
}

// DGW returns the i-th DGW checkpoint.
func (c *Checkpoints) DGW(i int) (Checkpoint, bool) {
	if i < 0 || i >= len(c.dgw) {
		return Checkpoint{}, false
	}
	return c.dgw[i].clone(), true
}

// LegacyHeight is the height of the last block covered by legacy checkpoint i.
func (c *Checkpoints) LegacyHeight(i int) int32 {
	return legacyHeight(i + 1)
}

// DGWHeight is the height of the last block covered by DGW checkpoint i.
func (c *Checkpoints) DGWHeight(i int) int32 {
	return c.dgwStart + int32(i+1)*c.dgwSpacing - 1
}

// MaxLegacyHeight is max(0, legacyCount*2016 - 1).
func (c *Checkpoints) MaxLegacyHeight() int32 {
	h := legacyHeight(len(c.legacy))
	if h < 0 {
		return 0
	}
	return h
}

// MaxHeight is max(0, dgwStart + dgwCount*dgwSpacing - 1).
func (c *Checkpoints) MaxHeight() int32 {
	h := c.dgwStart + int32(len(c.dgw))*c.dgwSpacing - 1
	if h < 0 {
		return 0
	}
	return h
}

// Checkpoints reads an Electrum-style checkpoint list. A missing or
// malformed resource yields an empty list; the DataLoadError is reported,
// never returned.
func (l *Loader) Checkpoints(name string) []Checkpoint {
	list, err := readCheckpoints(l.fsys(), name)
	if err != nil {
		l.report(&DataLoadError{Resource: name, Err: err})
		return nil
	}
	l.Log.Debug().Str("resource", name).Int("count", len(list)).Msg("checkpoints loaded")
	return list
}

// LegacyCheckpoints reads the legacy list of a network whose DGW era is
// already known. A list reaching into the first DGW window is treated like
// a malformed resource: reported, and replaced by an empty list.
func (l *Loader) LegacyCheckpoints(name string, dgwCount int, dgwStart, dgwSpacing int32) []Checkpoint {
	list := l.Checkpoints(name)
	if err := checkLegacySpan(len(list), dgwCount, dgwStart, dgwSpacing); err != nil {
		l.report(&DataLoadError{Resource: name, Err: err})
		return nil
	}
	return list
}

func readCheckpoints(fsys fs.FS, name string) ([]Checkpoint, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "checkpoint list is not a json array")
	}

	list := make([]Checkpoint, 0, len(raw))
	for i, entry := range raw {
		cp, err := parseCheckpoint(entry)
		if err != nil {
			return nil, errors.Wrapf(err, "entry %d", i)
		}
		list = append(list, cp)
	}
	return list, nil
}

// parseCheckpoint accepts either ["<hash>", <target>] or a bare "<hash>".
func parseCheckpoint(entry json.RawMessage) (Checkpoint, error) {
	var hash string
	if err := json.Unmarshal(entry, &hash); err == nil {
		return Checkpoint{Hash: hash}, validateHashHex(hash)
	}

	var pair []json.RawMessage
	if err := json.Unmarshal(entry, &pair); err != nil || len(pair) != 2 {
		return Checkpoint{}, errors.New("checkpoint must be a hash or a [hash, target] pair")
	}
	if err := json.Unmarshal(pair[0], &hash); err != nil {
		return Checkpoint{}, errors.Wrap(err, "checkpoint hash")
	}
	if err := validateHashHex(hash); err != nil {
		return Checkpoint{}, err
	}

	// targets exceed 64 bits, keep the literal digits
	dec := json.NewDecoder(bytes.NewReader(pair[1]))
	dec.UseNumber()
	var num json.Number
	if err := dec.Decode(&num); err != nil {
		return Checkpoint{}, errors.Wrap(err, "checkpoint target")
	}
	target, ok := new(big.Int).SetString(num.String(), 10)
	if !ok || target.Sign() < 0 {
		return Checkpoint{}, errors.Errorf("checkpoint target %q is not a non-negative integer", num)
	}
	return Checkpoint{Hash: hash, Target: target}, nil
}

func validateHashHex(h string) error {
	if len(h) != 64 {
		return errors.Errorf("hash %q must be 64 hex digits", h)
	}
	_, err := hex.DecodeString(h)
	return errors.Wrapf(err, "hash %q", h)
}
