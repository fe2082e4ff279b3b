/*
 * Copyright (c) 2023 The AIPG developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chaincfg

import (
	"encoding/binary"

	"github.com/btcsuite/btcutil/base58"
	"github.com/pkg/errors"
)

// Scheme identifies the script type an extended key derives addresses for.
type Scheme string

const (
	SchemeStandard   Scheme = "standard"
	SchemeP2WPKHP2SH Scheme = "p2wpkh-p2sh"
	SchemeP2WSHP2SH  Scheme = "p2wsh-p2sh"
	SchemeP2WPKH     Scheme = "p2wpkh"
	SchemeP2WSH      Scheme = "p2wsh"
)

// Schemes lists every known scheme in the order used for serialization.
var Schemes = []Scheme{SchemeStandard, SchemeP2WPKHP2SH, SchemeP2WSHP2SH, SchemeP2WPKH, SchemeP2WSH}

func (s Scheme) valid() bool {
	for _, known := range Schemes {
		if s == known {
			return true
		}
	}
	return false
}

// serializedKeyLen is the length of a BIP32 extended key without the
// base58 checksum: version(4) depth(1) fingerprint(4) child(4) chaincode(32) key(33).
const serializedKeyLen = 78

// HDVersionMap is a bijection between 4-byte extended key versions and
// derivation schemes.
type HDVersionMap struct {
	versions map[Scheme]uint32
	schemes  map[uint32]Scheme
}

// NewHDVersionMap builds the map and its inverse. Two schemes sharing one
// version would make their keys indistinguishable, so that is rejected
// instead of overwritten.
func NewHDVersionMap(versions map[Scheme]uint32) (*HDVersionMap, error) {
	m := &HDVersionMap{
		versions: make(map[Scheme]uint32, len(versions)),
		schemes:  make(map[uint32]Scheme, len(versions)),
	}

	// walk in a fixed order so the reported conflict is deterministic
	for _, scheme := range Schemes {
		version, ok := versions[scheme]
		if !ok {
			continue
		}
		if other, dup := m.schemes[version]; dup {
			return nil, invariantErr("hd key versions",
				"version 0x%08x is assigned to both %s and %s", version, other, scheme)
		}
		m.versions[scheme] = version
		m.schemes[version] = scheme
	}

	if len(m.versions) != len(versions) {
		for scheme := range versions {
			if !scheme.valid() {
				return nil, invariantErr("hd key versions", "unknown scheme %q", scheme)
			}
		}
	}

	return m, nil
}

// Version returns the version assigned to the scheme.
func (m *HDVersionMap) Version(s Scheme) (uint32, bool) {
	v, ok := m.versions[s]
	return v, ok
}

// VersionBytes returns the big-endian serialized form of Version.
func (m *HDVersionMap) VersionBytes(s Scheme) ([4]byte, bool) {
	var out [4]byte
	v, ok := m.versions[s]
	if !ok {
		return out, false
	}
	binary.BigEndian.PutUint32(out[:], v)
	return out, true
}

// Scheme is the inverse of Version.
func (m *HDVersionMap) Scheme(version uint32) (Scheme, bool) {
	s, ok := m.schemes[version]
	return s, ok
}

func (m *HDVersionMap) Len() int { return len(m.versions) }

// HDKeyIDs holds the private and public version maps of one network.
type HDKeyIDs struct {
	Private *HDVersionMap
	Public  *HDVersionMap
}

// NewHDKeyIDs validates both maps. Private and public maps are checked
// separately; the same integer may appear once in each.
func NewHDKeyIDs(private, public map[Scheme]uint32) (HDKeyIDs, error) {
	priv, err := NewHDVersionMap(private)
	if err != nil {
		return HDKeyIDs{}, errors.Wrap(err, "private")
	}
	pub, err := NewHDVersionMap(public)
	if err != nil {
		return HDKeyIDs{}, errors.Wrap(err, "public")
	}
	return HDKeyIDs{Private: priv, Public: pub}, nil
}

// SchemeForKey decodes a base58check serialized extended key (xprv, zpub,
// ...) and classifies it by its version prefix.
func (ids HDKeyIDs) SchemeForKey(encoded string) (scheme Scheme, private bool, err error) {
	// CheckDecode treats the first byte as a version; stitch it back on.
	payload, first, err := base58.CheckDecode(encoded)
	if err != nil {
		return "", false, errors.Wrap(err, "unable to decode extended key")
	}
	if len(payload)+1 != serializedKeyLen {
		return "", false, errors.Errorf("extended key has length %d, want %d",
			len(payload)+1, serializedKeyLen)
	}

	version := uint32(first)<<24 | uint32(payload[0])<<16 | uint32(payload[1])<<8 | uint32(payload[2])
	if s, ok := ids.Private.Scheme(version); ok {
		return s, true, nil
	}
	if s, ok := ids.Public.Scheme(version); ok {
		return s, false, nil
	}
	return "", false, ErrUnknownHDKeyID
}
