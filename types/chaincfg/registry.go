/*
 * Copyright (c) 2023 The AIPG developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chaincfg

import (
	"sort"

	"github.com/pkg/errors"
)

// Registry is the fixed set of known networks, keyed by name.
type Registry struct {
	byName map[string]*Params
}

// NewRegistry registers fully constructed profiles. Registering two
// profiles under one name is a configuration error.
func NewRegistry(profiles ...*Params) (*Registry, error) {
	r := &Registry{byName: make(map[string]*Params, len(profiles))}
	for _, p := range profiles {
		if p == nil {
			return nil, invariantErr("registry", "nil network profile")
		}
		if _, dup := r.byName[p.Name()]; dup {
			return nil, &ConfigInvariantError{Profile: p.Name(), Field: "name", Reason: "registered twice"}
		}
		r.byName[p.Name()] = p
	}
	return r, nil
}

// DefaultRegistry builds mainnet and testnet from the resources of l.
// Degraded resources only shrink the checkpoint tables; any invariant
// violation in the static data is returned.
func DefaultRegistry(l *Loader) (*Registry, error) {
	mainNet, err := NewParams(MainNetConfig(l))
	if err != nil {
		return nil, errors.Wrap(err, "unable to build mainnet params")
	}
	testNet, err := NewParams(TestNetConfig(l))
	if err != nil {
		return nil, errors.Wrap(err, "unable to build testnet params")
	}
	return NewRegistry(mainNet, testNet)
}

// Lookup returns the profile registered under name.
func (r *Registry) Lookup(name string) (*Params, error) {
	p, ok := r.byName[name]
	if !ok {
		return nil, &UnknownProfileError{Name: name}
	}
	return p, nil
}

// Contains reports whether p itself (not a look-alike) is registered.
func (r *Registry) Contains(p *Params) bool {
	return p != nil && r.byName[p.Name()] == p
}

// Names returns the registered network names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
