/*
 * Copyright (c) 2023 The AIPG developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chaincfg

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Selector holds the active network. The active profile is replaced with
// one pointer swap, so a reader that calls Active once per operation sees
// either the old or the new profile, never a mix.
type Selector struct {
	registry *Registry
	active   atomic.Pointer[Params]
	log      zerolog.Logger
}

// NewSelector activates the profile registered under initial.
func NewSelector(registry *Registry, initial string, log zerolog.Logger) (*Selector, error) {
	p, err := registry.Lookup(initial)
	if err != nil {
		return nil, err
	}
	s := &Selector{registry: registry, log: log}
	s.active.Store(p)
	return s, nil
}

// Active returns the current profile. Take it once and keep the reference
// for the duration of an operation.
func (s *Selector) Active() *Params {
	return s.active.Load()
}

func (s *Selector) Registry() *Registry { return s.registry }

// SwitchTo makes p active. Switching to the already active profile is a
// no-op. p must be one of the registered instances.
func (s *Selector) SwitchTo(p *Params) error {
	if !s.registry.Contains(p) {
		name := ""
		if p != nil {
			name = p.Name()
		}
		return &UnknownProfileError{Name: name}
	}

	prev := s.active.Swap(p)
	if prev != p {
		s.log.Info().Str("from", prev.Name()).Str("to", p.Name()).Msg("active network switched")
	}
	return nil
}

// SwitchToName looks the profile up by name and makes it active.
func (s *Selector) SwitchToName(name string) error {
	p, err := s.registry.Lookup(name)
	if err != nil {
		return err
	}
	return s.SwitchTo(p)
}
