/*
 * Copyright (c) 2023 The AIPG developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chaincfg

import (
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSelector(t *testing.T) *Selector {
	registry, err := DefaultRegistry(testLoader())
	require.NoError(t, err)
	s, err := NewSelector(registry, MainNetName, zerolog.Nop())
	require.NoError(t, err)
	return s
}

func TestSelectorSwitch(t *testing.T) {
	s := newTestSelector(t)
	assert.Equal(t, byte(128), s.Active().PrivateKeyID())

	require.NoError(t, s.SwitchToName(TestNetName))
	active := s.Active()
	assert.Equal(t, TestNetName, active.Name())
	assert.Equal(t, byte(239), active.PrivateKeyID())
	assert.Equal(t, "tc", active.Bech32HRPSegwit())
	assert.Equal(t, uint32(1), active.HDCoinType())

	mainNet, err := s.Registry().Lookup(MainNetName)
	require.NoError(t, err)
	require.NoError(t, s.SwitchTo(mainNet))
	active = s.Active()
	assert.Equal(t, byte(128), active.PrivateKeyID())
	assert.Equal(t, "rc", active.Bech32HRPSegwit())
	assert.Equal(t, uint32(2686), active.HDCoinType())
}

func TestSelectorSwitchIsIdempotent(t *testing.T) {
	s := newTestSelector(t)
	before := s.Active()

	require.NoError(t, s.SwitchTo(before))
	require.NoError(t, s.SwitchToName(MainNetName))
	assert.Same(t, before, s.Active())
}

func TestSelectorUnknownProfile(t *testing.T) {
	s := newTestSelector(t)

	err := s.SwitchToName("regtest")
	var unknown *UnknownProfileError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "regtest", unknown.Name)
	assert.Equal(t, MainNetName, s.Active().Name())

	// a look-alike that was never registered is refused as well
	stray, err := NewParams(TestNetConfig(testLoader()))
	require.NoError(t, err)
	assert.True(t, errors.As(s.SwitchTo(stray), &unknown))
	assert.True(t, errors.As(s.SwitchTo(nil), &unknown))
	assert.Equal(t, MainNetName, s.Active().Name())

	_, err = NewSelector(s.Registry(), "regtest", zerolog.Nop())
	assert.True(t, errors.As(err, &unknown))
}

func TestRegistryRejectsDuplicateNames(t *testing.T) {
	a, err := NewParams(MainNetConfig(testLoader()))
	require.NoError(t, err)
	b, err := NewParams(MainNetConfig(testLoader()))
	require.NoError(t, err)

	_, err = NewRegistry(a, b)
	var cfgErr *ConfigInvariantError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestSelectorReadersNeverSeeMixedProfile(t *testing.T) {
	s := newTestSelector(t)
	registry := s.Registry()
	mainNet, _ := registry.Lookup(MainNetName)
	testNet, _ := registry.Lookup(TestNetName)

	var wg sync.WaitGroup
	stop := make(chan struct{})
	mixed := make(chan string, 1)

	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				p := s.Active()
				wif, hrp := p.PrivateKeyID(), p.Bech32HRPSegwit()
				if (wif == 128) != (hrp == "rc") {
					select {
					case mixed <- p.Name():
					default:
					}
					return
				}
			}
		}()
	}

	for i := 0; i < 1000; i++ {
		target := mainNet
		if i%2 == 0 {
			target = testNet
		}
		require.NoError(t, s.SwitchTo(target))
	}
	close(stop)
	wg.Wait()

	select {
	case name := <-mixed:
		t.Fatalf("reader observed mixed fields on %s", name)
	default:
	}
}
