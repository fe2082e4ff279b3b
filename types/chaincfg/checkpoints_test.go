/*
 * Copyright (c) 2023 The AIPG developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chaincfg

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const zeroHash = "0000000000000000000000000000000000000000000000000000000000000000"

func fakeCheckpoints(n int) []Checkpoint {
	list := make([]Checkpoint, n)
	for i := range list {
		list[i] = Checkpoint{Hash: fmt.Sprintf("%064x", i+1)}
	}
	return list
}

// checkpointsJSON renders fakeCheckpoints(n) as a bare-hash resource.
func checkpointsJSON(n int) []byte {
	hashes := make([]string, n)
	for i, cp := range fakeCheckpoints(n) {
		hashes[i] = `"` + cp.Hash + `"`
	}
	return []byte("[" + strings.Join(hashes, ",") + "]")
}

type recordingReporter struct {
	failed []string
}

func (r *recordingReporter) ResourceLoadFailed(resource string, err error) {
	var loadErr *DataLoadError
	if errors.As(err, &loadErr) {
		r.failed = append(r.failed, resource)
	}
}

func TestCheckpointBounds(t *testing.T) {
	tests := []struct {
		name       string
		legacy     int
		dgw        int
		dgwStart   int32
		dgwSpacing int32
		maxLegacy  int32
		max        int32
	}{
		{name: "empty", maxLegacy: 0, max: 0},
		{name: "empty with spacing", dgwSpacing: 2016, maxLegacy: 0, max: 0},
		{name: "one legacy", legacy: 1, maxLegacy: 2015, max: 0},
		{name: "dgw from genesis", dgw: 3, dgwSpacing: 2016, max: 3*2016 - 1},
		{name: "dgw start without entries", dgwStart: 338688, dgwSpacing: 2016, max: 338687},
		{
			name:       "mainnet shape",
			legacy:     168,
			dgw:        5000,
			dgwStart:   168 * 2016,
			dgwSpacing: 2016,
			maxLegacy:  168*2016 - 1,
			max:        10418687,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cp, err := NewCheckpoints(fakeCheckpoints(tt.legacy), fakeCheckpoints(tt.dgw), tt.dgwStart, tt.dgwSpacing)
			require.NoError(t, err)

			assert.Equal(t, tt.legacy, cp.LegacyCount())
			assert.Equal(t, tt.dgw, cp.DGWCount())
			assert.Equal(t, tt.maxLegacy, cp.MaxLegacyHeight())
			assert.Equal(t, tt.max, cp.MaxHeight())
		})
	}
}

func TestCheckpointHeights(t *testing.T) {
	cp, err := NewCheckpoints(fakeCheckpoints(2), fakeCheckpoints(2), 2*2016, 2016)
	require.NoError(t, err)

	assert.Equal(t, int32(2015), cp.LegacyHeight(0))
	assert.Equal(t, cp.MaxLegacyHeight(), cp.LegacyHeight(cp.LegacyCount()-1))
	assert.Equal(t, int32(3*2016-1), cp.DGWHeight(0))
	assert.Equal(t, cp.MaxHeight(), cp.DGWHeight(cp.DGWCount()-1))

	first, ok := cp.DGW(0)
	require.True(t, ok)
	assert.Equal(t, fmt.Sprintf("%064x", 1), first.Hash)

	_, ok = cp.DGW(2)
	assert.False(t, ok)
	_, ok = cp.Legacy(-1)
	assert.False(t, ok)
}

func TestNewCheckpointsInvariants(t *testing.T) {
	var cfgErr *ConfigInvariantError

	_, err := NewCheckpoints(nil, nil, -1, 2016)
	assert.True(t, errors.As(err, &cfgErr), spew.Sdump(err))

	_, err = NewCheckpoints(nil, fakeCheckpoints(1), 0, 0)
	assert.True(t, errors.As(err, &cfgErr), spew.Sdump(err))

	// legacy era overlapping the dgw era
	_, err = NewCheckpoints(fakeCheckpoints(10), fakeCheckpoints(1), 2016, 2016)
	assert.True(t, errors.As(err, &cfgErr), spew.Sdump(err))

	// heights past the int32 range
	_, err = NewCheckpoints(nil, fakeCheckpoints(3), 0, 1<<30)
	require.True(t, errors.As(err, &cfgErr), spew.Sdump(err))
	assert.Equal(t, "dgw checkpoints", cfgErr.Field)

	_, err = NewCheckpoints(nil, fakeCheckpoints(1), math.MaxInt32-10, 2016)
	assert.True(t, errors.As(err, &cfgErr), spew.Sdump(err))

	cp, err := NewCheckpoints(nil, fakeCheckpoints(2), 0, 1<<30-1)
	require.NoError(t, err)
	assert.Equal(t, int32(math.MaxInt32-2), cp.MaxHeight())
}

func TestLoaderLegacyCheckpoints(t *testing.T) {
	fsys := fstest.MapFS{
		"legacy.json": {Data: checkpointsJSON(3)},
	}
	reporter := &recordingReporter{}
	loader := &Loader{FS: fsys, Log: zerolog.Nop(), Reporter: reporter}

	assert.Len(t, loader.LegacyCheckpoints("legacy.json", 1, 3*2016, 2016), 3)
	assert.Len(t, loader.LegacyCheckpoints("legacy.json", 0, 0, 2016), 3)
	assert.Empty(t, reporter.failed)

	assert.Empty(t, loader.LegacyCheckpoints("legacy.json", 1, 2*2016, 2016))
	assert.Empty(t, loader.LegacyCheckpoints("missing.json", 0, 0, 2016))
	assert.Equal(t, []string{"legacy.json", "missing.json"}, reporter.failed)
}

func TestLoaderCheckpoints(t *testing.T) {
	target := "26959535291011309493156476344723991336010898738574164086137773096960"
	fsys := fstest.MapFS{
		"pairs.json": {Data: []byte(fmt.Sprintf(`[["%s", %s], ["%s", 0]]`,
			strings.Repeat("ab", 32), target, zeroHash))},
		"bare.json":      {Data: []byte(fmt.Sprintf(`["%s"]`, strings.Repeat("cd", 32)))},
		"corrupt.json":   {Data: []byte(`[["abc", 1]`)},
		"bad-hash.json":  {Data: []byte(`[["zz", 1]]`)},
		"bad-shape.json": {Data: []byte(`[["` + zeroHash + `"]]`)},
		"negative.json":  {Data: []byte(`[["` + zeroHash + `", -5]]`)},
	}
	reporter := &recordingReporter{}
	loader := &Loader{FS: fsys, Log: zerolog.Nop(), Reporter: reporter}

	pairs := loader.Checkpoints("pairs.json")
	require.Len(t, pairs, 2)
	assert.Equal(t, strings.Repeat("ab", 32), pairs[0].Hash)
	assert.Equal(t, target, pairs[0].Target.String())
	assert.Equal(t, int64(0), pairs[1].Target.Int64())

	bare := loader.Checkpoints("bare.json")
	require.Len(t, bare, 1)
	assert.Nil(t, bare[0].Target)

	for _, name := range []string{"corrupt.json", "bad-hash.json", "bad-shape.json", "negative.json", "missing.json"} {
		assert.Empty(t, loader.Checkpoints(name), name)
	}
	assert.Equal(t,
		[]string{"corrupt.json", "bad-hash.json", "bad-shape.json", "negative.json", "missing.json"},
		reporter.failed)
}

func TestCheckpointTargetIsCopied(t *testing.T) {
	fsys := fstest.MapFS{
		"cp.json": {Data: []byte(`[["` + zeroHash + `", 42]]`)},
	}
	loader := &Loader{FS: fsys, Log: zerolog.Nop()}
	cp, err := NewCheckpoints(loader.Checkpoints("cp.json"), nil, 0, 2016)
	require.NoError(t, err)

	first, _ := cp.Legacy(0)
	first.Target.SetInt64(7)

	again, _ := cp.Legacy(0)
	assert.Equal(t, int64(42), again.Target.Int64())
}
