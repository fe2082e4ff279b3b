package metrics

import (
	"testing"
	"testing/fstest"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/aipg/walletcore/types/chaincfg"
)

func TestLoadFailuresAreCounted(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NetParams(reg, zerolog.Nop())

	loader := &chaincfg.Loader{
		FS: fstest.MapFS{
			chaincfg.ResCheckpoints: {Data: []byte("{broken")},
		},
		Log:      zerolog.Nop(),
		Reporter: m,
	}

	assert.Empty(t, loader.Checkpoints(chaincfg.ResCheckpoints))
	assert.Empty(t, loader.Checkpoints(chaincfg.ResCheckpointsDGW))
	assert.Empty(t, loader.Checkpoints(chaincfg.ResCheckpointsDGW))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.loadFailures.WithLabelValues(chaincfg.ResCheckpoints)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.loadFailures.WithLabelValues(chaincfg.ResCheckpointsDGW)))
}

func TestReadPublishesCheckpointBounds(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NetParams(reg, zerolog.Nop())

	registry, err := chaincfg.DefaultRegistry(&chaincfg.Loader{Log: zerolog.Nop(), Reporter: m})
	require.NoError(t, err)
	mainNet, err := registry.Lookup(chaincfg.MainNetName)
	require.NoError(t, err)

	m.Read(mainNet)
	m.Read(mainNet)

	name := prometheus.BuildFQName("netparams", chaincfg.MainNetName, "max_checkpoint")
	require.Contains(t, m.gaugesByName, name)
	assert.Equal(t, float64(mainNet.MaxCheckpoint()), testutil.ToFloat64(m.gaugesByName[name]))
	assert.Len(t, m.gaugesByName, 3)

	families, err := reg.Gather()
	require.NoError(t, err)
	help := map[string]string{}
	for _, mf := range families {
		help[mf.GetName()] = mf.GetHelp()
	}
	assert.Equal(t, "Number of DGW checkpoints loaded.",
		help[prometheus.BuildFQName("netparams", chaincfg.MainNetName, "dgw_checkpoints")])
	assert.Equal(t, "Height of the last checkpointed block.", help[name])
}
