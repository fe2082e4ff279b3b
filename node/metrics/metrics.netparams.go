package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"gitlab.com/aipg/walletcore/types/chaincfg"
)

// NetParamsMetrics exposes resource load failures and the checkpointed
// height of the active network.
type NetParamsMetrics struct {
	sync.Mutex
	loadFailures *prometheus.CounterVec
	gaugesByName map[string]prometheus.Gauge
	registerer   prometheus.Registerer
	logger       zerolog.Logger
}

// NetParams creates the collectors and registers the failure counter in reg.
// It also implements chaincfg.LoadReporter.
func NetParams(reg prometheus.Registerer, logger zerolog.Logger) *NetParamsMetrics {
	m := &NetParamsMetrics{
		loadFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "netparams",
			Name:      "resource_load_failures_total",
			Help:      "Bundled resources that degraded to an empty table.",
		}, []string{"resource"}),
		gaugesByName: make(map[string]prometheus.Gauge),
		registerer:   reg,
		logger:       logger,
	}
	if err := reg.Register(m.loadFailures); err != nil {
		logger.Error().Err(err).Msg("can't register metric")
	}
	return m
}

func (m *NetParamsMetrics) ResourceLoadFailed(resource string, _ error) {
	m.loadFailures.WithLabelValues(resource).Inc()
}

// Read publishes the checkpoint bounds of the given profile.
func (m *NetParamsMetrics) Read(p *chaincfg.Params) {
	m.updateGauge(prometheus.BuildFQName("netparams", p.Name(), "max_checkpoint"),
		"Height of the last checkpointed block.", float64(p.MaxCheckpoint()))
	m.updateGauge(prometheus.BuildFQName("netparams", p.Name(), "max_legacy_checkpoint"),
		"Height of the last block covered by a legacy checkpoint.", float64(p.MaxLegacyCheckpoint()))
	m.updateGauge(prometheus.BuildFQName("netparams", p.Name(), "dgw_checkpoints"),
		"Number of DGW checkpoints loaded.", float64(p.Checkpoints().DGWCount()))
}

func (m *NetParamsMetrics) updateGauge(name, help string, value float64) {
	m.Lock()
	defer m.Unlock()

	g, ok := m.gaugesByName[name]
	if !ok {
		g = prometheus.NewGauge(prometheus.GaugeOpts{
			Name: name,
			Help: help,
		})
		if err := m.registerer.Register(g); err != nil {
			m.logger.Error().Err(err).Str("metric", name).Msg("can't register metric")
		}
		m.gaugesByName[name] = g
	}
	g.Set(value)
}
