package model

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsNamespace = "lvlearn"
	metricsSubsystem = "model"

	updateKindSingle = "single"
	updateKindBatch  = "batch"
)

// metrics is the per-model collector set, labelled with the model ID.
type metrics struct {
	updates     *prometheus.CounterVec
	truncations prometheus.Counter
	pruned      prometheus.Counter
	active      prometheus.Gauge
	epoch       prometheus.Gauge

	reg prometheus.Registerer
}

func newMetrics(modelID string, reg prometheus.Registerer) (*metrics, error) {
	labels := prometheus.Labels{"model_id": modelID}
	m := &metrics{
		updates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   metricsNamespace,
			Subsystem:   metricsSubsystem,
			Name:        "updates_total",
			Help:        "Number of update calls applied, by kind (single, batch).",
			ConstLabels: labels,
		}, []string{"kind"}),
		truncations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   metricsNamespace,
			Subsystem:   metricsSubsystem,
			Name:        "truncations_total",
			Help:        "Number of truncated-gradient passes applied.",
			ConstLabels: labels,
		}),
		pruned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   metricsNamespace,
			Subsystem:   metricsSubsystem,
			Name:        "pruned_parameters_total",
			Help:        "Number of parameters removed by truncation or thresholding.",
			ConstLabels: labels,
		}),
		active: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   metricsNamespace,
			Subsystem:   metricsSubsystem,
			Name:        "active_parameters",
			Help:        "Number of present parameter coordinates.",
			ConstLabels: labels,
		}),
		epoch: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   metricsNamespace,
			Subsystem:   metricsSubsystem,
			Name:        "epoch",
			Help:        "Current epoch (single-instance updates applied).",
			ConstLabels: labels,
		}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range m.collectors() {
		if err := reg.Register(c); err != nil {
			m.unregisterFrom(reg)

			return nil, fmt.Errorf("model: register metrics: %w", err)
		}
	}
	m.reg = reg

	return m, nil
}

func (m *metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{m.updates, m.truncations, m.pruned, m.active, m.epoch}
}

// unregister removes the collectors from the registerer they were added to.
func (m *metrics) unregister() {
	if m.reg == nil {
		return
	}
	m.unregisterFrom(m.reg)
	m.reg = nil
}

func (m *metrics) unregisterFrom(reg prometheus.Registerer) {
	for _, c := range m.collectors() {
		reg.Unregister(c)
	}
}

func (m *metrics) observe(kind string, active int, epoch int64) {
	m.updates.WithLabelValues(kind).Inc()
	m.active.Set(float64(active))
	m.epoch.Set(float64(epoch))
}

func (m *metrics) observePruned(n, active int) {
	m.pruned.Add(float64(n))
	m.active.Set(float64(active))
}
