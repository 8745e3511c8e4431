package api

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/matzehuels/hullviz/pkg/observability"
)

// Layout outcome labels for hullviz_layouts_total.
const (
	statusComputed = "computed"
	statusCached   = "cached"
	statusInvalid  = "invalid"
	statusError    = "error"
)

// Metrics holds the server's Prometheus collectors. It also implements the
// observability hooks so pipeline and cache events land in the same
// registry.
type Metrics struct {
	registry *prometheus.Registry

	LayoutsTotal   *prometheus.CounterVec
	LayoutDuration prometheus.Histogram
	LayoutEdges    prometheus.Histogram
	CacheEvents    *prometheus.CounterVec
	RequestsTotal  *prometheus.CounterVec
}

// NewMetrics registers every collector on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{registry: reg}

	m.LayoutsTotal = promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "hullviz_layouts_total",
			Help: "Layout requests by outcome",
		},
		[]string{"status"},
	)

	m.LayoutDuration = promauto.With(reg).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "hullviz_layout_duration_seconds",
			Help:    "Time spent in the layout engine",
			Buckets: []float64{.0005, .001, .005, .01, .05, .1, .5, 1, 5},
		},
	)

	m.LayoutEdges = promauto.With(reg).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "hullviz_layout_edges",
			Help:    "Edge count of laid out hypergraphs",
			Buckets: prometheus.ExponentialBuckets(1, 4, 9),
		},
	)

	m.CacheEvents = promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "hullviz_cache_events_total",
			Help: "Cache lookups and writes by key type and event",
		},
		[]string{"key_type", "event"},
	)

	m.RequestsTotal = promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "hullviz_http_requests_total",
			Help: "HTTP requests by route and status code",
		},
		[]string{"method", "route", "code"},
	)

	return m
}

// Registry returns the registry backing /metrics.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// RecordLayout counts one layout request.
func (m *Metrics) RecordLayout(status string, edges int) {
	m.LayoutsTotal.WithLabelValues(status).Inc()
	if status == statusComputed || status == statusCached {
		m.LayoutEdges.Observe(float64(edges))
	}
}

// OnLayoutStart implements observability.PipelineHooks.
func (m *Metrics) OnLayoutStart(context.Context, int, int) {}

// OnLayoutComplete implements observability.PipelineHooks.
func (m *Metrics) OnLayoutComplete(_ context.Context, _ int, d time.Duration, err error) {
	if err == nil {
		m.LayoutDuration.Observe(d.Seconds())
	}
}

// OnCacheHit implements observability.CacheHooks.
func (m *Metrics) OnCacheHit(_ context.Context, keyType string) {
	m.CacheEvents.WithLabelValues(keyType, "hit").Inc()
}

// OnCacheMiss implements observability.CacheHooks.
func (m *Metrics) OnCacheMiss(_ context.Context, keyType string) {
	m.CacheEvents.WithLabelValues(keyType, "miss").Inc()
}

// OnCacheSet implements observability.CacheHooks.
func (m *Metrics) OnCacheSet(_ context.Context, keyType string, _ int) {
	m.CacheEvents.WithLabelValues(keyType, "set").Inc()
}

// RegisterHooks installs m as the process-wide pipeline and cache hooks.
func (m *Metrics) RegisterHooks() {
	observability.SetPipelineHooks(m)
	observability.SetCacheHooks(m)
}

var (
	_ observability.PipelineHooks = (*Metrics)(nil)
	_ observability.CacheHooks    = (*Metrics)(nil)
)
