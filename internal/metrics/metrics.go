package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ClassificationsN = "fuzzy_classifications_total"
	ClassificationsH = "The total number of successful classifications"

	InvalidInputsN = "fuzzy_invalid_inputs_total"
	InvalidInputsH = "The total number of rejected classification inputs"

	DurationN = "fuzzy_classification_duration_seconds"
	DurationH = "Classification latency"

	ChartCacheHitsN = "fuzzy_chart_cache_hits_total"
	ChartCacheHitsH = "The total number of membership charts served from cache"

	ChartRendersN = "fuzzy_chart_renders_total"
	ChartRendersH = "The total number of membership charts rendered"
)

// Metrics owns a dedicated registry so that several instances can coexist
// (one per server, one per test).
type Metrics struct {
	registry *prometheus.Registry

	Classifications *prometheus.CounterVec
	InvalidInputs   *prometheus.CounterVec
	Duration        *prometheus.HistogramVec
	ChartCacheHits  prometheus.Counter
	ChartRenders    prometheus.Counter
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Metrics{
		registry: reg,
		Classifications: f.NewCounterVec(prometheus.CounterOpts{
			Name: ClassificationsN,
			Help: ClassificationsH,
		}, []string{"engine", "condition"}),
		InvalidInputs: f.NewCounterVec(prometheus.CounterOpts{
			Name: InvalidInputsN,
			Help: InvalidInputsH,
		}, []string{"engine"}),
		Duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    DurationN,
			Help:    DurationH,
			Buckets: prometheus.ExponentialBuckets(1e-7, 4, 10),
		}, []string{"engine"}),
		ChartCacheHits: f.NewCounter(prometheus.CounterOpts{
			Name: ChartCacheHitsN,
			Help: ChartCacheHitsH,
		}),
		ChartRenders: f.NewCounter(prometheus.CounterOpts{
			Name: ChartRendersN,
			Help: ChartRendersH,
		}),
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveClassification records a successful classification. Safe on a nil receiver.
func (m *Metrics) ObserveClassification(engine, condition string, d time.Duration) {
	if m == nil {
		return
	}
	m.Classifications.WithLabelValues(engine, condition).Inc()
	m.Duration.WithLabelValues(engine).Observe(d.Seconds())
}

// ObserveInvalidInput records a rejected input. Safe on a nil receiver.
func (m *Metrics) ObserveInvalidInput(engine string) {
	if m == nil {
		return
	}
	m.InvalidInputs.WithLabelValues(engine).Inc()
}

// ObserveChart records a chart request. Safe on a nil receiver.
func (m *Metrics) ObserveChart(cached bool) {
	if m == nil {
		return
	}
	if cached {
		m.ChartCacheHits.Inc()
		return
	}
	m.ChartRenders.Inc()
}
