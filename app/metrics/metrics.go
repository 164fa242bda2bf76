package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "article_index"

// Metrics records pipeline activity on its own registry
type Metrics struct {
	registry     *prometheus.Registry
	manifest     *prometheus.CounterVec
	fetches      *prometheus.CounterVec
	passes       *prometheus.CounterVec
	passDuration prometheus.Histogram
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		manifest: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "manifest_loads_total",
			Help:      "Manifest loads by result.",
		}, []string{"result"}),
		fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "article_fetches_total",
			Help:      "Article fetches by result.",
		}, []string{"result"}),
		passes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "render_passes_total",
			Help:      "Completed pipeline passes by result.",
		}, []string{"result"}),
		passDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_pass_duration_seconds",
			Help:      "Duration of pipeline passes.",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	m.registry.MustRegister(
		m.manifest,
		m.fetches,
		m.passes,
		m.passDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

func (m *Metrics) ManifestLoaded(ok bool) {
	m.manifest.WithLabelValues(result(ok)).Inc()
}

func (m *Metrics) ArticleFetched(ok bool) {
	m.fetches.WithLabelValues(result(ok)).Inc()
}

func (m *Metrics) PassCompleted(duration time.Duration, err error) {
	m.passes.WithLabelValues(result(err == nil)).Inc()
	m.passDuration.Observe(duration.Seconds())
}

// Handler exposes the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func result(ok bool) string {
	if ok {
		return "success"
	}
	return "error"
}
