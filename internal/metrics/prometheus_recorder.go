package metrics

import (
	"net/http"
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once             sync.Once
	registry         *prom.Registry
	generateDuration prom.Histogram
	generateOutcome  *prom.CounterVec
	renderDuration   prom.Histogram
	mutations        *prom.CounterVec
	previewClients   prom.Gauge
}

// NewPrometheusRecorder constructs and registers Prometheus metrics (idempotent).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{registry: reg}
	pr.once.Do(func() {
		pr.generateDuration = prom.NewHistogram(prom.HistogramOpts{
			Namespace: "siteforge",
			Name:      "generate_duration_seconds",
			Help:      "Duration of full bundle generation runs",
			Buckets:   prom.DefBuckets,
		})
		pr.generateOutcome = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "siteforge",
			Name:      "generate_outcomes_total",
			Help:      "Generation outcomes by final status",
		}, []string{"outcome"})
		pr.renderDuration = prom.NewHistogram(prom.HistogramOpts{
			Namespace: "siteforge",
			Name:      "preview_render_duration_seconds",
			Help:      "Duration of preview renders",
			Buckets:   prom.DefBuckets,
		})
		pr.mutations = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "siteforge",
			Name:      "mutations_total",
			Help:      "Document mutations by operation and condition",
		}, []string{"op", "condition"})
		pr.previewClients = prom.NewGauge(prom.GaugeOpts{
			Namespace: "siteforge",
			Name:      "preview_clients",
			Help:      "Connected livereload clients",
		})

		reg.MustRegister(pr.generateDuration, pr.generateOutcome,
			pr.renderDuration, pr.mutations, pr.previewClients)
	})
	return pr
}

func (p *PrometheusRecorder) ObserveGenerateDuration(d time.Duration) {
	p.generateDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncGenerateOutcome(result ResultLabel) {
	p.generateOutcome.WithLabelValues(string(result)).Inc()
}

func (p *PrometheusRecorder) ObserveRenderDuration(d time.Duration) {
	p.renderDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncMutation(op, condition string) {
	p.mutations.WithLabelValues(op, condition).Inc()
}

func (p *PrometheusRecorder) SetPreviewClients(n int) {
	p.previewClients.Set(float64(n))
}

// Handler returns an http.Handler exposing the recorder's registry.
func (p *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}
