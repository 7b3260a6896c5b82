package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "vox"

// Metrics agrupa os coletores Prometheus da aplicação num registry próprio
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	CatalogRequests *prometheus.CounterVec
	CatalogCache    *prometheus.CounterVec
	Imports         *prometheus.CounterVec
}

// New cria o registry com coletores de runtime e os da aplicação
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		CatalogRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_requests_total",
			Help:      "Outbound pictogram catalog calls by operation and outcome.",
		}, []string{"operation", "outcome"}),
		CatalogCache: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_cache_total",
			Help:      "Pictogram catalog cache lookups by operation and result.",
		}, []string{"operation", "result"}),
		Imports: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pictogram_imports_total",
			Help:      "External pictogram imports by outcome.",
		}, []string{"outcome"}),
	}
}

// Registry expõe o registry para testes e exportadores
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serve o endpoint /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
