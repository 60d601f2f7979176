package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/registro/pkg/core"
)

// Metrics holds the Prometheus collectors of a registro process.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	RequestsTotal       *prometheus.CounterVec
	RequestDuration     *prometheus.HistogramVec
	PersistenceFailures *prometheus.CounterVec
}

// New creates the collectors on a dedicated registry, together with the
// standard Go and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "registro_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "registro_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by method and route",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"method", "route"}),
		PersistenceFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "registro_persistence_failures_total",
			Help: "Total number of snapshot failures by operation",
		}, []string{"op"}),
	}
}

// ObserveRequest records one served HTTP request.
// Call with time.Now() taken when the request arrived.
func (m *Metrics) ObserveRequest(method, route string, status int, start time.Time) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
}

// ReportPersistenceError counts a snapshot failure. It has the shape of an
// error handler so it can be passed to the snapshot directly.
func (m *Metrics) ReportPersistenceError(err error) {
	if m == nil || err == nil {
		return
	}
	op := "unknown"
	var perr *core.PersistenceError
	if errors.As(err, &perr) {
		op = perr.Op
	}
	m.PersistenceFailures.WithLabelValues(op).Inc()
}

// TrackRecords exposes the current record count as a gauge.
func (m *Metrics) TrackRecords(count func() int) {
	if m == nil {
		return
	}
	promauto.With(m.registry).NewGaugeFunc(prometheus.GaugeOpts{
		Name: "registro_records",
		Help: "Number of records currently held in the store",
	}, func() float64 {
		return float64(count())
	})
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

