package api

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"color-chooser/internal/ui"
)

var (
	// MetricRequestsTotal counts served requests by route and status code
	MetricRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "colorsvc_requests_total",
		Help: "Total lookup service requests by route and status code",
	}, []string{"route", "code"})

	// MetricLookupsTotal counts by-name lookups by result (hit, miss, error)
	MetricLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "colorsvc_lookups_total",
		Help: "Total by-name color lookups by result",
	}, []string{"result"})

	// MetricRequestDuration tracks request latency by route
	MetricRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "colorsvc_request_duration_seconds",
		Help:    "Lookup service request duration in seconds",
		Buckets: []float64{.0005, .001, .005, .01, .05, .1, .5, 1},
	}, []string{"route"})

	// MetricRecords tracks the number of records after the last seed
	MetricRecords = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "colorsvc_records",
		Help: "Color records currently held by the store",
	})

	// MetricPanicsTotal counts handler panics turned into 500 responses
	MetricPanicsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "colorsvc_panics_total",
		Help: "Total handler panics recovered",
	})
)

// MetricsServer wraps the HTTP server for prometheus metrics
type MetricsServer struct {
	server *http.Server
}

// NewMetricsServer creates a new metrics server
func NewMetricsServer(addr string) *MetricsServer {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &MetricsServer{
		server: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Start begins serving metrics (non-blocking)
func (m *MetricsServer) Start() {
	go func() {
		if err := m.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			ui.LogStatus("error", "Metrics server error: "+err.Error())
		}
	}()
}

// Shutdown gracefully stops the metrics server
func (m *MetricsServer) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return m.server.Shutdown(shutdownCtx)
}
