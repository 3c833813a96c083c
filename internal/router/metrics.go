package router

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MetricRouted counts requests by destination (api, ui)
	MetricRouted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "colorweb_routed_total",
		Help: "Total requests routed by destination",
	}, []string{"dest"})

	// MetricUpstreamErrors counts forwards that never got an upstream answer
	MetricUpstreamErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "colorweb_upstream_errors_total",
		Help: "Total failed forwards to the lookup service",
	})

	// MetricForwardDuration tracks forwarded request duration
	MetricForwardDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "colorweb_forward_duration_seconds",
		Help:    "Forwarded request duration in seconds",
		Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5},
	})
)
