package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "eiya_gregor_requests_total",
		Help: "The total number of date operations by operation and outcome",
	}, []string{"operation", "outcome"})
	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "eiya_gregor_request_duration_seconds",
		Help:    "Duration of date operations",
		Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
	}, []string{"operation"})
	patternCacheSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "eiya_gregor_pattern_cache_size",
		Help: "The current number of compiled patterns held in the cache",
	})
)

// Outcome labels
const (
	outcomeOK = "ok"
)
