// Package metrics exposes Prometheus metrics for the turnover-risk engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PredictionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pulseopti",
		Subsystem: "turnover",
		Name:      "predictions_total",
		Help:      "Completed turnover-risk predictions by risk level.",
	}, []string{"risk_level"})

	InferenceFallbackTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "pulseopti",
		Subsystem: "turnover",
		Name:      "inference_fallback_total",
		Help:      "Inference calls that fell back to the neutral score.",
	})

	BatchSkippedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "pulseopti",
		Subsystem: "turnover",
		Name:      "batch_skipped_employees_total",
		Help:      "Employees skipped during batch prediction due to errors.",
	})

	BatchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "pulseopti",
		Subsystem: "turnover",
		Name:      "batch_duration_seconds",
		Help:      "Wall-clock duration of organization-wide prediction runs.",
		Buckets:   prometheus.DefBuckets,
	})
)
