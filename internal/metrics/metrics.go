package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Ingestion Metrics
var (
	RecordsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameRecordsTotal,
			Help:      HelpTextRecordsTotal,
		},
		[]string{LabelEntity, LabelOutcome},
	)

	FilesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameFilesTotal,
			Help:      HelpTextFilesTotal,
		},
		[]string{LabelPhase, LabelStatus},
	)

	PhaseDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      MetricNamePhaseDuration,
			Help:      HelpTextPhaseDuration,
			Buckets:   PhaseDurationBuckets,
		},
		[]string{LabelPhase},
	)

	UnmappedKeys = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameUnmappedKeys,
			Help:      HelpTextUnmappedKeys,
		},
		[]string{LabelScope},
	)

	LastRunTimestamp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameLastRunTimestamp,
			Help:      HelpTextLastRunTimestamp,
		},
	)
)
