package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	transactionsCreated *prometheus.CounterVec
	transactionsDeleted prometheus.Counter
	smsParseAttempts    *prometheus.CounterVec
	summariesGenerated  prometheus.Counter
	summaryDuration     prometheus.Histogram
	extractionDuration  prometheus.Histogram
	ledgerSize          prometheus.Gauge
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		transactionsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transactions_created_total",
				Help: "Total number of transactions recorded in the ledger",
			},
			[]string{"source", "type"},
		),
		transactionsDeleted: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "transactions_deleted_total",
				Help: "Total number of transactions deleted from the ledger",
			},
		),
		smsParseAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sms_parse_attempts_total",
				Help: "Total number of SMS extraction attempts by outcome",
			},
			[]string{"outcome"},
		),
		summariesGenerated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "summaries_generated_total",
				Help: "Total number of ledger summaries computed",
			},
		),
		summaryDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "summary_generation_duration_milliseconds",
				Help:    "Ledger summary computation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		extractionDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "sms_extraction_duration_milliseconds",
				Help:    "SMS extraction duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		ledgerSize: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "ledger_transactions",
				Help: "Current number of transactions in the ledger",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "transaction.created":
		m.transactionsCreated.WithLabelValues(tags["source"], tags["type"]).Inc()
	case "transaction.deleted":
		m.transactionsDeleted.Inc()
	case "sms.parse.succeeded":
		m.smsParseAttempts.WithLabelValues("parsed").Inc()
	case "sms.parse.failed":
		m.smsParseAttempts.WithLabelValues("failed_" + tags["reason"]).Inc()
	case "summary.generated":
		m.summariesGenerated.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "summary.generation":
		m.summaryDuration.Observe(float64(duration.Milliseconds()))
	case "sms.extraction":
		m.extractionDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "ledger.size":
		m.ledgerSize.Set(value)
	}
}
