package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	expensesTotal       *prometheus.CounterVec
	reportsGenerated    *prometheus.CounterVec
	reportDuration      prometheus.Histogram
	exportsGenerated    *prometheus.CounterVec
	exportDuration      *prometheus.HistogramVec
	usersRegistered     prometheus.Counter
	authenticationTotal *prometheus.CounterVec
	budgetsTotal        *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		expensesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "expenses_total",
				Help: "Total number of expense operations",
			},
			[]string{"operation"},
		),
		reportsGenerated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reports_generated_total",
				Help: "Total number of reports generated",
			},
			[]string{"type"},
		),
		reportDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "report_generation_duration_milliseconds",
				Help:    "Report generation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		exportsGenerated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exports_generated_total",
				Help: "Total number of export documents generated",
			},
			[]string{"format"},
		),
		exportDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "export_duration_milliseconds",
				Help:    "Export rendering duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"format"},
		),
		usersRegistered: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "users_registered_total",
				Help: "Total number of users registered",
			},
		),
		authenticationTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
		budgetsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budgets_total",
				Help: "Total number of budget operations",
			},
			[]string{"operation"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "expense_operation":
		if operation := tags["operation"]; operation != "" {
			m.expensesTotal.WithLabelValues(operation).Inc()
		}
	case "reports_generated":
		if reportType := tags["type"]; reportType != "" {
			m.reportsGenerated.WithLabelValues(reportType).Inc()
		}
	case "exports_generated":
		if format := tags["format"]; format != "" {
			m.exportsGenerated.WithLabelValues(format).Inc()
		}
	case "user_registered":
		m.usersRegistered.Inc()
	case "authentication_event":
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationTotal.WithLabelValues(eventType).Inc()
		}
	case "budget_operation":
		if operation := tags["operation"]; operation != "" {
			m.budgetsTotal.WithLabelValues(operation).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "report_generation":
		m.reportDuration.Observe(float64(duration.Milliseconds()))
	case "export_csv":
		m.exportDuration.WithLabelValues("csv").Observe(float64(duration.Milliseconds()))
	case "export_pdf":
		m.exportDuration.WithLabelValues("pdf").Observe(float64(duration.Milliseconds()))
	}
}
