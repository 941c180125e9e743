package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the various metrics used for monitoring the application.
// It includes a histogram for database queries, counters and a histogram
// for served HTTP requests, and a counter for employee records changed.
type Metrics struct {
	DBQueryDuration     *prometheus.HistogramVec
	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	EmployeesChanged    *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance and registers every collector
// with the provided Registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	metrics := &Metrics{
		DBQueryDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "staffbook_db_query_duration_seconds",
			Help:    "Duration of database queries.",
			Buckets: prometheus.DefBuckets,
		}, []string{"query_type"}), // query_type: 'save_employee', 'list_employees'
		HTTPRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "staffbook_http_requests_total",
			Help: "Total number of served HTTP requests.",
		}, []string{"route", "method", "code"}),
		HTTPRequestDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "staffbook_http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
		EmployeesChanged: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "staffbook_employees_changed_total",
			Help: "Total number of employee records created, updated or deleted.",
		}, []string{"operation"}),
	}

	metrics.EmployeesChanged.WithLabelValues("create")
	metrics.EmployeesChanged.WithLabelValues("update")
	metrics.EmployeesChanged.WithLabelValues("delete")

	return metrics
}
