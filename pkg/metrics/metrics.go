package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus метрик сервиса
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// База данных
	DBQueryDuration  *prometheus.HistogramVec
	DBQueryErrors    *prometheus.CounterVec
	DBConnections    *prometheus.GaugeVec
	DBWaitCount      *prometheus.GaugeVec
	DBWaitDurationMs *prometheus.GaugeVec

	// Доступность и бронирования
	SlotsGenerated   *prometheus.CounterVec
	SlotsFiltered    *prometheus.CounterVec
	SlotsReturned    *prometheus.CounterVec
	Reservations     *prometheus.CounterVec
	CalendarSyncRuns *prometheus.CounterVec
}

// New регистрирует метрики в глобальном реестре prometheus
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry регистрирует метрики в переданном реестре (удобно для тестов)
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		DBQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),

		DBQueryErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_query_errors_total",
			Help:        "Total number of failed database queries",
			ConstLabels: constLabels,
		}, []string{"operation"}),

		DBConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections",
			Help:        "Database connection pool state",
			ConstLabels: constLabels,
		}, []string{"state"}),

		DBWaitCount: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}, []string{}),

		DBWaitDurationMs: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections_wait_duration_ms",
			Help:        "Total time blocked waiting for a new connection",
			ConstLabels: constLabels,
		}, []string{}),

		SlotsGenerated: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "availability_slots_generated_total",
			Help:        "Candidate slots produced by the slot generator",
			ConstLabels: constLabels,
		}, []string{}),

		SlotsFiltered: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "availability_slots_filtered_total",
			Help:        "Candidate slots dropped by the resolver",
			ConstLabels: constLabels,
		}, []string{"reason"}),

		SlotsReturned: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "availability_slots_returned_total",
			Help:        "Bookable slots returned to callers",
			ConstLabels: constLabels,
		}, []string{}),

		Reservations: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservations_total",
			Help:        "Slot reservation attempts by result",
			ConstLabels: constLabels,
		}, []string{"result"}),

		CalendarSyncRuns: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "calendar_sync_runs_total",
			Help:        "External calendar sync runs by result",
			ConstLabels: constLabels,
		}, []string{"result"}),
	}
}
