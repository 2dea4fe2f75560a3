// Package metrics provides Prometheus metrics for dashboard client operations.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the dashboard client.
type Metrics struct {
	enabled bool

	// Authentication metrics
	loginAttemptsTotal prometheus.Counter
	loginFailuresTotal *prometheus.CounterVec
	sessionActive      prometheus.Gauge

	// API call metrics
	apiRequestsTotal *prometheus.CounterVec

	// List controller metrics
	listFetchesTotal *prometheus.CounterVec
	staleDropsTotal  *prometheus.CounterVec
	mutationsTotal   *prometheus.CounterVec
}

// New creates and registers Prometheus metrics.
// If enabled is false, returns a no-op Metrics instance.
func New(enabled bool) *Metrics {
	m := &Metrics{enabled: enabled}

	if !enabled {
		return m
	}

	m.loginAttemptsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "medadmin_login_attempts_total",
		Help: "Total login attempts",
	})

	m.loginFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "medadmin_login_failures_total",
		Help: "Total login failures",
	}, []string{"source", "reason"})

	m.sessionActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "medadmin_session_active",
		Help: "Whether an authenticated session is held (0 or 1)",
	})

	m.apiRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "medadmin_api_requests_total",
		Help: "Total backend API requests",
	}, []string{"endpoint", "result"})

	m.listFetchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "medadmin_list_fetches_total",
		Help: "Total list fetches issued by resource controllers",
	}, []string{"entity", "result"})

	m.staleDropsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "medadmin_stale_responses_dropped_total",
		Help: "List responses discarded because a newer fetch was issued",
	}, []string{"entity"})

	m.mutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "medadmin_mutations_total",
		Help: "Create/update/delete/toggle operations by outcome",
	}, []string{"entity", "operation", "result"})

	return m
}

// RecordLoginAttempt records a login attempt.
func (m *Metrics) RecordLoginAttempt() {
	if !m.enabled {
		return
	}
	m.loginAttemptsTotal.Inc()
}

// RecordLoginFailure records a failed login against one identity source.
func (m *Metrics) RecordLoginFailure(source, reason string) {
	if !m.enabled {
		return
	}
	m.loginFailuresTotal.WithLabelValues(source, reason).Inc()
}

// SetSessionActive tracks whether an authenticated session is held.
func (m *Metrics) SetSessionActive(active bool) {
	if !m.enabled {
		return
	}
	v := 0.0
	if active {
		v = 1.0
	}
	m.sessionActive.Set(v)
}

// RecordAPIRequest records one backend call and its outcome.
func (m *Metrics) RecordAPIRequest(endpoint, result string) {
	if !m.enabled {
		return
	}
	m.apiRequestsTotal.WithLabelValues(endpoint, result).Inc()
}

// RecordListFetch records a list fetch outcome for an entity controller.
func (m *Metrics) RecordListFetch(entity, result string) {
	if !m.enabled {
		return
	}
	m.listFetchesTotal.WithLabelValues(entity, result).Inc()
}

// RecordStaleDrop records a discarded out-of-order list response.
func (m *Metrics) RecordStaleDrop(entity string) {
	if !m.enabled {
		return
	}
	m.staleDropsTotal.WithLabelValues(entity).Inc()
}

// RecordMutation records a create/update/delete/toggle outcome.
func (m *Metrics) RecordMutation(entity, operation, result string) {
	if !m.enabled {
		return
	}
	m.mutationsTotal.WithLabelValues(entity, operation, result).Inc()
}
