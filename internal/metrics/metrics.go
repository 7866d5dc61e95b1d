package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "maintenance"

// Metrics holds the collectors exported on /metrics. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec

	complaintsSubmitted *prometheus.CounterVec
	complaintsAssigned  prometheus.Counter
	assignmentsDone     prometheus.Counter
	materialEvents      *prometheus.CounterVec
	leaveDecisions      *prometheus.CounterVec
	logins              *prometheus.CounterVec
	demoResets          prometheus.Counter
}

// New creates the collectors on a private registry
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		complaintsSubmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "complaints_submitted_total",
			Help:      "Complaints filed from the guest forms.",
		}, []string{"type", "category"}),
		complaintsAssigned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "complaints_assigned_total",
			Help:      "Complaint assignments made by supervisors.",
		}),
		assignmentsDone: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assignments_completed_total",
			Help:      "Assignments marked completed by staff.",
		}),
		materialEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "material_requests_total",
			Help:      "Material request transitions.",
		}, []string{"status"}),
		leaveDecisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "leave_requests_total",
			Help:      "Leave requests filed and decided.",
		}, []string{"status"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "logins_total",
			Help:      "Logins by role.",
		}, []string{"role"}),
		demoResets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "demo_resets_total",
			Help:      "Times the demo data set was restored.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.requestDuration,
		m.complaintsSubmitted,
		m.complaintsAssigned,
		m.assignmentsDone,
		m.materialEvents,
		m.leaveDecisions,
		m.logins,
		m.demoResets,
	)
	return m
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry for tests
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) ComplaintSubmitted(kind, category string) {
	if m == nil {
		return
	}
	m.complaintsSubmitted.WithLabelValues(kind, category).Inc()
}

func (m *Metrics) ComplaintAssigned() {
	if m == nil {
		return
	}
	m.complaintsAssigned.Inc()
}

func (m *Metrics) AssignmentCompleted() {
	if m == nil {
		return
	}
	m.assignmentsDone.Inc()
}

func (m *Metrics) MaterialStatus(status string) {
	if m == nil {
		return
	}
	m.materialEvents.WithLabelValues(status).Inc()
}

func (m *Metrics) LeaveStatus(status string) {
	if m == nil {
		return
	}
	m.leaveDecisions.WithLabelValues(status).Inc()
}

func (m *Metrics) Login(role string) {
	if m == nil {
		return
	}
	m.logins.WithLabelValues(role).Inc()
}

func (m *Metrics) DemoReset() {
	if m == nil {
		return
	}
	m.demoResets.Inc()
}
