// Package telemetry exposes Prometheus metrics for the board: HTTP server
// metrics recorded by middleware and a few domain counters.
package telemetry

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "opsboard"

// Metrics holds every collector the server registers. A nil *Metrics is a
// valid no-op recorder.
type Metrics struct {
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
	activeRequests prometheus.Gauge
	chatMessages   *prometheus.CounterVec
	submissions    *prometheus.CounterVec
	taskMoves      *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route pattern and status code",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		activeRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "active_requests",
			Help:      "Requests currently being served",
		}),
		chatMessages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "chat",
			Name:      "messages_sent_total",
			Help:      "Chat messages sent by channel department",
		}, []string{"department"}),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "submission",
			Name:      "records_total",
			Help:      "Records accepted by the add endpoints, by kind and whether they were persisted",
		}, []string{"kind", "persisted"}),
		taskMoves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "task",
			Name:      "status_changes_total",
			Help:      "Task lane moves by target status",
		}, []string{"status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.httpRequests, m.httpDuration, m.activeRequests, m.chatMessages, m.submissions, m.taskMoves)
	return m
}

func (m *Metrics) ChatMessageSent(department string) {
	if m == nil {
		return
	}
	m.chatMessages.WithLabelValues(department).Inc()
}

// SubmissionAccepted satisfies submission.Observer.
func (m *Metrics) SubmissionAccepted(kind string, persisted bool) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(kind, strconv.FormatBool(persisted)).Inc()
}

func (m *Metrics) TaskMoved(status string) {
	if m == nil {
		return
	}
	m.taskMoves.WithLabelValues(status).Inc()
}

// Middleware records request count, latency and in-flight requests. The
// route label is the registered pattern, never the raw path.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if m == nil {
				return next(c)
			}
			m.activeRequests.Inc()
			defer m.activeRequests.Dec()

			start := time.Now()
			err := next(c)
			elapsed := time.Since(start).Seconds()

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			method := c.Request().Method
			m.httpRequests.WithLabelValues(method, route, strconv.Itoa(statusOf(c, err))).Inc()
			m.httpDuration.WithLabelValues(method, route).Observe(elapsed)
			return err
		}
	}
}

// statusOf returns the status the error handler will write when the handler
// returned an error, since the response is not committed yet.
func statusOf(c echo.Context, err error) int {
	if err == nil {
		return c.Response().Status
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return http.StatusInternalServerError
}

// Handler serves the metrics in g in the Prometheus exposition format.
func Handler(g prometheus.Gatherer) echo.HandlerFunc {
	return echo.WrapHandler(promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
}
