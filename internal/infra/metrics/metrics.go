package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sony/gobreaker/v2"
)

// Anti-fraud decision outcomes.
const (
	FraudAllowed    = "allowed"
	FraudDenied     = "denied"
	FraudFailClosed = "fail_closed"
	FraudCacheHit   = "cache_hit"
)

type Metrics struct {
	activations         *prometheus.CounterVec
	fraudDecisions      *prometheus.CounterVec
	fraudAttempts       *prometheus.HistogramVec
	breakerState        *prometheus.GaugeVec
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		activations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "promocode_activations_total",
				Help: "Activation attempts by outcome",
			},
			[]string{"outcome"},
		),
		fraudDecisions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "antifraud_decisions_total",
				Help: "Anti-fraud verdicts by outcome (allowed, denied, fail_closed, cache_hit)",
			},
			[]string{"outcome"},
		),
		fraudAttempts: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "antifraud_attempt_duration_seconds",
				Help:    "Latency of single anti-fraud attempts",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"result"},
		),
		breakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Current state of the circuit breaker (0=closed, 1=half-open, 2=open)",
			},
			[]string{"name"},
		),
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
	}
}

func (m *Metrics) ObserveActivation(outcome string) {
	m.activations.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveFraudDecision(outcome string) {
	m.fraudDecisions.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveFraudAttempt(result string, seconds float64) {
	m.fraudAttempts.WithLabelValues(result).Observe(seconds)
}

func (m *Metrics) SetBreakerState(name string, state gobreaker.State) {
	m.breakerState.WithLabelValues(name).Set(stateToFloat(state))
}

func (m *Metrics) ObserveHTTPRequest(method, path, status string, seconds float64) {
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path, status).Observe(seconds)
}

// stateToFloat maps gobreaker states to prometheus gauge values.
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
