package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Decision metrics
	decisionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "signal_engine_decisions_total",
			Help: "Total number of resolved decisions",
		},
		[]string{"symbol", "mode", "direction"},
	)

	resolveDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "signal_engine_resolve_duration_seconds",
			Help:    "Distribution of decision resolution latency",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
		},
		[]string{"symbol"},
	)

	// Evaluator metrics
	evaluatorVerdictsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "signal_engine_evaluator_verdicts_total",
			Help: "Total number of evaluator verdicts by direction",
		},
		[]string{"evaluator", "direction"},
	)

	evaluatorFaultsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "signal_engine_evaluator_faults_total",
			Help: "Total number of evaluator faults absorbed as NONE verdicts",
		},
		[]string{"evaluator"},
	)

	// Filter metrics
	filterVetoesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "signal_engine_filter_vetoes_total",
			Help: "Total number of candidate directions vetoed by a filter",
		},
		[]string{"filter", "direction"},
	)

	// Market data metrics
	lastPrice = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "signal_engine_last_price",
			Help: "Last market price seen for a symbol",
		},
		[]string{"symbol"},
	)

	confluenceCount = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "signal_engine_confluence_count",
			Help: "Agreement count of the most recent confluence decision",
		},
		[]string{"symbol"},
	)

	// Error metrics
	errorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "signal_engine_errors_total",
			Help: "Total number of errors",
		},
		[]string{"type"},
	)
)

func init() {
	// Register metrics
	prometheus.MustRegister(decisionsTotal)
	prometheus.MustRegister(resolveDuration)
	prometheus.MustRegister(evaluatorVerdictsTotal)
	prometheus.MustRegister(evaluatorFaultsTotal)
	prometheus.MustRegister(filterVetoesTotal)
	prometheus.MustRegister(lastPrice)
	prometheus.MustRegister(confluenceCount)
	prometheus.MustRegister(errorsTotal)
}

// MetricsHandler handles Prometheus metrics endpoint
type MetricsHandler struct{}

// NewMetricsHandler creates a new metrics handler
func NewMetricsHandler() *MetricsHandler {
	return &MetricsHandler{}
}

// ServeHTTP serves the Prometheus metrics endpoint
func (m *MetricsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// RecordDecision records a resolved decision
func RecordDecision(symbol, mode, direction string) {
	decisionsTotal.WithLabelValues(symbol, mode, direction).Inc()
}

// ObserveResolveDuration records the latency of one resolution
func ObserveResolveDuration(symbol string, seconds float64) {
	resolveDuration.WithLabelValues(symbol).Observe(seconds)
}

// RecordVerdict records an evaluator verdict
func RecordVerdict(evaluator, direction string) {
	evaluatorVerdictsTotal.WithLabelValues(evaluator, direction).Inc()
}

// RecordEvaluatorFault records an absorbed evaluator fault
func RecordEvaluatorFault(evaluator string) {
	evaluatorFaultsTotal.WithLabelValues(evaluator).Inc()
}

// RecordVeto records a filter veto
func RecordVeto(filter, direction string) {
	filterVetoesTotal.WithLabelValues(filter, direction).Inc()
}

// UpdatePrice updates the last seen price metric
func UpdatePrice(symbol string, price float64) {
	lastPrice.WithLabelValues(symbol).Set(price)
}

// UpdateConfluence updates the last agreement count metric
func UpdateConfluence(symbol string, count int) {
	confluenceCount.WithLabelValues(symbol).Set(float64(count))
}

// RecordError records an error metric
func RecordError(errorType string) {
	errorsTotal.WithLabelValues(errorType).Inc()
}
