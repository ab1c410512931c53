package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "hexmutator"

var (
	registerOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total admin HTTP requests.",
		},
		[]string{"target", "method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Admin HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"target", "method", "path", "status"},
	)
	fuzzerRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "coordinator",
			Name:      "requests_total",
			Help:      "REQUEST messages received from the fuzzer, by outcome.",
		},
		[]string{"outcome"},
	)
	seedsSent = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "coordinator",
			Name:      "seeds_sent_total",
			Help:      "SEED messages delivered to the fuzzer.",
		},
	)
	sendFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "coordinator",
			Name:      "send_failures_total",
			Help:      "Failed SEED sends, by reason.",
		},
		[]string{"reason"},
	)
	rounds = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "generation",
			Name:      "rounds_total",
			Help:      "Generation rounds, by mutation source.",
		},
		[]string{"source"},
	)
	roundDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "generation",
			Name:      "round_duration_seconds",
			Help:      "Wall time of one generation round.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 12),
		},
	)
	generatedSeeds = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "generation",
			Name:      "seeds_total",
			Help:      "Canonicalized oracle outputs, by result.",
		},
		[]string{"result"},
	)
	oracleErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "generation",
			Name:      "oracle_errors_total",
			Help:      "Failed oracle invocations.",
		},
	)
	storeSize = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "entries",
			Help:      "Current entries per shared seed structure.",
		},
		[]string{"structure"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			httpRequests, httpDuration,
			fuzzerRequests, seedsSent, sendFailures,
			rounds, roundDuration, generatedSeeds, oracleErrors,
			storeSize,
		)
	})
}

func RecordHTTPRequest(target, method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(target, method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(target, method, path, statusLabel).Observe(duration.Seconds())
}

// RecordFuzzerRequest counts one REQUEST by outcome (accepted, duplicate, malformed, empty).
func RecordFuzzerRequest(outcome string) {
	RegisterMetrics()
	fuzzerRequests.WithLabelValues(outcome).Inc()
}

func RecordSeedsSent(n int) {
	RegisterMetrics()
	seedsSent.Add(float64(n))
}

func RecordSendFailure(reason string) {
	RegisterMetrics()
	sendFailures.WithLabelValues(reason).Inc()
}

// RecordRound counts a finished generation round and its latency.
func RecordRound(fromFuzzer bool, duration time.Duration) {
	RegisterMetrics()
	source := "pool"
	if fromFuzzer {
		source = "fuzzer"
	}
	rounds.WithLabelValues(source).Inc()
	roundDuration.Observe(duration.Seconds())
}

// RecordGenerated counts one canonicalized output by result (queued, empty, dropped_empty).
func RecordGenerated(result string) {
	RegisterMetrics()
	generatedSeeds.WithLabelValues(result).Inc()
}

func RecordOracleError() {
	RegisterMetrics()
	oracleErrors.Inc()
}

func RecordStoreSize(structure string, n int) {
	RegisterMetrics()
	storeSize.WithLabelValues(structure).Set(float64(n))
}
