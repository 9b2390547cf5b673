package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

func init() {
	register(
		turnsTotal,
		generationLatencyMs,
		parseFallbacks,
		historyLen,
	)
}

var (
	turnsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tutor_turns_total",
			Help: "Completed or failed conversation turns per role/mode/outcome.",
		},
		[]string{"role", "feedback", "outcome"},
	)

	generationLatencyMs = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tutor_generation_latency_ms",
			Help:    "Text-generation call latency distribution in milliseconds.",
			Buckets: []float64{50, 100, 200, 400, 800, 1600, 3000, 5000, 10000},
		},
		[]string{"provider", "model", "success"},
	)

	parseFallbacks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tutor_parse_fallbacks_total",
			Help: "Feedback-mode replies where the reply marker was missing and the whole text degraded to the reply.",
		},
	)

	historyLen = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tutor_history_turns",
			Help:    "History length (turns) observed when a session is saved.",
			Buckets: []float64{0, 2, 6, 10, 20, 30, 40, 50},
		},
	)
)

func ObserveTurn(role string, feedback bool, outcome string) {
	turnsTotal.WithLabelValues(norm(role), strconv.FormatBool(feedback), norm(outcome)).Inc()
}

func ObserveGeneration(provider, model string, latencyMs int, success bool) {
	generationLatencyMs.WithLabelValues(norm(provider), norm(model), strconv.FormatBool(success)).
		Observe(float64(latencyMs))
}

func ParseFallback() { parseFallbacks.Inc() }

func ObserveHistoryLen(n int) { historyLen.Observe(float64(n)) }
