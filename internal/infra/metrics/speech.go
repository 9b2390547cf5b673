package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

func init() {
	register(speechLatencyMs, transcodeFailures)
}

var (
	speechLatencyMs = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tutor_speech_latency_ms",
			Help:    "Speech call latency distribution in milliseconds per operation.",
			Buckets: []float64{50, 100, 200, 400, 800, 1600, 3000, 5000, 10000},
		},
		[]string{"op", "success"},
	)

	transcodeFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tutor_transcode_failures_total",
			Help: "ffmpeg transcode failures.",
		},
	)
)

func ObserveSpeech(op string, latencyMs int, success bool) {
	speechLatencyMs.WithLabelValues(norm(op), strconv.FormatBool(success)).
		Observe(float64(latencyMs))
}

func TranscodeFailed() { transcodeFailures.Inc() }
