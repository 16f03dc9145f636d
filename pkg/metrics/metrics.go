package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	UpdatesReceivedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "codev_bot_updates_received_total",
			Help: "Total number of updates acknowledged by the webhook",
		},
		[]string{"kind"},
	)

	UpdateFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "codev_bot_update_failures_total",
			Help: "Total number of webhook calls that could not be processed",
		},
		[]string{"reason"},
	)

	UpdateBytesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "codev_bot_update_bytes_total",
			Help: "Total bytes of acknowledged update payloads",
		},
	)

	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "codev_bot_http_requests_total",
			Help: "Total number of webhook HTTP requests by response status",
		},
		[]string{"status"},
	)

	RequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "codev_bot_http_request_duration_seconds",
			Help:    "Duration of webhook HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// Instrument records status and latency of every request served by next.
func Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := NewStatusRecorder(w)

		next.ServeHTTP(rec, r)

		RequestsTotal.WithLabelValues(strconv.Itoa(rec.Status())).Inc()
		RequestDuration.Observe(time.Since(start).Seconds())
	})
}

// StatusRecorder remembers the status code written through it.
type StatusRecorder struct {
	http.ResponseWriter
	status int
}

func NewStatusRecorder(w http.ResponseWriter) *StatusRecorder {
	return &StatusRecorder{
		ResponseWriter: w,
		status:         http.StatusOK,
	}
}

func (s *StatusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (s *StatusRecorder) Status() int {
	return s.status
}
