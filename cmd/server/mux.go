package main

import (
	"net/http"
	"sync/atomic"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/codevai-team/codev-bot/pkg/metrics"
	"github.com/codevai-team/codev-bot/pkg/middleware"
)

// NewWebhookRouter routes every path and method to the webhook endpoint.
func NewWebhookRouter(
	endpoint http.Handler,
	logger zerolog.Logger,
) http.Handler {
	r := mux.NewRouter().SkipClean(true)

	r.Use(
		middleware.Recover(logger),
		middleware.Logger(logger),
		metrics.Instrument,
	)
	// PathPrefix would miss the asterisk-form target ("*").
	r.MatcherFunc(func(*http.Request, *mux.RouteMatch) bool {
		return true
	}).Handler(endpoint)

	return r
}

// NewOpsRouter serves health checks and prometheus metrics on a separate listener,
// so no path of the webhook listener is taken by them.
func NewOpsRouter(
	ready *atomic.Bool,
) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeText(w, http.StatusOK, "ok")
	}).Methods(http.MethodGet)

	r.HandleFunc("/readyz", func(w http.ResponseWriter, _ *http.Request) {
		if !ready.Load() {
			writeText(w, http.StatusServiceUnavailable, "not ready")
			return
		}

		writeText(w, http.StatusOK, "ready")
	}).Methods(http.MethodGet)

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return r
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
