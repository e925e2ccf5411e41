package cglog

import (
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/asimation/cglog/severity"
)

// metricsEnabled controls whether Prometheus metrics are recorded.
var metricsEnabled atomic.Bool

var (
	recordsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cglog_records_total",
			Help: "Total log records emitted to handlers",
		},
		[]string{"logger", "level"},
	)

	recordsFiltered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cglog_records_filtered_total",
			Help: "Log records dropped below the logger threshold",
		},
		[]string{"logger"},
	)

	dialogsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cglog_dialogs_total",
			Help: "Host dialog invocations attempted",
		},
		[]string{"host"},
	)

	dialogFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cglog_dialog_failures_total",
			Help: "Host dialog invocations that failed or were dropped",
		},
		[]string{"host"},
	)

	handlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cglog_handler_errors_total",
			Help: "Handler emit failures, including dialog failures",
		},
		[]string{"logger"},
	)
)

// EnableMetrics turns on Prometheus instrumentation for all loggers.
func EnableMetrics() { metricsEnabled.Store(true) }

// DisableMetrics turns instrumentation back off.
func DisableMetrics() { metricsEnabled.Store(false) }

func recordEmit(logger string, level severity.Level) {
	if !metricsEnabled.Load() {
		return
	}
	recordsTotal.With(prometheus.Labels{"logger": logger, "level": level.String()}).Inc()
}

func recordFiltered(logger string) {
	if !metricsEnabled.Load() {
		return
	}
	recordsFiltered.With(prometheus.Labels{"logger": logger}).Inc()
}

func recordDialog(host string) {
	if !metricsEnabled.Load() {
		return
	}
	dialogsTotal.With(prometheus.Labels{"host": host}).Inc()
}

func recordDialogFailure(host string) {
	if !metricsEnabled.Load() {
		return
	}
	dialogFailures.With(prometheus.Labels{"host": host}).Inc()
}

func recordHandlerError(logger string) {
	if !metricsEnabled.Load() {
		return
	}
	handlerErrors.With(prometheus.Labels{"logger": logger}).Inc()
}

// CreateMetricsServer creates a configured HTTP server exposing /metrics.
func CreateMetricsServer(port int) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// ServeMetrics starts the Prometheus metrics HTTP server and blocks.
func ServeMetrics(port int) error {
	return CreateMetricsServer(port).ListenAndServe()
}
