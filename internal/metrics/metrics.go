// SPDX-License-Identifier: MIT

// Package metrics holds the process-wide Prometheus collectors.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "jvsync"

var (
	recordsRead = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_read_total",
		Help:      "Records read from the vendor session, by record spec.",
	}, []string{"spec"})

	unknownSpecs = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "unknown_specs_total",
		Help:      "Records dropped because no layout matched, by spec.",
	}, []string{"spec"})

	parseErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "parse_errors_total",
		Help:      "Records that violated their layout, by spec.",
	}, []string{"spec"})

	rowsWritten = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rows_written_total",
		Help:      "Rows upserted into the store, by table.",
	}, []string{"table"})

	retries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "open_retries_total",
		Help:      "Open retries taken, by vendor return code.",
	}, []string{"code"})

	cycleDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "cycle_duration_seconds",
		Help:      "Wall time of one fetch cycle.",
		Buckets:   prometheus.ExponentialBuckets(0.1, 2, 12),
	})

	childTerminates = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "child_terminate_total",
		Help:      "Signals delivered to fetch child process groups.",
	}, []string{"signal", "outcome"})

	childWaits = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "child_wait_total",
		Help:      "Fetch child reap outcomes.",
	}, []string{"outcome"})
)

func IncRecordRead(spec string)  { recordsRead.WithLabelValues(spec).Inc() }
func IncUnknownSpec(spec string) { unknownSpecs.WithLabelValues(spec).Inc() }
func IncParseError(spec string)  { parseErrors.WithLabelValues(spec).Inc() }

func AddRowsWritten(table string, n int) {
	rowsWritten.WithLabelValues(table).Add(float64(n))
}

func IncRetry(code int) {
	retries.WithLabelValues(strconv.Itoa(code)).Inc()
}

func ObserveCycle(d time.Duration) {
	cycleDuration.Observe(d.Seconds())
}

func IncChildTerminate(signal, outcome string) {
	childTerminates.WithLabelValues(signal, outcome).Inc()
}

func IncChildWait(outcome string) {
	childWaits.WithLabelValues(outcome).Inc()
}

// Handler serves the default registry for scraping.
func Handler() http.Handler {
	return promhttp.Handler()
}
