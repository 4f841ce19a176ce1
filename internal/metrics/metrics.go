// Package metrics exposes Prometheus collectors for the dashboard server.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DatasetRecords = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "launchdash_dataset_records",
		Help: "Number of launch records loaded at startup",
	})

	DatasetPayloadKg = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "launchdash_dataset_payload_kg",
		Help: "Payload mass bounds of the loaded dataset",
	}, []string{"bound"})

	ChartEvaluations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "launchdash_chart_evaluations_total",
		Help: "The total number of chart handler evaluations",
	}, []string{"output", "status"})

	ChartEvaluationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "launchdash_chart_evaluation_duration_seconds",
		Help:    "Duration of chart handler evaluations",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
	}, []string{"output"})

	UpdateRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "launchdash_update_requests_total",
		Help: "The total number of input change notifications received",
	}, []string{"status"})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "launchdash_http_requests_total",
		Help: "The total number of HTTP requests served",
	}, []string{"method", "code"})
)

// ObserveDataset records the size and payload bounds of a loaded dataset.
func ObserveDataset(records int, minKg, maxKg float64) {
	DatasetRecords.Set(float64(records))
	DatasetPayloadKg.WithLabelValues("min").Set(minKg)
	DatasetPayloadKg.WithLabelValues("max").Set(maxKg)
}

// ObserveEvaluation records one chart handler run.
func ObserveEvaluation(output string, started time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	ChartEvaluations.WithLabelValues(output, status).Inc()
	ChartEvaluationDuration.WithLabelValues(output).Observe(time.Since(started).Seconds())
}

// ObserveHTTPRequest counts a served request by method and status code.
func ObserveHTTPRequest(method string, code int) {
	HTTPRequests.WithLabelValues(method, strconv.Itoa(code)).Inc()
}
