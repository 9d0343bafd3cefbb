package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for query execution.
type Metrics struct {
	// Upstream request metrics.
	Requests        *prometheus.CounterVec // labels: outcome={success,error,status}
	RequestDuration prometheus.Histogram
	ResponseBytes   prometheus.Histogram

	ParameterErrors prometheus.Counter

	// Persist branch.
	FilesWritten    prometheus.Counter
	FileWriteErrors prometheus.Counter

	ResultsPublished prometheus.Counter
}

// NewMetrics creates and registers all query metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "usgs_query",
			Name:      "requests_total",
			Help:      "FDSN event service requests by outcome.",
		}, []string{"outcome"}),
		RequestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "usgs_query",
			Name:      "request_duration_seconds",
			Help:      "FDSN event service request duration in seconds.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),
		ResponseBytes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "usgs_query",
			Name:      "response_bytes",
			Help:      "Size of successful response bodies.",
			Buckets:   prometheus.ExponentialBuckets(1024, 4, 8),
		}),
		ParameterErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "usgs_query",
			Name:      "parameter_errors_total",
			Help:      "Queries rejected for unrecognized parameters.",
		}),
		FilesWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "usgs_query",
			Name:      "files_written_total",
			Help:      "Results persisted to disk.",
		}),
		FileWriteErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "usgs_query",
			Name:      "file_write_errors_total",
			Help:      "Failed attempts to persist a result.",
		}),
		ResultsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "usgs_query",
			Name:      "results_published_total",
			Help:      "In-memory results published to Kafka.",
		}),
	}

	prometheus.MustRegister(
		m.Requests,
		m.RequestDuration,
		m.ResponseBytes,
		m.ParameterErrors,
		m.FilesWritten,
		m.FileWriteErrors,
		m.ResultsPublished,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		Requests:         prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "usgs_query", Name: "requests_total"}, []string{"outcome"}),
		RequestDuration:  prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "usgs_query", Name: "request_duration_seconds"}),
		ResponseBytes:    prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "usgs_query", Name: "response_bytes"}),
		ParameterErrors:  prometheus.NewCounter(prometheus.CounterOpts{Namespace: "usgs_query", Name: "parameter_errors_total"}),
		FilesWritten:     prometheus.NewCounter(prometheus.CounterOpts{Namespace: "usgs_query", Name: "files_written_total"}),
		FileWriteErrors:  prometheus.NewCounter(prometheus.CounterOpts{Namespace: "usgs_query", Name: "file_write_errors_total"}),
		ResultsPublished: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "usgs_query", Name: "results_published_total"}),
	}
}

// WriteTextfile dumps the default registry in the Prometheus text format,
// for pickup by the node_exporter textfile collector.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
