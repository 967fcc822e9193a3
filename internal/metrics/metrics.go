// Package metrics collects generation statistics with prometheus.
package metrics

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/thiagodp/better-randstr/randstr"
)

const (
	// ReasonControl labels rejected control characters.
	ReasonControl = "control"
	// ReasonUnacceptable labels candidates refused by the acceptable predicate.
	ReasonUnacceptable = "unacceptable"
	// ReasonOverflow labels replacements that did not fit the target length.
	ReasonOverflow = "overflow"

	// FailureInvalidOption labels calls rejected by option validation.
	FailureInvalidOption = "invalid_option"
	// FailureTooManyAttempts labels calls that hit the attempt cap.
	FailureTooManyAttempts = "too_many_attempts"
	// FailureOther labels every other error.
	FailureOther = "other"
)

// Collector holds the generation metrics on a private registry.
type Collector struct {
	registry *prometheus.Registry

	generated prometheus.Counter
	rejected  *prometheus.CounterVec
	failures  *prometheus.CounterVec
	length    prometheus.Histogram
}

// New creates a collector whose metric names start with namespace.
func New(namespace string) *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		generated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generated_total",
			Help:      "Number of generated strings.",
		}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejected_candidates_total",
			Help:      "Number of discarded candidate characters, by reason.",
		}, []string{"reason"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "failures_total",
			Help:      "Number of failed generations, by reason.",
		}, []string{"reason"}),
		length: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "length_characters",
			Help:      "Length of generated strings in characters.",
			Buckets:   []float64{0, 8, 16, 32, 64, 128, 256, 1024, 4096},
		}),
	}

	c.registry.MustRegister(c.generated, c.rejected, c.failures, c.length)

	return c
}

// Observe records a successful generation.
func (c *Collector) Observe(stats randstr.Stats) {
	c.generated.Inc()
	c.length.Observe(float64(stats.Length))
	c.observeRejections(stats.Rejected)
}

// Fail records a failed generation. Rejections seen before the failure are
// recorded as well.
func (c *Collector) Fail(err error, stats randstr.Stats) {
	c.failures.WithLabelValues(FailureReason(err)).Inc()
	c.observeRejections(stats.Rejected)
}

func (c *Collector) observeRejections(r randstr.Rejections) {
	c.rejected.WithLabelValues(ReasonControl).Add(float64(r.Control))
	c.rejected.WithLabelValues(ReasonUnacceptable).Add(float64(r.Unacceptable))
	c.rejected.WithLabelValues(ReasonOverflow).Add(float64(r.Overflow))
}

// Gatherer returns the collector registry merged with the default registry.
func (c *Collector) Gatherer() prometheus.Gatherer {
	return prometheus.Gatherers{c.registry, prometheus.DefaultGatherer}
}

// Handler serves the metrics of Gatherer in the prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.Gatherer(), promhttp.HandlerOpts{})
}

// WriteTextfile writes the collector metrics to path, for the node exporter
// textfile collector.
func (c *Collector) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, c.registry) //nolint:wrapcheck
}

// FailureReason maps an error to its failure label.
func FailureReason(err error) string {
	switch {
	case errors.Is(err, randstr.ErrInvalidOption):
		return FailureInvalidOption
	case errors.Is(err, randstr.ErrTooManyAttempts):
		return FailureTooManyAttempts
	default:
		return FailureOther
	}
}
