// Package metrics exposes Prometheus metrics for wizard sessions and
// submission sinks.
package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/imamik/stepform/internal/form"
	"github.com/imamik/stepform/internal/wizard"
)

// Metrics holds the collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	transitionsTotal      *prometheus.CounterVec
	validationFailures    *prometheus.CounterVec
	submissionsTotal      *prometheus.CounterVec
	submitDurationSeconds *prometheus.HistogramVec
}

// New creates and registers the collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		transitionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "stepform",
				Subsystem: "wizard",
				Name:      "transitions_total",
				Help:      "Total number of wizard transitions by event and result",
			},
			[]string{"event", "result"},
		),

		validationFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "stepform",
				Subsystem: "wizard",
				Name:      "validation_failures_total",
				Help:      "Total number of field validation failures that blocked a transition",
			},
			[]string{"field"},
		),

		submissionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "stepform",
				Subsystem: "sink",
				Name:      "submissions_total",
				Help:      "Total number of submissions handed to a sink by result",
			},
			[]string{"sink", "result"},
		),

		submitDurationSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "stepform",
				Subsystem: "sink",
				Name:      "submit_duration_seconds",
				Help:      "Duration of sink submissions in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8), // 1ms to ~16s
			},
			[]string{"sink"},
		),
	}

	m.registry.MustRegister(
		m.transitionsTotal,
		m.validationFailures,
		m.submissionsTotal,
		m.submitDurationSeconds,
	)
	return m
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordTransition implements wizard.Recorder.
func (m *Metrics) RecordTransition(event, result string) {
	m.transitionsTotal.WithLabelValues(event, result).Inc()
}

// RecordValidationFailure implements wizard.Recorder.
func (m *Metrics) RecordValidationFailure(field string) {
	m.validationFailures.WithLabelValues(field).Inc()
}

func (m *Metrics) recordSubmission(sink string, err error, duration time.Duration) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.submissionsTotal.WithLabelValues(sink, result).Inc()
	m.submitDurationSeconds.WithLabelValues(sink).Observe(duration.Seconds())
}

// Instrument wraps s so every submission is counted and timed under name.
func (m *Metrics) Instrument(name string, s wizard.Sink) wizard.Sink {
	return &instrumented{name: name, sink: s, metrics: m}
}

// WriteTextfile writes the current values in the node_exporter textfile
// collector format.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}

type instrumented struct {
	name    string
	sink    wizard.Sink
	metrics *Metrics
}

func (i *instrumented) Name() string { return i.name }

func (i *instrumented) Submit(ctx context.Context, p form.State) error {
	start := time.Now()
	err := i.sink.Submit(ctx, p)
	i.metrics.recordSubmission(i.name, err, time.Since(start))
	return err
}
