package handlers

import (
	"github.com/go-logr/logr"

	"github.com/imamik/stepform/internal/metrics"
)

func discardLogger() logr.Logger {
	return logr.Discard()
}

func newTestMetrics() *metrics.Metrics {
	return metrics.New()
}
