package sink

import (
	"context"

	"github.com/go-logr/logr"

	"github.com/imamik/stepform/internal/form"
)

// Log writes every submission to a logger.
type Log struct {
	log logr.Logger
}

// NewLog creates a sink that logs submissions at info level.
func NewLog(log logr.Logger) *Log {
	return &Log{log: log}
}

// Name implements Namer.
func (l *Log) Name() string { return "log" }

// Submit implements wizard.Sink.
func (l *Log) Submit(_ context.Context, p form.State) error {
	kv := make([]any, 0, 2*len(form.Fields()))
	for _, spec := range form.Fields() {
		kv = append(kv, string(spec.Name), p.Get(spec.Name))
	}
	l.log.Info("Form submitted", kv...)
	return nil
}
