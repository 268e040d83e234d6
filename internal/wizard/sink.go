package wizard

import (
	"context"

	"github.com/imamik/stepform/internal/form"
)

// Sink receives the finished profile on submit.
type Sink interface {
	Submit(ctx context.Context, profile form.State) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, profile form.State) error

// Submit calls f.
func (f SinkFunc) Submit(ctx context.Context, profile form.State) error {
	return f(ctx, profile)
}

// Discard is a sink that accepts every submission and drops it.
var Discard Sink = SinkFunc(func(context.Context, form.State) error { return nil })

// Recorder observes controller activity, typically for metrics.
type Recorder interface {
	RecordTransition(event, result string)
	RecordValidationFailure(field string)
}

// Transition results passed to Recorder.RecordTransition.
const (
	ResultOK      = "ok"
	ResultBlocked = "blocked"
	ResultInvalid = "invalid"
	ResultFailed  = "failed"
)

type nopRecorder struct{}

func (nopRecorder) RecordTransition(string, string)  {}
func (nopRecorder) RecordValidationFailure(string) {}
