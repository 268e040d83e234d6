package wizard

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-logr/logr"
	"github.com/looplab/fsm"

	"github.com/imamik/stepform/internal/form"
)

// FSM states.
const (
	stateStep1     = "step1"
	stateStep2     = "step2"
	stateStep3     = "step3"
	stateSubmitted = "submitted"
)

// FSM events.
const (
	EventAdvance = "advance"
	EventRetreat = "retreat"
	EventSubmit  = "submit"
	EventReset   = "reset"
)

// Controller owns the profile record and navigation state of one session.
type Controller struct {
	fsm     *fsm.FSM
	profile form.State
	sink    Sink
	log     logr.Logger
	rec     Recorder
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for transition and submission events.
func WithLogger(log logr.Logger) Option {
	return func(c *Controller) {
		c.log = log
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r Recorder) Option {
	return func(c *Controller) {
		if r != nil {
			c.rec = r
		}
	}
}

// WithInitialForm prefills the record. The session still starts on step 1
// and Reset still clears every field.
func WithInitialForm(p form.State) Option {
	return func(c *Controller) {
		c.profile = p
	}
}

// New creates a controller on step 1 with an empty record. A nil sink
// discards submissions.
func New(sink Sink, opts ...Option) *Controller {
	if sink == nil {
		sink = Discard
	}
	c := &Controller{
		sink: sink,
		log:  logr.Discard(),
		rec:  nopRecorder{},
	}
	for _, opt := range opts {
		opt(c)
	}

	c.fsm = fsm.NewFSM(
		stateStep1,
		fsm.Events{
			{Name: EventAdvance, Src: []string{stateStep1}, Dst: stateStep2},
			{Name: EventAdvance, Src: []string{stateStep2}, Dst: stateStep3},
			{Name: EventRetreat, Src: []string{stateStep2}, Dst: stateStep1},
			{Name: EventRetreat, Src: []string{stateStep3}, Dst: stateStep2},
			{Name: EventSubmit, Src: []string{stateStep3}, Dst: stateSubmitted},
			{Name: EventReset, Src: []string{stateStep1, stateStep2, stateStep3, stateSubmitted}, Dst: stateStep1},
		},
		fsm.Callbacks{
			"before_" + EventAdvance: c.beforeAdvance,
			"before_" + EventSubmit:  c.beforeSubmit,
			"enter_state": func(_ context.Context, e *fsm.Event) {
				c.log.V(1).Info("wizard transition", "event", e.Event, "from", e.Src, "to", e.Dst)
			},
		},
	)

	return c
}

// UpdateField replaces the named field. No validation happens here.
func (c *Controller) UpdateField(name, value string) error {
	f, err := form.Lookup(name)
	if err != nil {
		return err
	}
	c.profile = c.profile.With(f, value)
	return nil
}

// Set is the typed form of UpdateField.
func (c *Controller) Set(f form.Field, value string) error {
	if !f.Valid() {
		return fmt.Errorf("%w: %q", form.ErrUnknownField, string(f))
	}
	c.profile = c.profile.With(f, value)
	return nil
}

// Advance moves from step 1 or 2 to the next step once every field of the
// current step is valid. A blocked advance returns *form.ValidationError.
func (c *Controller) Advance(ctx context.Context) error {
	return c.fire(ctx, EventAdvance)
}

// Retreat moves back one step from step 2 or 3.
func (c *Controller) Retreat(ctx context.Context) error {
	return c.fire(ctx, EventRetreat)
}

// Submit hands the record to the sink and marks the session submitted. It
// is only allowed on the review step.
func (c *Controller) Submit(ctx context.Context) error {
	return c.fire(ctx, EventSubmit)
}

// Reset returns the session to step 1 with an empty record, from any state.
func (c *Controller) Reset(ctx context.Context) error {
	if err := c.fire(ctx, EventReset); err != nil {
		return err
	}
	c.profile = form.State{}
	return nil
}

// Step returns the current step. A submitted session stays on step 3.
func (c *Controller) Step() Step {
	switch c.fsm.Current() {
	case stateStep2:
		return StepProfessional
	case stateStep3, stateSubmitted:
		return StepReview
	default:
		return StepPersonal
	}
}

// Submitted reports whether the session was submitted.
func (c *Controller) Submitted() bool {
	return c.fsm.Current() == stateSubmitted
}

// State returns the navigation state.
func (c *Controller) State() State {
	return State{Step: c.Step(), Submitted: c.Submitted()}
}

// Form returns a copy of the record.
func (c *Controller) Form() form.State {
	return c.profile
}

// CanAdvance reports whether Advance is allowed in the current state,
// ignoring field validation.
func (c *Controller) CanAdvance() bool {
	return c.fsm.Can(EventAdvance)
}

// CanRetreat reports whether Retreat is allowed in the current state.
func (c *Controller) CanRetreat() bool {
	return c.fsm.Can(EventRetreat)
}

// Progress returns the progress indicator for the current state.
func (c *Controller) Progress() []StepStatus {
	return Progress(c.Step(), c.Submitted())
}

// Review returns the review rows for the current record.
func (c *Controller) Review() []ReviewEntry {
	return Review(c.profile)
}

func (c *Controller) beforeAdvance(_ context.Context, e *fsm.Event) {
	if err := form.ValidateStep(c.profile, stepOf(e.Src)); err != nil {
		e.Cancel(err)
	}
}

// beforeSubmit re-checks the input steps, since fields stay editable after
// they were left, then delivers the record.
func (c *Controller) beforeSubmit(ctx context.Context, e *fsm.Event) {
	for _, step := range []int{int(StepPersonal), int(StepProfessional)} {
		if err := form.ValidateStep(c.profile, step); err != nil {
			e.Cancel(err)
			return
		}
	}

	if err := c.sink.Submit(ctx, c.profile); err != nil {
		e.Cancel(fmt.Errorf("%w: %w", ErrSinkFailed, err))
		return
	}
	c.log.Info("profile submitted", "email", c.profile.Email)
}

// fire sends event to the state machine and maps its errors onto the
// controller's error kinds.
func (c *Controller) fire(ctx context.Context, event string) error {
	from := c.fsm.Current()
	err := c.fsm.Event(ctx, event)
	if err == nil {
		c.rec.RecordTransition(event, ResultOK)
		return nil
	}

	var noTransition fsm.NoTransitionError
	if errors.As(err, &noTransition) && noTransition.Err == nil {
		c.rec.RecordTransition(event, ResultOK)
		return nil
	}

	var canceled fsm.CanceledError
	if errors.As(err, &canceled) && canceled.Err != nil {
		var ve *form.ValidationError
		if errors.As(canceled.Err, &ve) {
			c.rec.RecordTransition(event, ResultBlocked)
			for _, fe := range ve.Fields {
				c.rec.RecordValidationFailure(string(fe.Field))
			}
			c.log.V(1).Info("wizard transition blocked", "event", event, "state", from, "field", string(ve.First()))
			return ve
		}
		c.rec.RecordTransition(event, ResultFailed)
		c.log.Error(canceled.Err, "wizard transition failed", "event", event, "state", from)
		return canceled.Err
	}

	var invalid fsm.InvalidEventError
	if errors.As(err, &invalid) {
		c.rec.RecordTransition(event, ResultInvalid)
		return fmt.Errorf("%w: cannot %s from %s", ErrInvalidTransition, event, from)
	}

	c.rec.RecordTransition(event, ResultFailed)
	return fmt.Errorf("%s: %w", event, err)
}

func stepOf(state string) int {
	switch state {
	case stateStep1:
		return int(StepPersonal)
	case stateStep2:
		return int(StepProfessional)
	default:
		return int(StepReview)
	}
}
