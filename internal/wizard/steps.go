package wizard

import (
	"fmt"

	"github.com/imamik/stepform/internal/form"
)

// Step is the 1-based index of a wizard screen.
type Step int

// Wizard steps.
const (
	StepPersonal     Step = 1
	StepProfessional Step = 2
	StepReview       Step = 3
)

// StepInfo describes one wizard screen.
type StepInfo struct {
	ID    Step
	Title string
}

// Steps lists the screens in order.
var Steps = []StepInfo{
	{ID: StepPersonal, Title: "Personal Information"},
	{ID: StepProfessional, Title: "Professional Details"},
	{ID: StepReview, Title: "Review & Submit"},
}

// Title returns the screen title for s.
func (s Step) Title() string {
	for _, info := range Steps {
		if info.ID == s {
			return info.Title
		}
	}
	return fmt.Sprintf("Step %d", int(s))
}

// Fields returns the inputs shown on s. The review step has none.
func (s Step) Fields() []form.Spec {
	return form.FieldsForStep(int(s))
}

// StepState is the progress indicator state of a screen.
type StepState string

// Progress indicator states.
const (
	StepComplete StepState = "complete"
	StepCurrent  StepState = "current"
	StepUpcoming StepState = "upcoming"
)

// StepStatus pairs a screen with its indicator state.
type StepStatus struct {
	StepInfo
	State StepState
}

// Progress derives the indicator for every screen from the current step.
// After submit every screen is complete.
func Progress(current Step, submitted bool) []StepStatus {
	out := make([]StepStatus, 0, len(Steps))
	for _, info := range Steps {
		st := StepUpcoming
		switch {
		case submitted || info.ID < current:
			st = StepComplete
		case info.ID == current:
			st = StepCurrent
		}
		out = append(out, StepStatus{StepInfo: info, State: st})
	}
	return out
}

// State is the navigation state of a session.
type State struct {
	Step      Step
	Submitted bool
}

func (s State) String() string {
	if s.Submitted {
		return "submitted"
	}
	return fmt.Sprintf("step %d (%s)", int(s.Step), s.Step.Title())
}
