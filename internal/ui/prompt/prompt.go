package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/imamik/stepform/internal/form"
	"github.com/imamik/stepform/internal/wizard"
)

// DefaultSubmitTimeout bounds a single Submit when Options leaves it unset.
const DefaultSubmitTimeout = 30 * time.Second

// Runner runs a single huh form. Tests replace it to script answers.
type Runner func(ctx context.Context, f *huh.Form) error

// RunForm is the default Runner.
func RunForm(ctx context.Context, f *huh.Form) error {
	return f.RunWithContext(ctx)
}

// Options configures a Prompter.
type Options struct {
	Accessible    bool
	SubmitTimeout time.Duration
	// Out receives status lines between forms. Nil means stdout.
	Out io.Writer
	// Run runs each form. Nil means RunForm.
	Run Runner
}

type action string

const (
	actionContinue action = "continue"
	actionBack     action = "back"
	actionConfirm  action = "confirm"
	actionNew      action = "new"
	actionQuit     action = "quit"
)

// Prompter drives a wizard.Controller through huh forms.
type Prompter struct {
	ctrl *wizard.Controller
	opts Options

	// Values bound to the form currently running.
	draft  form.State
	choice action
}

// New returns a Prompter for ctrl.
func New(ctrl *wizard.Controller, opts Options) *Prompter {
	if opts.SubmitTimeout <= 0 {
		opts.SubmitTimeout = DefaultSubmitTimeout
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Run == nil {
		opts.Run = RunForm
	}
	return &Prompter{ctrl: ctrl, opts: opts}
}

// Run shows screens until the user quits after a submission or aborts. It
// returns the number of forms submitted. Aborting with ctrl+c returns an
// error wrapping huh.ErrUserAborted.
func (p *Prompter) Run(ctx context.Context) (int, error) {
	submissions := 0
	for {
		var err error
		switch {
		case p.ctrl.Submitted():
			var quit bool
			quit, err = p.success(ctx)
			if err == nil && quit {
				return submissions, nil
			}
		case p.ctrl.Step() == wizard.StepReview:
			var submitted bool
			submitted, err = p.review(ctx)
			if submitted {
				submissions++
			}
		default:
			err = p.edit(ctx)
		}
		if err != nil {
			return submissions, err
		}
	}
}

// edit shows the inputs of step 1 or 2 and applies the chosen navigation.
// Inputs carry no validators so Back stays reachable with incomplete
// fields; Advance reports what blocks the step.
func (p *Prompter) edit(ctx context.Context) error {
	step := p.ctrl.Step()
	p.draft = p.ctrl.Form()
	p.choice = actionContinue

	var fields []huh.Field
	for _, spec := range step.Fields() {
		fields = append(fields, p.fieldInput(spec))
	}

	nav := []huh.Option[action]{huh.NewOption("Continue", actionContinue)}
	if p.ctrl.CanRetreat() {
		nav = append(nav, huh.NewOption("Back", actionBack))
	}
	fields = append(fields, huh.NewSelect[action]().
		Title("Next").
		Options(nav...).
		Value(&p.choice))

	f := huh.NewForm(
		huh.NewGroup(fields...).
			Title(step.Title()).
			Description(progressLine(p.ctrl.Progress())),
	)
	if err := p.runForm(ctx, f); err != nil {
		return err
	}

	for _, spec := range step.Fields() {
		if err := p.ctrl.Set(spec.Name, p.draft.Get(spec.Name)); err != nil {
			return err
		}
	}

	if p.choice == actionBack {
		return p.ctrl.Retreat(ctx)
	}

	err := p.ctrl.Advance(ctx)
	var verr *form.ValidationError
	if errors.As(err, &verr) {
		// Shown again on the next loop iteration with the same values.
		fmt.Fprintf(p.opts.Out, "[!!] %v\n", verr)
		return nil
	}
	return err
}

// review shows the summary and submits on confirm. A failed submission is
// reported and the review is shown again.
func (p *Prompter) review(ctx context.Context) (bool, error) {
	p.choice = actionConfirm

	f := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title(wizard.StepReview.Title()).
				Description(progressLine(p.ctrl.Progress())+"\n\n"+reviewTable(p.ctrl.Review())),
			huh.NewSelect[action]().
				Title("Submit this profile?").
				Options(
					huh.NewOption("Confirm", actionConfirm),
					huh.NewOption("Back", actionBack),
				).
				Value(&p.choice),
		),
	)
	if err := p.runForm(ctx, f); err != nil {
		return false, err
	}

	if p.choice == actionBack {
		return false, p.ctrl.Retreat(ctx)
	}

	sctx, cancel := context.WithTimeout(ctx, p.opts.SubmitTimeout)
	defer cancel()
	if err := p.ctrl.Submit(sctx); err != nil {
		if errors.Is(err, wizard.ErrSinkFailed) {
			fmt.Fprintf(p.opts.Out, "[!!] %v\n", err)
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// success shows the confirmation screen. It reports whether the user chose
// to quit.
func (p *Prompter) success(ctx context.Context) (bool, error) {
	p.choice = actionQuit

	f := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Success!").
				Description("Your form has been submitted successfully."),
			huh.NewSelect[action]().
				Title("What next?").
				Options(
					huh.NewOption("Submit new form", actionNew),
					huh.NewOption("Quit", actionQuit),
				).
				Value(&p.choice),
		),
	)
	if err := p.runForm(ctx, f); err != nil {
		return false, err
	}

	if p.choice == actionNew {
		return false, p.ctrl.Reset(ctx)
	}
	return true, nil
}

func (p *Prompter) runForm(ctx context.Context, f *huh.Form) error {
	f = f.WithAccessible(p.opts.Accessible).WithShowHelp(!p.opts.Accessible)
	if err := p.opts.Run(ctx, f); err != nil {
		return fmt.Errorf("wizard canceled: %w", err)
	}
	return nil
}

// fieldInput binds spec to the matching draft field.
func (p *Prompter) fieldInput(spec form.Spec) huh.Field {
	title := spec.Label
	if spec.Required {
		title += " *"
	}
	value := fieldPtr(&p.draft, spec.Name)

	if spec.Kind == form.KindMultiline {
		return huh.NewText().
			Title(title).
			Placeholder(spec.Placeholder).
			Lines(4).
			Value(value)
	}
	return huh.NewInput().
		Title(title).
		Placeholder(spec.Placeholder).
		Value(value)
}

func fieldPtr(s *form.State, f form.Field) *string {
	switch f {
	case form.FirstName:
		return &s.FirstName
	case form.LastName:
		return &s.LastName
	case form.Email:
		return &s.Email
	case form.Occupation:
		return &s.Occupation
	case form.Company:
		return &s.Company
	case form.City:
		return &s.City
	case form.Bio:
		return &s.Bio
	case form.Website:
		return &s.Website
	case form.LinkedIn:
		return &s.LinkedIn
	}
	return new(string)
}

func progressLine(steps []wizard.StepStatus) string {
	parts := make([]string, 0, len(steps))
	for _, st := range steps {
		mark := "[  ]"
		switch st.State {
		case wizard.StepComplete:
			mark = "[OK]"
		case wizard.StepCurrent:
			mark = "[>>]"
		}
		parts = append(parts, fmt.Sprintf("%s %d %s", mark, st.ID, st.Title))
	}
	return strings.Join(parts, "  ")
}

func reviewTable(rows []wizard.ReviewEntry) string {
	width := 0
	for _, r := range rows {
		if len(r.Label) > width {
			width = len(r.Label)
		}
	}
	var b strings.Builder
	for i, r := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		value := strings.ReplaceAll(r.Value, "\n", "\n"+strings.Repeat(" ", width+2))
		fmt.Fprintf(&b, "%-*s  %s", width, r.Label, value)
	}
	return b.String()
}
