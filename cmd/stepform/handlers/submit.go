package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/imamik/stepform/internal/form"
	"github.com/imamik/stepform/internal/wizard"
)

// SubmitOptions configures Submit.
type SubmitOptions struct {
	ConfigPath  string
	AnswersPath string
	LogFile     string
	// DryRun validates and prints the review without delivering.
	DryRun bool
}

// Submit fills the wizard from an answers file and submits it without
// prompting. It walks the same transitions as an interactive session, so a
// record that would be blocked on screen is rejected here too.
func Submit(ctx context.Context, opts SubmitOptions) error {
	answers, err := loadAnswers(opts.AnswersPath)
	if err != nil {
		return fmt.Errorf("failed to load answers: %w", err)
	}

	s, err := openSession(ctx, sessionOptions{
		configPath: opts.ConfigPath,
		logFile:    opts.LogFile,
		noSinks:    opts.DryRun,
	})
	if err != nil {
		return err
	}
	defer s.close()

	ctrl := s.controller(answers)

	for ctrl.Step() != wizard.StepReview {
		if err := ctrl.Advance(ctx); err != nil {
			var verr *form.ValidationError
			if errors.As(err, &verr) {
				printBlocked(verr)
				return fmt.Errorf("answers are incomplete: %w", err)
			}
			return err
		}
	}

	printReview(ctrl.Review())

	if opts.DryRun {
		fmt.Println()
		fmt.Println("Dry run: nothing was submitted.")
		return nil
	}

	sctx, cancel := context.WithTimeout(ctx, s.cfg.SubmitTimeout.Duration())
	defer cancel()
	if err := ctrl.Submit(sctx); err != nil {
		return fmt.Errorf("submission failed: %w", err)
	}

	fmt.Println()
	fmt.Println("Success! Your form has been submitted successfully.")
	if sinks := s.cfg.EnabledSinks(); len(sinks) > 0 {
		fmt.Printf("  Delivered to: %s\n", strings.Join(sinks, ", "))
	}
	return nil
}

// printBlocked lists the fields that stopped the wizard.
func printBlocked(verr *form.ValidationError) {
	fmt.Printf("Step %d (%s) is incomplete:\n", verr.Step, wizard.Step(verr.Step).Title())
	for _, fe := range verr.Fields {
		fmt.Printf("  %s (%s): %v\n", form.Describe(fe.Field).Label, fe.Field, fe.Reason)
	}
}

// printReview prints the review table.
func printReview(rows []wizard.ReviewEntry) {
	width := 0
	for _, r := range rows {
		if len(r.Label) > width {
			width = len(r.Label)
		}
	}

	fmt.Println("Review")
	fmt.Println("------")
	for _, r := range rows {
		value := strings.ReplaceAll(r.Value, "\n", "\n"+strings.Repeat(" ", width+5))
		fmt.Printf("  %-*s  %s\n", width+1, r.Label+":", value)
	}
}
