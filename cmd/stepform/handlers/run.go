package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/imamik/stepform/internal/form"
	"github.com/imamik/stepform/internal/ui/prompt"
	"github.com/imamik/stepform/internal/ui/tui"
	"github.com/imamik/stepform/internal/wizard"
)

// Factory function variables for run - can be replaced in tests.
var (
	// loadAnswers reads a prefill or answers file.
	loadAnswers = form.LoadAnswers

	// runTUI runs the full-screen wizard.
	runTUI = func(ctx context.Context, ctrl *wizard.Controller, opts tui.Options) (int, error) {
		return tui.Run(ctx, ctrl, opts)
	}

	// runPrompt runs the line-mode wizard.
	runPrompt = func(ctx context.Context, ctrl *wizard.Controller, opts prompt.Options) (int, error) {
		return prompt.New(ctrl, opts).Run(ctx)
	}
)

// RunOptions configures Run.
type RunOptions struct {
	ConfigPath  string
	LogFile     string
	PrefillPath string
	// Prompt forces the line-mode wizard.
	Prompt bool
	// Accessible runs the line-mode wizard in screen-reader mode.
	Accessible bool
}

// Run starts an interactive wizard session. The full-screen UI is used when
// stdout is a terminal, otherwise the line-mode prompts.
func Run(ctx context.Context, opts RunOptions) error {
	var initial form.State
	if opts.PrefillPath != "" {
		var err error
		initial, err = loadAnswers(opts.PrefillPath)
		if err != nil {
			return fmt.Errorf("failed to load prefill: %w", err)
		}
	}

	useTUI := !opts.Prompt && !opts.Accessible && isInteractiveTTY()

	s, err := openSession(ctx, sessionOptions{
		configPath: opts.ConfigPath,
		logFile:    opts.LogFile,
		deferLogs:  useTUI,
	})
	if err != nil {
		return err
	}
	defer s.close()

	ctrl := s.controller(initial)
	timeout := s.cfg.SubmitTimeout.Duration()

	mode := "prompt"
	if useTUI {
		mode = "tui"
	}
	s.log.V(1).Info("starting wizard", "mode", mode, "sinks", s.cfg.EnabledSinks(), "prefilled", !initial.IsEmpty())

	var submitted int
	if useTUI {
		submitted, err = runTUI(ctx, ctrl, tui.Options{SubmitTimeout: timeout})
	} else {
		submitted, err = runPrompt(ctx, ctrl, prompt.Options{
			Accessible:    opts.Accessible,
			SubmitTimeout: timeout,
		})
	}

	if errors.Is(err, huh.ErrUserAborted) {
		s.log.V(1).Info("wizard aborted", "submitted", submitted)
		printSessionSummary(submitted)
		return nil
	}
	if err != nil {
		return err
	}

	printSessionSummary(submitted)
	return nil
}

func printSessionSummary(submitted int) {
	switch submitted {
	case 0:
		fmt.Println("No forms submitted.")
	case 1:
		fmt.Println("1 form submitted.")
	default:
		fmt.Printf("%d forms submitted.\n", submitted)
	}
}
