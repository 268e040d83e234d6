package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/imamik/stepform/internal/form"
	"github.com/imamik/stepform/internal/wizard"
)

func renderView(m Model) string {
	var b strings.Builder

	// Header
	renderHeader(&b, m)

	// Progress indicator
	renderProgress(&b, m)

	switch {
	case m.ctrl.Submitted():
		renderSuccess(&b)
	case m.ctrl.Step() == wizard.StepReview:
		renderReview(&b, m)
	default:
		renderInputs(&b, m)
	}

	// Errors
	if m.Err != nil {
		renderError(&b, m.Err)
	}

	// Footer
	renderFooter(&b, m)

	return b.String()
}

func renderHeader(b *strings.Builder, m Model) {
	b.WriteString(titleStyle.Render("stepform: Profile Wizard"))
	if m.Submissions > 0 {
		b.WriteString(" ")
		b.WriteString(dimStyle.Render(fmt.Sprintf("(%d submitted)", m.Submissions)))
	}
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Tell us about yourself in three short steps."))
	b.WriteString("\n\n")
}

func renderProgress(b *strings.Builder, m Model) {
	for _, st := range m.ctrl.Progress() {
		label := fmt.Sprintf("%d %s", st.ID, st.Title)
		switch st.State {
		case wizard.StepComplete:
			fmt.Fprintf(b, "  %s %s\n", readyStyle.Render(checkMark), label)
		case wizard.StepCurrent:
			fmt.Fprintf(b, "  %s %s\n", warningStyle.Render(currentMark), activeStyle.Render(label))
		default:
			fmt.Fprintf(b, "  %s %s\n", dimStyle.Render(pending), dimStyle.Render(label))
		}
	}
}

func renderInputs(b *strings.Builder, m Model) {
	b.WriteString(sectionStyle.Render("  " + m.ctrl.Step().Title()))
	b.WriteString("\n")

	for i, in := range m.inputs {
		label := in.spec.Label
		if in.spec.Required {
			label += " *"
		}
		if i == m.focus {
			label = activeStyle.Render(label)
		} else {
			label = labelStyle.Render(label)
		}
		fmt.Fprintf(b, "\n  %s\n", label)
		for _, line := range strings.Split(in.view(), "\n") {
			fmt.Fprintf(b, "  %s\n", line)
		}
	}
}

func renderReview(b *strings.Builder, m Model) {
	b.WriteString(sectionStyle.Render("  " + wizard.StepReview.Title()))
	b.WriteString("\n\n")

	rows := m.ctrl.Review()
	width := 0
	for _, r := range rows {
		if len(r.Label) > width {
			width = len(r.Label)
		}
	}
	for _, r := range rows {
		value := r.Value
		if value == wizard.NotAvailable {
			value = dimStyle.Render(value)
		}
		// The bio may span lines; indent continuation lines under the value.
		value = strings.ReplaceAll(value, "\n", "\n  "+strings.Repeat(" ", width+2))
		fmt.Fprintf(b, "  %s  %s\n", labelStyle.Render(fmt.Sprintf("%-*s", width, r.Label)), value)
	}

	if m.Submitting {
		fmt.Fprintf(b, "\n  %s %s\n", warningStyle.Render(spinner), "Submitting...")
	}
}

func renderSuccess(b *strings.Builder) {
	b.WriteString("\n")
	fmt.Fprintf(b, "  %s %s\n", readyStyle.Render(checkMark), readyStyle.Render("Success!"))
	b.WriteString("  Your form has been submitted successfully.\n")
}

func renderError(b *strings.Builder, err error) {
	b.WriteString("\n")
	var verr *form.ValidationError
	if errors.As(err, &verr) {
		fmt.Fprintf(b, "  %s %s\n", failedStyle.Render(crossMark), failedStyle.Render("Please fix the highlighted fields:"))
		for _, fe := range verr.Fields {
			fmt.Fprintf(b, "       %s\n", failedStyle.Render(fe.Error()))
		}
		return
	}
	fmt.Fprintf(b, "  %s %s\n", failedStyle.Render(crossMark), failedStyle.Render(err.Error()))
}

func renderFooter(b *strings.Builder, m Model) {
	var hints []string
	switch {
	case m.ctrl.Submitted():
		hints = []string{"n submit new form", "q quit"}
	case m.ctrl.Step() == wizard.StepReview:
		hints = []string{"enter confirm", "esc back", "ctrl+c quit"}
	case m.ctrl.CanRetreat():
		hints = []string{"tab next field", "shift+tab previous", "ctrl+s continue", "esc back", "ctrl+c quit"}
	default:
		hints = []string{"tab next field", "shift+tab previous", "ctrl+s continue", "ctrl+c quit"}
	}
	b.WriteString(footerStyle.Render("  " + strings.Join(hints, " | ")))
	b.WriteString("\n")
}
