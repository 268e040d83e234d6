package sink

import (
	"context"
	"fmt"

	"github.com/imamik/stepform/internal/form"
	"github.com/imamik/stepform/internal/wizard"
)

// Multi hands a submission to each sink in order and stops at the first
// failure.
type Multi []wizard.Sink

// Name implements Namer.
func (m Multi) Name() string { return "multi" }

// Submit implements wizard.Sink.
func (m Multi) Submit(ctx context.Context, p form.State) error {
	for i, s := range m {
		if err := s.Submit(ctx, p); err != nil {
			return fmt.Errorf("%s: %w", nameOf(s, i), err)
		}
	}
	return nil
}

func nameOf(s wizard.Sink, i int) string {
	if n, ok := s.(Namer); ok {
		return n.Name()
	}
	return fmt.Sprintf("sink %d", i)
}
