package metrics

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/stepform/internal/form"
	"github.com/imamik/stepform/internal/wizard"
)

func TestRecorder_WithController(t *testing.T) {
	m := New()
	ctx := context.Background()
	c := wizard.New(nil, wizard.WithRecorder(m))

	require.Error(t, c.Advance(ctx))
	require.NoError(t, c.UpdateField("firstName", "Ada"))
	require.NoError(t, c.UpdateField("lastName", "Lovelace"))
	require.NoError(t, c.UpdateField("email", "ada@example.com"))
	require.NoError(t, c.Advance(ctx))
	require.Error(t, c.Submit(ctx))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.transitionsTotal.WithLabelValues("advance", "blocked")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.transitionsTotal.WithLabelValues("advance", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.transitionsTotal.WithLabelValues("submit", "invalid")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.validationFailures.WithLabelValues("email")))
}

func TestInstrument(t *testing.T) {
	m := New()
	boom := errors.New("boom")
	calls := 0
	s := m.Instrument("file", wizard.SinkFunc(func(context.Context, form.State) error {
		calls++
		if calls > 1 {
			return boom
		}
		return nil
	}))

	require.NoError(t, s.Submit(context.Background(), form.State{}))
	assert.ErrorIs(t, s.Submit(context.Background(), form.State{}), boom)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.submissionsTotal.WithLabelValues("file", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.submissionsTotal.WithLabelValues("file", "error")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.submitDurationSeconds))

	named, ok := s.(interface{ Name() string })
	require.True(t, ok)
	assert.Equal(t, "file", named.Name())
}

func TestWriteTextfile(t *testing.T) {
	m := New()
	m.RecordTransition("reset", "ok")

	path := filepath.Join(t.TempDir(), "stepform.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `stepform_wizard_transitions_total{event="reset",result="ok"} 1`), string(data))
}
