package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zapcore.Level
		wantErr bool
	}{
		{"", zapcore.InfoLevel, false},
		{"debug", zapcore.DebugLevel, false},
		{"INFO", zapcore.InfoLevel, false},
		{"warn", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"trace", zapcore.InfoLevel, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, flush, err := New(Options{Level: "info", Format: "json", Writer: &buf})
	require.NoError(t, err)

	log.WithName("sink").Info("Form submitted", "firstName", "Ada")
	log.V(1).Info("hidden at info")
	log.Error(errors.New("boom"), "delivery failed")
	flush()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "Form submitted", entry["msg"])
	assert.Equal(t, "Ada", entry["firstName"])
	assert.Equal(t, "sink", entry["component"])
	assert.Equal(t, "INFO", entry["level"])

	require.NoError(t, json.Unmarshal([]byte(lines[1]), &entry))
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "boom", entry["error"])
}

func TestNew_ConsoleDebug(t *testing.T) {
	var buf bytes.Buffer
	log, flush, err := New(Options{Level: "debug", Writer: &buf})
	require.NoError(t, err)

	log.V(1).Info("step advanced", "to", 2)
	flush()

	out := buf.String()
	assert.Contains(t, out, " | DEBUG | step advanced")
	assert.Contains(t, out, `"to": 2`)
}

func TestNew_InvalidOptions(t *testing.T) {
	_, _, err := New(Options{Level: "loud"})
	require.Error(t, err)

	_, _, err = New(Options{Format: "xml"})
	require.Error(t, err)
}
