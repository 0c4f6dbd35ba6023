package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"DEBUG", DebugLevel},
		{"debug", DebugLevel},
		{"info", InfoLevel},
		{"Warn", WarnLevel},
		{"warning", WarnLevel},
		{"ERROR", ErrorLevel},
		{"bogus", InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
	assert.Equal(t, "UNKNOWN", Level(9).String())
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []entry {
	t.Helper()
	var out []entry
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var e entry
		require.NoError(t, json.Unmarshal([]byte(line), &e), "line %q", line)
		out = append(out, e)
	}
	return out
}

func TestJSONLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := NewJSONLogger(&buf, WarnLevel)

	l.Debug("dropped")
	l.Info("dropped")
	l.Warn("kept", Line(3))
	l.Error("kept too", Error(errors.New("boom")))

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "WARN", entries[0].Level)
	assert.Equal(t, float64(3), entries[0].Fields["line"])
	assert.Equal(t, "boom", entries[1].Fields["error"])

	l.SetLevel(DebugLevel)
	assert.Equal(t, DebugLevel, l.GetLevel())
}

func TestJSONLogger_With(t *testing.T) {
	var buf bytes.Buffer
	parent := NewJSONLogger(&buf, InfoLevel)
	child := parent.With(Component("relay"), Levels(25))

	child.Info("scored", Sequence("029A"))
	parent.Info("plain")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "relay", entries[0].Fields["component"])
	assert.Equal(t, float64(25), entries[0].Fields["levels"])
	assert.Equal(t, "029A", entries[0].Fields["sequence"])
	assert.Nil(t, entries[1].Fields, "parent must not inherit child fields")
}

func TestTimedOperation(t *testing.T) {
	var buf bytes.Buffer
	l := NewJSONLogger(&buf, InfoLevel)

	StartTimer(l, "score", Levels(2)).End(Int64("total", 126384))
	StartTimer(l, "score", Levels(2)).EndError(errors.New("bad line"))

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, float64(126384), entries[0].Fields["total"])
	assert.Contains(t, entries[0].Fields, "latency")
	assert.Equal(t, "ERROR", entries[1].Level)
	assert.Equal(t, "bad line", entries[1].Fields["error"])
}

func TestNopLogger(t *testing.T) {
	var l Logger = NopLogger{}
	l.Info("nothing")
	assert.Equal(t, l, l.With(RunID("x")))
	assert.Equal(t, InfoLevel, l.GetLevel())
	assert.Nil(t, Error(nil).Value)
}
