package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatText, "text": FormatText, "JSON": FormatJSON} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFormat("logfmt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logfmt")
}

func TestOptions_Level(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want slog.Level
	}{
		{"default", Options{}, slog.LevelWarn},
		{"-v", Options{Verbosity: 1}, slog.LevelInfo},
		{"-vv", Options{Verbosity: 2}, slog.LevelDebug},
		{"-vvv", Options{Verbosity: 3}, LevelTrace},
		{"-vvvvv", Options{Verbosity: 5}, LevelTrace},
		{"-q", Options{Quiet: true}, slog.LevelError},
		{"-q wins", Options{Quiet: true, Verbosity: 2}, slog.LevelError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.opts.Level())
		})
	}
}

func TestBuild_QuietDropsWarnings(t *testing.T) {
	var out bytes.Buffer
	logger := Build(Options{Quiet: true, Out: &out})

	logger.Warn("skill has no description")
	assert.Empty(t, out.String())

	logger.Error("manifest unreadable")
	assert.Contains(t, out.String(), "manifest unreadable")
}

func TestBuild_JSONFormat(t *testing.T) {
	var out bytes.Buffer
	logger := Build(Options{Format: FormatJSON, Out: &out})
	logger.Warn("placeholder value", "field", "owner.name")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &rec))
	assert.Equal(t, "WARN", rec["level"])
	assert.Equal(t, "owner.name", rec["field"])
}

func TestBuild_FileReceivesJSONAtSameLevel(t *testing.T) {
	var out, file bytes.Buffer
	logger := Build(Options{Verbosity: 1, Out: &out, File: &file}).
		With("marketplace", "demo").WithGroup("plugin")

	logger.Debug("hidden")
	logger.Info("added", "name", "code-tools")

	assert.Contains(t, out.String(), "plugin.name=code-tools")
	assert.NotContains(t, out.String(), "hidden")

	lines := strings.Split(strings.TrimSpace(file.String()), "\n")
	require.Len(t, lines, 1)
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "added", rec["msg"])
	assert.Equal(t, "demo", rec["marketplace"])
	assert.Equal(t, map[string]any{"name": "code-tools"}, rec["plugin"])
}

func TestFanout_EnabledIfAnyHandlerIs(t *testing.T) {
	var a, b bytes.Buffer
	h := Fanout(
		NewHandler(&a, &slog.HandlerOptions{Level: slog.LevelError}),
		NewHandler(&b, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)
	assert.True(t, h.Enabled(t.Context(), slog.LevelDebug))

	slog.New(h).Info("only b")
	assert.Empty(t, a.String())
	assert.Contains(t, b.String(), "only b")
}

type recordingTB struct {
	testing.TB
	logs []string
}

func (r *recordingTB) Helper()         {}
func (r *recordingTB) Log(args ...any) { r.logs = append(r.logs, args[0].(string)) }

func TestForTest_WritesThroughTestLog(t *testing.T) {
	rec := &recordingTB{TB: t}
	logger := ForTest(rec)

	logger.Debug("resolving skill", "path", "./skills/review")

	require.Len(t, rec.logs, 1)
	assert.Contains(t, rec.logs[0], "DEBUG")
	assert.Contains(t, rec.logs[0], "path=./skills/review")
	assert.False(t, strings.HasSuffix(rec.logs[0], "\n"))
}

func TestContext(t *testing.T) {
	assert.Same(t, slog.Default(), FromContext(t.Context()))

	logger := ForTest(t)
	ctx := NewContext(t.Context(), logger)
	assert.Same(t, logger, FromContext(ctx))
}
