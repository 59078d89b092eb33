package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handle(t *testing.T, h slog.Handler, level slog.Level, msg string, attrs ...slog.Attr) {
	t.Helper()
	r := slog.NewRecord(time.Time{}, level, msg, 0)
	r.AddAttrs(attrs...)
	require.NoError(t, h.Handle(t.Context(), r))
}

func TestHandler_Line(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, nil)

	handle(t, h, slog.LevelWarn, "skill has no description",
		slog.String("plugin", "demo"), slog.Int("skills", 2))

	assert.Equal(t, "WARN  skill has no description plugin=demo skills=2\n", buf.String())
}

func TestHandler_Time(t *testing.T) {
	var buf bytes.Buffer
	now := time.Date(2026, 1, 2, 15, 4, 0, 0, time.UTC)
	r := slog.NewRecord(now, slog.LevelInfo, "hi", 0)
	require.NoError(t, NewHandler(&buf, nil).Handle(t.Context(), r))

	assert.Equal(t, "3:04PM INFO  hi\n", buf.String())
}

func TestHandler_Values(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, nil)

	handle(t, h, slog.LevelError, "failed",
		slog.String("path", "has space"),
		slog.String("empty", ""),
		slog.Any("err", errors.New("boom")),
		slog.Attr{},
	)

	assert.Equal(t, `ERROR failed path="has space" empty="" err=boom`+"\n", buf.String())
}

func TestHandler_GroupsAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, nil)).
		With("root", "/tmp/m").
		WithGroup("plugin").
		With("name", "demo")

	logger.Info("checked", slog.Group("skill", "path", "./skills/x"))

	assert.Equal(t,
		"INFO  checked root=/tmp/m plugin.name=demo plugin.skill.path=./skills/x\n",
		buf.String())
}

func TestHandler_Levels(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, &slog.HandlerOptions{Level: LevelTrace})

	assert.True(t, h.Enabled(t.Context(), LevelTrace))
	handle(t, h, LevelTrace, "deep")
	assert.Equal(t, "TRACE deep\n", buf.String())

	warnOnly := NewHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})
	assert.False(t, warnOnly.Enabled(t.Context(), slog.LevelInfo))
	assert.True(t, warnOnly.Enabled(t.Context(), slog.LevelError))
}

func TestHandler_NoColorForBuffers(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, colorEnabled(&buf))

	t.Setenv("NO_COLOR", "")
	assert.False(t, colorEnabled(nil))
}
