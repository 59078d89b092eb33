package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
)

// Format selects the encoding of the primary log stream.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat accepts "text" or "json", case-insensitively. An empty
// string means text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", errors.Newf("unknown log format %q (valid: text, json)", s)
	}
}

// Options describes the logger a command run needs.
type Options struct {
	// Verbosity is the number of -v flags.
	Verbosity int
	// Quiet limits output to errors. It wins over Verbosity.
	Quiet  bool
	Format Format
	// Out receives the primary stream; nil means os.Stderr.
	Out io.Writer
	// File, when set, also receives every record as JSON.
	File io.Writer
}

// Level returns the minimum level implied by o.
func (o Options) Level() slog.Level {
	if o.Quiet {
		return slog.LevelError
	}
	return LevelFromVerbosity(o.Verbosity)
}

// Build returns a logger writing to o.Out, fanned out to o.File if set.
func Build(o Options) *slog.Logger {
	out := o.Out
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: o.Level()}

	var h slog.Handler
	if o.Format == FormatJSON {
		h = slog.NewJSONHandler(out, opts)
	} else {
		h = NewHandler(out, opts)
	}
	if o.File != nil {
		h = Fanout(h, slog.NewJSONHandler(o.File, opts))
	}
	return slog.New(h)
}

// ForTest returns a Debug-level text logger that writes through t.Log, so
// output shows up only for failing tests or with go test -v.
func ForTest(t testing.TB) *slog.Logger {
	t.Helper()
	return slog.New(NewHandler(testLog{t}, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

type testLog struct{ t testing.TB }

func (w testLog) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}
