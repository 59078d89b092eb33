// Package editor launches the user's preferred text editor on a file.
package editor

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/thoreinstein/mkt/internal/errors"
)

// ErrNoEditor indicates the resolved editor command was empty.
var ErrNoEditor = errors.New("no editor configured")

// Editor runs an editor command with the target path appended.
type Editor struct {
	// Command is the program followed by any fixed arguments, e.g.
	// ["code", "--wait"].
	Command []string
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}

// Resolve returns an Editor for the current environment attached to the
// process's standard streams.
func Resolve() *Editor {
	return &Editor{
		Command: strings.Fields(detectEditor()),
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// Open edits path with the resolved editor.
func Open(ctx context.Context, path string) error {
	return Resolve().Open(ctx, path)
}

// Open runs the editor on path and waits for it to exit.
func (e *Editor) Open(ctx context.Context, path string) error {
	if len(e.Command) == 0 {
		return ErrNoEditor
	}

	args := append(append([]string{}, e.Command[1:]...), path)
	cmd := exec.CommandContext(ctx, e.Command[0], args...)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "running editor %s", e.Command[0])
	}
	return nil
}

// detectEditor returns the editor command line.
// Fallback chain: $EDITOR → $VISUAL → nano → vi
func detectEditor() string {
	if editor := strings.TrimSpace(os.Getenv("EDITOR")); editor != "" {
		return editor
	}

	if visual := strings.TrimSpace(os.Getenv("VISUAL")); visual != "" {
		return visual
	}

	if _, err := exec.LookPath("nano"); err == nil {
		return "nano"
	}

	return "vi"
}
