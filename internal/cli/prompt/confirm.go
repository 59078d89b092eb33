package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/thoreinstein/mkt/internal/errors"
)

// Confirmer asks yes/no questions on a line-oriented terminal.
// The zero answer is "no".
type Confirmer struct {
	reader      *bufio.Reader
	writer      io.Writer
	interactive bool
}

// NewConfirmer creates a Confirmer on stdin and stderr. When stdin is not
// a terminal every question is declined without reading.
func NewConfirmer() *Confirmer {
	return &Confirmer{
		reader:      bufio.NewReader(os.Stdin),
		writer:      os.Stderr,
		interactive: term.IsTerminal(int(os.Stdin.Fd())),
	}
}

// NewConfirmerWithIO creates an interactive Confirmer with custom reader
// and writer for testing.
func NewConfirmerWithIO(r io.Reader, w io.Writer) *Confirmer {
	return &Confirmer{
		reader:      bufio.NewReader(r),
		writer:      w,
		interactive: true,
	}
}

// Confirm prints question followed by " [y/N]: " and reports whether the
// answer was y or yes (case-insensitive). EOF counts as no.
func (c *Confirmer) Confirm(question string) (bool, error) {
	fmt.Fprintf(c.writer, "%s [y/N]: ", question)

	if !c.interactive {
		fmt.Fprintln(c.writer, "n (non-interactive)")
		return false, nil
	}

	input, err := c.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, errors.Wrap(err, "reading answer")
	}
	if errors.Is(err, io.EOF) && input == "" {
		fmt.Fprintln(c.writer)
	}

	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Always is a Confirmer that accepts every question, used for --yes.
type Always struct{}

// Confirm implements marketplace.Confirmer.
func (Always) Confirm(string) (bool, error) { return true, nil }
