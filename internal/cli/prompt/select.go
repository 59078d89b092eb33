// Package prompt provides interactive CLI prompts for user input.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/thoreinstein/mkt/internal/errors"
	"github.com/thoreinstein/mkt/internal/skill"
)

// Sentinel errors for skill selection.
var (
	ErrNoSkills           = errors.New("no skills to select from")
	ErrInvalidSelection   = errors.New("invalid selection")
	ErrSelectionCancelled = errors.New("selection cancelled")
)

// Picker chooses skills for a new plugin entry.
type Picker interface {
	Pick(skills []*skill.Skill) ([]*skill.Skill, error)
}

// Selector is a numbered-list Picker for terminals where the fuzzy finder
// is unwanted.
type Selector struct {
	reader io.Reader
	writer io.Writer
}

// NewSelector returns a Selector on stdin and stdout.
func NewSelector() *Selector {
	return NewSelectorWithIO(os.Stdin, os.Stdout)
}

// NewSelectorWithIO returns a Selector on r and w.
func NewSelectorWithIO(r io.Reader, w io.Writer) *Selector {
	return &Selector{reader: r, writer: w}
}

// Pick lists skills by number and reads a comma-separated answer. A lone
// skill is returned without prompting. The result keeps the entered order
// without duplicates. EOF or a blank answer yields ErrSelectionCancelled.
func (s *Selector) Pick(skills []*skill.Skill) ([]*skill.Skill, error) {
	if len(skills) == 0 {
		return nil, ErrNoSkills
	}

	if len(skills) == 1 {
		return skills, nil
	}

	fmt.Fprintln(s.writer, "Skills found in marketplace:")
	for i, sk := range skills {
		fmt.Fprintf(s.writer, "  [%d] %s\n", i+1, sk.Label())
	}
	fmt.Fprintf(s.writer, "Select (comma-separated): ")

	reader := bufio.NewReader(s.reader)
	input, err := reader.ReadString('\n')
	switch {
	case errors.Is(err, io.EOF) && input == "":
		return nil, ErrSelectionCancelled
	case err != nil && !errors.Is(err, io.EOF):
		return nil, errors.Wrap(err, "reading selection")
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return nil, ErrSelectionCancelled
	}

	seen := make(map[int]bool)
	var selected []*skill.Skill
	for field := range strings.SplitSeq(input, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidSelection, "%q is not a number", field)
		}
		if n < 1 || n > len(skills) {
			return nil, errors.Wrapf(ErrInvalidSelection, "%d is out of range [1-%d]", n, len(skills))
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		selected = append(selected, skills[n-1])
	}

	if len(selected) == 0 {
		return nil, ErrSelectionCancelled
	}
	return selected, nil
}
