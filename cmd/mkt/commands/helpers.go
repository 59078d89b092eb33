package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/thoreinstein/mkt/internal/errors"
	"github.com/thoreinstein/mkt/internal/marketplace"
	"github.com/thoreinstein/mkt/internal/scaffold"
	"github.com/thoreinstein/mkt/internal/skill"
)

var (
	okMark   = color.New(color.FgGreen).Sprint("✓")
	warnMark = color.New(color.FgYellow).Sprint("!")
	bold     = color.New(color.Bold).SprintFunc()
	faint    = color.New(color.Faint).SprintFunc()
)

func printOK(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", okMark, fmt.Sprintf(format, args...))
}

func printWarn(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", warnMark, fmt.Sprintf(format, args...))
}

// exitError attaches an exit code and a suggestion to errors returned by
// the marketplace packages. Errors already carrying an ExitError pass
// through unchanged.
func exitError(err error) error {
	if err == nil {
		return nil
	}
	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) {
		return err
	}

	switch {
	case errors.Is(err, errors.ErrInvalidName):
		return errors.NewUserError(err, "Use lowercase letters, digits and hyphens, e.g. 'my-marketplace'")
	case errors.Is(err, errors.ErrAlreadyExists):
		return errors.NewUserError(err, "Choose another name or remove the existing path")
	case errors.Is(err, errors.ErrNotFound):
		return errors.NewUserError(err, "Run 'mkt init <name>' to create a marketplace, or pass the marketplace directory as an argument")
	case errors.Is(err, errors.ErrAborted):
		return errors.NewUserError(err, "Fix the skill paths or pass --yes to add them anyway")
	case errors.Is(err, marketplace.ErrInvalidManifest):
		return errors.NewUserError(err, "Run 'mkt validate' for details")
	case errors.Is(err, marketplace.ErrDuplicatePlugin):
		return errors.NewUserError(err, "Run 'mkt list' to see registered plugins")
	case errors.Is(err, marketplace.ErrNoSkills),
		errors.Is(err, scaffold.ErrOutputNotDirectory),
		errors.Is(err, skill.ErrOutsideRoot):
		return errors.NewUserError(err, "")
	}
	return errors.NewSystemError(err, "")
}
