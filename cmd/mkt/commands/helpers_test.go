package commands

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/mkt/internal/config"
	"github.com/thoreinstein/mkt/internal/errors"
	"github.com/thoreinstein/mkt/internal/logging"
	"github.com/thoreinstein/mkt/internal/marketplace"
	"github.com/thoreinstein/mkt/internal/scaffold"
)

// setupCommandTest isolates config in a temp directory and resets the
// package-level flag values the run functions read.
func setupCommandTest(t *testing.T) {
	t.Helper()

	t.Setenv(config.EnvConfigDir, t.TempDir())
	config.Init()
	_, err := config.Load("")
	require.NoError(t, err)

	verbosity, quiet, configFile = 0, false, ""
	initPath, initOwnerName, initOwnerEmail, initLicense = ".", "", "", ""
	addName, addDescription, addSkills = "", "", nil
	addSource, addStrict, addYes, addNoFuzzy = marketplace.DefaultPluginSource, false, false, false
	validateStrict, validateOutput = false, ""
	listJSON = false
	skillRoot, skillName, skillDescription, skillForce, skillEdit = ".", "", "", false, false
	configListFormat = "yaml"
}

// newTestCmd returns a bare command whose output is captured and whose
// context carries a test logger.
func newTestCmd(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer
	c := &cobra.Command{}
	c.SetOut(&out)
	c.SetErr(&out)
	c.SetContext(logging.NewContext(context.Background(), logging.ForTest(t)))
	return c, &out
}

func TestExitError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		wantCode       int
		wantSuggestion string
	}{
		{"nil", nil, errors.ExitSuccess, ""},
		{"not found", errors.Wrap(errors.ErrNotFound, "marketplace.json"), errors.ExitUser,
			"Run 'mkt init <name>' to create a marketplace, or pass the marketplace directory as an argument"},
		{"output is a file", errors.Wrap(scaffold.ErrOutputNotDirectory, "/tmp/x"), errors.ExitUser, ""},
		{"duplicate plugin", marketplace.ErrDuplicatePlugin, errors.ExitUser, "Run 'mkt list' to see registered plugins"},
		{"already an exit error", errors.NewSystemError(errors.New("disk"), "retry"), errors.ExitSystem, "retry"},
		{"anything else", errors.New("disk full"), errors.ExitSystem, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := exitError(tt.err)
			assert.Equal(t, tt.wantCode, errors.Code(err))

			var exitErr *errors.ExitError
			if errors.As(err, &exitErr) {
				assert.Equal(t, tt.wantSuggestion, exitErr.Suggestion)
			}
		})
	}
}
