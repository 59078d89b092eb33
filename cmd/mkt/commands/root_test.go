package commands

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/mkt/internal/errors"
	"github.com/thoreinstein/mkt/internal/logging"
	"github.com/thoreinstein/mkt/internal/paths"
)

func TestSetupLogging_VerbosityFlags(t *testing.T) {
	origVerbosity := verbosity
	defer func() { verbosity = origVerbosity }()

	tests := []struct {
		name      string
		verbosity int
		wantLevel slog.Level
	}{
		{"default (0)", 0, slog.LevelWarn},
		{"verbose (1)", 1, slog.LevelInfo},
		{"debug (2)", 2, slog.LevelDebug},
		{"trace (3)", 3, logging.LevelTrace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verbosity = tt.verbosity
			require.NoError(t, setupLogging(rootCmd))

			logger := slog.Default()
			assert.True(t, logger.Enabled(t.Context(), tt.wantLevel))
			if tt.wantLevel > logging.LevelTrace {
				assert.False(t, logger.Enabled(t.Context(), tt.wantLevel-4))
			}
		})
	}
}

func TestSetupLogging_EnvVar(t *testing.T) {
	origVerbosity := verbosity
	defer func() { verbosity = origVerbosity }()

	tests := []struct {
		name      string
		envVal    string
		wantLevel slog.Level
	}{
		{"MKT_DEBUG=1", "1", slog.LevelDebug},
		{"MKT_DEBUG=true", "true", slog.LevelDebug},
		{"MKT_DEBUG=2", "2", logging.LevelTrace},
		{"MKT_DEBUG=0", "0", slog.LevelWarn},
		{"MKT_DEBUG=unknown", "foo", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verbosity = 0
			t.Setenv("MKT_DEBUG", tt.envVal)

			require.NoError(t, setupLogging(rootCmd))

			logger := slog.Default()
			assert.True(t, logger.Enabled(t.Context(), tt.wantLevel))
			if tt.wantLevel == slog.LevelDebug {
				assert.False(t, logger.Enabled(t.Context(), logging.LevelTrace))
			}
		})
	}
}

func TestSetupLogging_StoresLoggerInContext(t *testing.T) {
	origVerbosity := verbosity
	defer func() { verbosity = origVerbosity }()
	verbosity = 2

	require.NoError(t, setupLogging(rootCmd))
	assert.Same(t, slog.Default(), logging.FromContext(rootCmd.Context()))
}

func TestSetupLogging_QuietAndVerbose(t *testing.T) {
	origVerbosity, origQuiet := verbosity, quiet
	defer func() { verbosity, quiet = origVerbosity, origQuiet }()
	verbosity, quiet = 1, true

	err := setupLogging(rootCmd)
	require.Error(t, err)
	assert.Equal(t, errors.ExitUser, errors.Code(err))
}

func TestSetupLogging_InvalidFormat(t *testing.T) {
	orig := logFormat
	defer func() { logFormat = orig }()
	logFormat = "xml"

	err := setupLogging(rootCmd)
	require.Error(t, err)
	assert.Equal(t, errors.ExitUser, errors.Code(err))
	assert.Contains(t, err.Error(), "xml")
}

func TestSetupLogging_LogFileGetsJSON(t *testing.T) {
	origFile, origVerbosity := logFile, verbosity
	defer func() { logFile, verbosity = origFile, origVerbosity }()
	logFile = filepath.Join(t.TempDir(), "mkt.log")
	verbosity = 1

	require.NoError(t, setupLogging(rootCmd))
	slog.Info("manifest loaded", "plugins", 2)

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	var rec map[string]any
	require.NoError(t, json.Unmarshal(data, &rec))
	assert.Equal(t, "manifest loaded", rec["msg"])
	assert.EqualValues(t, 2, rec["plugins"])
}

func TestCheckConfig(t *testing.T) {
	orig := configLoadErr
	defer func() { configLoadErr = orig }()
	configLoadErr = errors.New("validating config: bad output")

	err := checkConfig(validateCmd)
	require.Error(t, err)
	assert.Equal(t, errors.ExitUser, errors.Code(err))

	assert.NoError(t, checkConfig(versionCmd))
	assert.NoError(t, checkConfig(configSetCmd))

	configLoadErr = nil
	assert.NoError(t, checkConfig(validateCmd))
}

func TestResolveLogFile(t *testing.T) {
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	xdg.Reload()

	explicit := filepath.Join(t.TempDir(), "mkt.log")
	got, err := resolveLogFile(explicit)
	require.NoError(t, err)
	assert.Equal(t, explicit, got)

	got, err = resolveLogFile("run.log")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(paths.LogDir(), "run.log"), got)
	assert.DirExists(t, paths.LogDir())
}
