package scaffold

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/mkt/internal/errors"
	"github.com/thoreinstein/mkt/internal/logging"
	"github.com/thoreinstein/mkt/internal/marketplace"
)

func fixedNow() time.Time {
	return time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
}

func TestInit(t *testing.T) {
	out := t.TempDir()
	ctx := logging.NewContext(t.Context(), logging.ForTest(t))

	res, err := Init(ctx, Options{Name: "demo-market", OutputDir: out, Now: fixedNow})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(out, "demo-market"), res.Root)
	assert.Equal(t, []string{
		filepath.Join("demo-market", ".claude-plugin", "marketplace.json"),
		filepath.Join("demo-market", "README.md"),
		filepath.Join("demo-market", ".gitignore"),
		filepath.Join("demo-market", "LICENSE"),
		filepath.Join("demo-market", "CHANGELOG.md"),
	}, res.Created)
	for _, p := range res.Created {
		assert.FileExists(t, filepath.Join(out, p))
	}

	m, err := marketplace.Load(res.Root)
	require.NoError(t, err)
	assert.Equal(t, marketplace.NewManifest("demo-market"), m)

	raw, err := os.ReadFile(marketplace.ManifestPath(res.Root))
	require.NoError(t, err)
	assert.Equal(t, byte('\n'), raw[len(raw)-1])

	readme, err := os.ReadFile(filepath.Join(res.Root, "README.md"))
	require.NoError(t, err)
	assert.Contains(t, string(readme), "# demo-market\n")
	assert.Contains(t, string(readme), "https://github.com/your-org/demo-market/issues")

	license, err := os.ReadFile(filepath.Join(res.Root, "LICENSE"))
	require.NoError(t, err)
	assert.Contains(t, string(license), "MIT License\n\nCopyright (c) 2026 Your Name\n")

	changelog, err := os.ReadFile(filepath.Join(res.Root, "CHANGELOG.md"))
	require.NoError(t, err)
	assert.Contains(t, string(changelog), "## [0.1.0] - 2026-03-14")
}

func TestInit_Overrides(t *testing.T) {
	out := t.TempDir()

	res, err := Init(t.Context(), Options{
		Name:       "team-tools",
		OutputDir:  out,
		OwnerName:  "Jane Doe",
		OwnerEmail: "jane@example.com",
		License:    "Apache-2.0",
		Now:        fixedNow,
	})
	require.NoError(t, err)

	m, err := marketplace.Load(res.Root)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", m.Owner.Name)
	assert.Equal(t, "jane@example.com", m.Owner.Email)
	assert.Equal(t, "Apache-2.0", m.Metadata.License)
	assert.Equal(t, marketplace.PlaceholderDescription, m.Metadata.Description)

	license, err := os.ReadFile(filepath.Join(res.Root, "LICENSE"))
	require.NoError(t, err)
	assert.Equal(t, "Copyright (c) 2026 Jane Doe\n\nThis project is licensed under the Apache-2.0 license.\nReplace this file with the full license text.\n", string(license))
}

func TestInit_ValidatesWithWarningsOnly(t *testing.T) {
	res, err := Init(t.Context(), Options{Name: "demo-market", OutputDir: t.TempDir(), Now: fixedNow})
	require.NoError(t, err)

	result := marketplace.NewChecker(res.Root).Check()
	assert.Empty(t, result.Errors())
	assert.NotEmpty(t, result.Warnings())
	assert.True(t, result.Finalize(false).Passed)
	assert.False(t, result.Finalize(true).Passed)
}

func TestInit_CreatesMissingOutputDir(t *testing.T) {
	out := filepath.Join(t.TempDir(), "src", "markets")

	res, err := Init(t.Context(), Options{Name: "demo", OutputDir: out})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(out, "demo"), res.Root)
	assert.FileExists(t, filepath.Join(out, "demo", ".claude-plugin", "marketplace.json"))
}

func TestInit_Errors(t *testing.T) {
	t.Run("invalid name", func(t *testing.T) {
		for _, name := range []string{"", "My-Market", "-market", "market-", "my_market"} {
			out := t.TempDir()
			_, err := Init(t.Context(), Options{Name: name, OutputDir: out})
			assert.True(t, errors.Is(err, errors.ErrInvalidName), "%q: %v", name, err)

			entries, readErr := os.ReadDir(out)
			require.NoError(t, readErr)
			assert.Empty(t, entries, "nothing created for %q", name)
		}
	})

	t.Run("output path is a file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(file, nil, 0o644))

		_, err := Init(t.Context(), Options{Name: "demo", OutputDir: file})
		assert.True(t, errors.Is(err, ErrOutputNotDirectory), "got %v", err)
	})

	t.Run("already exists", func(t *testing.T) {
		out := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(out, "demo"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(out, "demo", "keep.txt"), []byte("keep"), 0o644))

		_, err := Init(t.Context(), Options{Name: "demo", OutputDir: out})
		assert.True(t, errors.Is(err, errors.ErrAlreadyExists), "got %v", err)

		data, readErr := os.ReadFile(filepath.Join(out, "demo", "keep.txt"))
		require.NoError(t, readErr)
		assert.Equal(t, "keep", string(data))
		assert.NoFileExists(t, marketplace.ManifestPath(filepath.Join(out, "demo")))
	})
}

func TestTemplatesParse(t *testing.T) {
	for _, f := range files {
		out, err := render(f.template, templateData{Name: "x", License: "MIT", Version: "0.1.0"})
		require.NoError(t, err, f.template)
		assert.NotEmpty(t, out)
	}
}
