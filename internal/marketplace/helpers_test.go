package marketplace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/mkt/internal/validator"
)

const validSkill = "---\nname: example\ndescription: An example skill for tests\n---\n\n# Example\n"

// newMarketplace creates a root with the given manifest text and skill
// files (relative path → SKILL.md content).
func newMarketplace(t *testing.T, manifest string, skills map[string]string) string {
	t.Helper()
	root := t.TempDir()
	if manifest != "" {
		require.NoError(t, os.MkdirAll(filepath.Join(root, ManifestDir), 0o755))
		require.NoError(t, os.WriteFile(ManifestPath(root), []byte(manifest), 0o644))
	}
	for rel, content := range skills {
		dir := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(dir, 0o755))
		if content != "" {
			require.NoError(t, os.WriteFile(filepath.Join(dir, SkillFile), []byte(content), 0o644))
		}
	}
	return root
}

type finding struct {
	Code  Code
	Field string
}

func findings(issues []validator.Issue) []finding {
	out := make([]finding, 0, len(issues))
	for _, i := range issues {
		out = append(out, finding{Code: Code(i.Code), Field: i.Field})
	}
	return out
}

func codes(issues []validator.Issue) []Code {
	out := make([]Code, 0, len(issues))
	for _, i := range issues {
		out = append(out, Code(i.Code))
	}
	return out
}
