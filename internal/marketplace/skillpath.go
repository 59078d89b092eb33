package marketplace

import (
	"os"
	"path/filepath"
	"strings"
)

// SkillStatus describes what a skill path resolves to on disk.
type SkillStatus int

const (
	// SkillOK means the path is a directory containing SKILL.md.
	SkillOK SkillStatus = iota
	// SkillMissing means nothing exists at the path.
	SkillMissing
	// SkillNotDirectory means the path exists but is not a directory.
	SkillNotDirectory
	// SkillFileMissing means the directory has no SKILL.md.
	SkillFileMissing
)

func (s SkillStatus) String() string {
	switch s {
	case SkillOK:
		return "ok"
	case SkillMissing:
		return "skill directory does not exist"
	case SkillNotDirectory:
		return "skill path is not a directory"
	case SkillFileMissing:
		return "SKILL.md not found"
	default:
		return "unknown"
	}
}

// NormalizeSkillPath ensures p starts with "./", the form stored in the manifest.
func NormalizeSkillPath(p string) string {
	if strings.HasPrefix(p, "./") {
		return p
	}
	return "./" + p
}

// ResolveSkillPath strips a single leading "./" from skillPath and joins
// it to root.
func ResolveSkillPath(root, skillPath string) string {
	return filepath.Join(root, strings.TrimPrefix(skillPath, "./"))
}

// StatSkill classifies dir. The returned error is the underlying stat
// error, if any, for callers that want to log it.
func StatSkill(dir string) (SkillStatus, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return SkillMissing, err
	}
	if !info.IsDir() {
		return SkillNotDirectory, nil
	}
	if _, err := os.Stat(skillFilePath(dir)); err != nil {
		return SkillFileMissing, err
	}
	return SkillOK, nil
}

func skillFilePath(dir string) string {
	return filepath.Join(dir, SkillFile)
}
