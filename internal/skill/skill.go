package skill

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/thoreinstein/mkt/internal/errors"
	"github.com/thoreinstein/mkt/internal/marketplace"
	"github.com/thoreinstein/mkt/internal/rules"
	"github.com/thoreinstein/mkt/pkg/fileutil"
	"github.com/thoreinstein/mkt/pkg/frontmatter"
)

// ErrOutsideRoot is returned when a skill directory escapes the marketplace root.
var ErrOutsideRoot = errors.New("skill directory is outside the marketplace root")

// Meta is the frontmatter of SKILL.md.
type Meta struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Skill is a discovered skill directory.
type Skill struct {
	Meta `yaml:",inline"`

	// Path is the manifest form of the directory, relative to the root and
	// prefixed with "./".
	Path string `yaml:"-"`

	// Dir is the directory on disk.
	Dir string `yaml:"-"`
}

// Label returns the string shown in pickers and listings.
func (s *Skill) Label() string {
	if s.Name == "" {
		return s.Path
	}
	return s.Path + " (" + s.Name + ")"
}

// Discover returns every directory below root that contains SKILL.md, in
// lexical order. Hidden directories are skipped and a skill directory is
// not searched for nested skills. Unreadable or malformed headers leave
// Meta empty rather than failing the walk.
func Discover(root string) ([]*Skill, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.Wrapf(err, "reading marketplace root %q", root)
	}
	if !info.IsDir() {
		return nil, errors.Newf("marketplace root %q is not a directory", root)
	}

	var skills []*Skill
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}

		file := filepath.Join(path, marketplace.SkillFile)
		if _, err := os.Stat(file); err != nil {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		ref := "./"
		if rel != "." {
			ref = marketplace.NormalizeSkillPath(filepath.ToSlash(rel))
		}
		s := &Skill{Path: ref, Dir: path}
		readHeader(file, &s.Meta)
		skills = append(skills, s)

		if path == root {
			return nil
		}
		return filepath.SkipDir
	})
	if err != nil {
		return nil, errors.Wrap(err, "walking marketplace")
	}

	return skills, nil
}

// Load reads the SKILL.md header of the skill referenced by ref, a path as
// written in the manifest.
func Load(root, ref string) (*Skill, error) {
	dir := marketplace.ResolveSkillPath(root, ref)
	status, _ := marketplace.StatSkill(dir)
	if status != marketplace.SkillOK {
		return nil, errors.Wrapf(errors.ErrNotFound, "%s: %s", ref, status)
	}

	s := &Skill{Path: marketplace.NormalizeSkillPath(ref), Dir: dir}
	readHeader(filepath.Join(dir, marketplace.SkillFile), &s.Meta)
	return s, nil
}

// File returns the SKILL.md path of s.
func (s *Skill) File() string {
	return filepath.Join(s.Dir, marketplace.SkillFile)
}

// CreateOptions configures Create.
type CreateOptions struct {
	// Dir is the skill directory relative to the marketplace root.
	Dir string
	// Name defaults to the base name of Dir.
	Name        string
	Description string
	Body        string
	// Force overwrites an existing SKILL.md.
	Force bool
}

// Create writes <root>/<Dir>/SKILL.md and returns the created skill.
func Create(root string, opts CreateOptions) (*Skill, error) {
	rel := filepath.Clean(strings.TrimPrefix(filepath.FromSlash(opts.Dir), "./"))
	if rel == "." || filepath.IsAbs(rel) || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil, errors.Wrapf(ErrOutsideRoot, "%q", opts.Dir)
	}

	name := opts.Name
	if name == "" {
		name = filepath.Base(rel)
	}
	if !rules.IsValidName(name) {
		return nil, errors.Wrapf(errors.ErrInvalidName, "%q must be kebab-case", name)
	}
	if strings.TrimSpace(opts.Description) == "" {
		return nil, errors.New("skill description is required")
	}

	dir := filepath.Join(root, rel)
	file := filepath.Join(dir, marketplace.SkillFile)
	if _, err := os.Stat(file); err == nil && !opts.Force {
		return nil, errors.Wrapf(errors.ErrAlreadyExists, "%s", file)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "creating skill directory")
	}

	meta := Meta{Name: name, Description: opts.Description}
	body := opts.Body
	if body == "" {
		body = defaultBody(meta)
	}
	data, err := frontmatter.Format(meta, body)
	if err != nil {
		return nil, errors.Wrap(err, "formatting SKILL.md")
	}
	if err := fileutil.AtomicWriteFile(file, data, fileutil.DefaultFilePerm); err != nil {
		return nil, errors.Wrap(err, "writing SKILL.md")
	}

	return &Skill{
		Meta: meta,
		Path: marketplace.NormalizeSkillPath(filepath.ToSlash(rel)),
		Dir:  dir,
	}, nil
}

func defaultBody(m Meta) string {
	return "# " + m.Name + "\n\n" + m.Description + "\n\n## Instructions\n\nDescribe when and how to use this skill.\n"
}

func readHeader(path string, meta *Meta) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()
	_ = frontmatter.ParseHeader(f, meta)
}
