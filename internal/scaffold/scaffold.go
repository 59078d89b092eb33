// Package scaffold creates new marketplace directories.
package scaffold

import (
	"bytes"
	"context"
	"embed"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/thoreinstein/mkt/internal/errors"
	"github.com/thoreinstein/mkt/internal/logging"
	"github.com/thoreinstein/mkt/internal/marketplace"
	"github.com/thoreinstein/mkt/internal/rules"
	"github.com/thoreinstein/mkt/pkg/fileutil"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// ErrOutputNotDirectory indicates the path to create the marketplace in is a file.
var ErrOutputNotDirectory = errors.New("output path is not a directory")

// files maps each generated file, relative to the marketplace root, to
// its template.
var files = []struct {
	path     string
	template string
}{
	{"README.md", "README.md.tmpl"},
	{".gitignore", "gitignore.tmpl"},
	{"LICENSE", "LICENSE.tmpl"},
	{"CHANGELOG.md", "CHANGELOG.md.tmpl"},
}

// Options configures Init. Empty owner and license fields fall back to
// the manifest placeholders.
type Options struct {
	Name       string
	OutputDir  string
	OwnerName  string
	OwnerEmail string
	License    string

	// Now stamps LICENSE and CHANGELOG.md. Defaults to time.Now.
	Now func() time.Time
}

// Result describes a created marketplace.
type Result struct {
	// Root is the new marketplace directory.
	Root string
	// Created lists every file written, relative to OutputDir, in creation order.
	Created []string
}

type templateData struct {
	Name       string
	OwnerName  string
	OwnerEmail string
	License    string
	Repository string
	Version    string
	Year       int
	Date       string
}

// Init creates <OutputDir>/<Name> with a placeholder manifest and
// supporting documents. Nothing is created when the name is invalid, and a
// partially written tree under <Name> is removed if a later write fails.
func Init(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.FromContext(ctx)

	if !rules.IsValidName(opts.Name) {
		return nil, errors.Wrapf(errors.ErrInvalidName,
			"marketplace name %q must use lowercase letters, digits and hyphens, and not start or end with a hyphen", opts.Name)
	}

	// A missing output directory is created with its parents.
	if info, err := os.Stat(opts.OutputDir); err == nil && !info.IsDir() {
		return nil, errors.Wrapf(ErrOutputNotDirectory, "%s", opts.OutputDir)
	}
	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return nil, errors.Wrap(err, "creating output directory")
	}

	root := filepath.Join(opts.OutputDir, opts.Name)
	if _, err := os.Lstat(root); err == nil {
		return nil, errors.Wrapf(errors.ErrAlreadyExists, "directory %s", root)
	}

	m := marketplace.NewManifest(opts.Name)
	if opts.OwnerName != "" {
		m.Owner.Name = opts.OwnerName
	}
	if opts.OwnerEmail != "" {
		m.Owner.Email = opts.OwnerEmail
	}
	if opts.License != "" {
		m.Metadata.License = opts.License
	}

	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	t := now()
	data := templateData{
		Name:       m.Name,
		OwnerName:  m.Owner.Name,
		OwnerEmail: m.Owner.Email,
		License:    m.Metadata.License,
		Repository: m.Metadata.Repository,
		Version:    m.Metadata.Version,
		Year:       t.Year(),
		Date:       t.Format(time.DateOnly),
	}

	logger.Info("initializing marketplace", "name", opts.Name, "location", root)

	if err := os.Mkdir(root, 0o755); err != nil {
		return nil, errors.Wrap(err, "creating marketplace directory")
	}

	res := &Result{Root: root}
	if err := write(root, m, data, res); err != nil {
		if rmErr := os.RemoveAll(root); rmErr != nil {
			logger.Warn("could not remove partial marketplace", "path", root, "error", rmErr)
		}
		return nil, err
	}

	for _, p := range res.Created {
		logger.Debug("created", "path", p)
	}
	return res, nil
}

func write(root string, m *marketplace.Manifest, data templateData, res *Result) error {
	if err := marketplace.Save(root, m); err != nil {
		return err
	}
	res.Created = append(res.Created, filepath.Join(m.Name, marketplace.ManifestDir, marketplace.ManifestFile))

	for _, f := range files {
		content, err := render(f.template, data)
		if err != nil {
			return err
		}
		if err := fileutil.AtomicWriteFile(filepath.Join(root, f.path), content, fileutil.DefaultFilePerm); err != nil {
			return errors.Wrapf(err, "writing %s", f.path)
		}
		res.Created = append(res.Created, filepath.Join(m.Name, f.path))
	}
	return nil
}

func render(name string, data templateData) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, errors.Wrapf(err, "rendering %s", name)
	}
	out := buf.String()
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return []byte(out), nil
}
