package marketplace

import (
	"context"
	"encoding/json"
	"unicode/utf8"

	"github.com/cockroachdb/errors"

	mkterrors "github.com/thoreinstein/mkt/internal/errors"
	"github.com/thoreinstein/mkt/internal/logging"
	"github.com/thoreinstein/mkt/internal/rules"
)

// ErrDuplicatePlugin indicates a plugin with the same name is already registered.
var ErrDuplicatePlugin = errors.New("plugin already exists")

// ErrNoSkills indicates a plugin was added without any skill paths.
var ErrNoSkills = errors.New("at least one skill path is required")

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// AddOptions describes the plugin entry to append.
type AddOptions struct {
	Name        string
	Description string
	// Skills are paths relative to the marketplace root. They are stored
	// with a leading "./".
	Skills []string
	// Source defaults to DefaultPluginSource when empty.
	Source string
	Strict bool
}

// SkillProblem is a skill path that did not resolve to a usable skill directory.
type SkillProblem struct {
	Path   string
	Status SkillStatus
}

// AddResult describes a completed Add.
type AddResult struct {
	Plugin   Plugin
	Problems []SkillProblem
}

// Add appends a plugin to the manifest of the marketplace at root.
//
// It fails without touching the manifest when the name is not kebab-case,
// the manifest is missing or invalid, or a plugin with that name exists.
// When any skill path does not resolve, confirm is asked whether to
// continue; declining returns mkterrors.ErrAborted. A nil confirm declines.
func Add(ctx context.Context, root string, opts AddOptions, confirm Confirmer) (*AddResult, error) {
	logger := logging.FromContext(ctx)

	if !rules.IsValidName(opts.Name) {
		return nil, errors.Mark(
			errors.Newf("invalid plugin name %q: use lowercase letters, digits and hyphens, not starting or ending with a hyphen", opts.Name),
			mkterrors.ErrInvalidName)
	}

	if len(opts.Skills) == 0 {
		return nil, ErrNoSkills
	}

	switch n := utf8.RuneCountInString(opts.Description); {
	case n < MinDescriptionLength:
		logger.Warn("description is very short; consider providing a more detailed description", "chars", n)
	case n > MaxDescriptionLength:
		logger.Warn("description is quite long; consider making it more concise", "chars", n)
	}

	doc, err := loadDocument(root)
	if err != nil {
		return nil, err
	}

	var plugins []json.RawMessage
	if _, err := doc.get("plugins", &plugins); err != nil {
		return nil, errors.Mark(errors.New("'plugins' field must be an array"), ErrInvalidManifest)
	}

	for _, raw := range plugins {
		var existing struct {
			Name any `json:"name"`
		}
		// Entries that are not objects cannot collide with a name.
		if err := json.Unmarshal(raw, &existing); err != nil {
			continue
		}
		if name, ok := existing.Name.(string); ok && name == opts.Name {
			return nil, errors.Mark(
				errors.Newf("plugin '%s' already exists in marketplace.json", opts.Name),
				ErrDuplicatePlugin)
		}
	}

	skills := make([]string, len(opts.Skills))
	for i, p := range opts.Skills {
		skills[i] = NormalizeSkillPath(p)
	}

	result := &AddResult{}
	logger.Debug("verifying skill paths", "count", len(skills))
	for _, p := range skills {
		status, _ := StatSkill(ResolveSkillPath(root, p))
		if status != SkillOK {
			logger.Warn(status.String(), "path", p)
			result.Problems = append(result.Problems, SkillProblem{Path: p, Status: status})
		}
	}

	if len(result.Problems) > 0 {
		ok := false
		if confirm != nil {
			ok, err = confirm.Confirm("Some skill paths have issues. Continue anyway?")
			if err != nil {
				return nil, errors.Wrap(err, "confirming skill paths")
			}
		}
		if !ok {
			return nil, errors.Wrap(mkterrors.ErrAborted, "skill paths not confirmed")
		}
	}

	source := opts.Source
	if source == "" {
		source = DefaultPluginSource
	}
	result.Plugin = Plugin{
		Name:        opts.Name,
		Description: opts.Description,
		Source:      source,
		Strict:      opts.Strict,
		Skills:      skills,
	}

	entry, err := marshal(result.Plugin)
	if err != nil {
		return nil, errors.Wrap(err, "encoding plugin")
	}
	if plugins == nil {
		plugins = []json.RawMessage{}
	}
	plugins = append(plugins, entry)
	if err := doc.set("plugins", plugins); err != nil {
		return nil, err
	}

	if err := saveDocument(root, doc); err != nil {
		return nil, err
	}
	logger.Info("plugin added", "name", opts.Name, "skills", len(skills))

	return result, nil
}
