package prompt

import (
	"fmt"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/thoreinstein/mkt/internal/errors"
	"github.com/thoreinstein/mkt/internal/skill"
)

// FuzzyPicker selects skills with a full-screen fuzzy finder. Tab marks
// multiple entries.
type FuzzyPicker struct{}

// Pick implements Picker. Aborting the finder returns ErrSelectionCancelled.
func (FuzzyPicker) Pick(skills []*skill.Skill) ([]*skill.Skill, error) {
	if len(skills) == 0 {
		return nil, ErrNoSkills
	}

	idxs, err := fuzzyfinder.FindMulti(
		skills,
		func(i int) string {
			return skills[i].Label()
		},
		fuzzyfinder.WithHeader("Select skills for the plugin (Tab to mark, Enter to accept)"),
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			return preview(skills[i])
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil, ErrSelectionCancelled
		}
		return nil, errors.Wrap(err, "interactive skill selection failed")
	}

	selected := make([]*skill.Skill, 0, len(idxs))
	for _, i := range idxs {
		selected = append(selected, skills[i])
	}
	return selected, nil
}

func preview(s *skill.Skill) string {
	name := s.Name
	if name == "" {
		name = "(no frontmatter name)"
	}
	return fmt.Sprintf("Path: %s\nName: %s\n\nDescription:\n%s", s.Path, name, s.Description)
}
