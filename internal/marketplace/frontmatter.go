package marketplace

import (
	"regexp"
	"strings"
)

const frontmatterDelimiter = "---"

var (
	nameKeyRegex        = regexp.MustCompile(`name\s*:`)
	descriptionKeyRegex = regexp.MustCompile(`description\s*:`)
)

// FrontmatterProblem is one defect found in a SKILL.md frontmatter block.
type FrontmatterProblem struct {
	Code Code
	// Field is set for CodeMissingField.
	Field string
}

// CheckFrontmatter inspects SKILL.md content. The content must begin with
// "---", contain a closing "---", and the block between them must contain
// "name:" and "description:" key patterns. YAML is not parsed.
func CheckFrontmatter(content string) []FrontmatterProblem {
	if !strings.HasPrefix(content, frontmatterDelimiter) {
		return []FrontmatterProblem{{Code: CodeMissingFrontmatter}}
	}

	parts := strings.SplitN(content, frontmatterDelimiter, 3)
	if len(parts) < 3 {
		return []FrontmatterProblem{{Code: CodeMalformedFrontmatter}}
	}

	block := strings.TrimSpace(parts[1])

	var problems []FrontmatterProblem
	if !nameKeyRegex.MatchString(block) {
		problems = append(problems, FrontmatterProblem{Code: CodeMissingField, Field: "name"})
	}
	if !descriptionKeyRegex.MatchString(block) {
		problems = append(problems, FrontmatterProblem{Code: CodeMissingField, Field: "description"})
	}
	return problems
}
