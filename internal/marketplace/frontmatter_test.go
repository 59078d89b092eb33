package marketplace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckFrontmatter(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []FrontmatterProblem
	}{
		{
			name:    "valid",
			content: "---\nname: pdf\ndescription: Work with PDFs\n---\n\n# PDF\n",
		},
		{
			name:    "no opening delimiter",
			content: "# PDF\n---\nname: pdf\n---\n",
			want:    []FrontmatterProblem{{Code: CodeMissingFrontmatter}},
		},
		{
			name:    "leading blank line",
			content: "\n---\nname: pdf\ndescription: d\n---\n",
			want:    []FrontmatterProblem{{Code: CodeMissingFrontmatter}},
		},
		{
			name:    "unclosed",
			content: "---\nname: pdf\ndescription: d\n",
			want:    []FrontmatterProblem{{Code: CodeMalformedFrontmatter}},
		},
		{
			name:    "missing name",
			content: "---\ndescription: d\n---\n",
			want:    []FrontmatterProblem{{Code: CodeMissingField, Field: "name"}},
		},
		{
			name:    "missing both in order",
			content: "---\ntitle: x\n---\n",
			want: []FrontmatterProblem{
				{Code: CodeMissingField, Field: "name"},
				{Code: CodeMissingField, Field: "description"},
			},
		},
		{
			name:    "whitespace before colon",
			content: "---\nname   : pdf\ndescription\t: d\n---\n",
		},
		{
			name:    "key inside a comment still counts",
			content: "---\n# name: pdf\ndescription: d\n---\n",
		},
		{
			name:    "key inside another key counts",
			content: "---\nskill_name: pdf\nlong_description: d\n---\n",
		},
		{
			name:    "keys only in body do not count",
			content: "---\ntitle: x\n---\nname: pdf\ndescription: d\n",
			want: []FrontmatterProblem{
				{Code: CodeMissingField, Field: "name"},
				{Code: CodeMissingField, Field: "description"},
			},
		},
		{
			name:    "empty block",
			content: "------",
			want: []FrontmatterProblem{
				{Code: CodeMissingField, Field: "name"},
				{Code: CodeMissingField, Field: "description"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckFrontmatter(tt.content))
		})
	}
}
