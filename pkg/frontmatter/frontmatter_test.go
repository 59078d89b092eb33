package frontmatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type skillMeta struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

func TestParseHeader(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    skillMeta
		wantErr error
	}{
		{
			name:  "stops at closing delimiter",
			input: "---\nname: pdf-tools\ndescription: Extract text\n---\n" + strings.Repeat("body\n", 1000) + "---\nname: ignored\n---\n",
			want:  skillMeta{Name: "pdf-tools", Description: "Extract text"},
		},
		{
			name:  "CRLF",
			input: "---\r\nname: crlf\r\n---\r\n",
			want:  skillMeta{Name: "crlf"},
		},
		{
			name:  "multiline description",
			input: "---\nname: notes\ndescription: |\n  first\n  second\n---\n",
			want:  skillMeta{Name: "notes", Description: "first\nsecond\n"},
		},
		{name: "no frontmatter is silent", input: "# Title\n"},
		{name: "empty input", input: ""},
		{name: "unclosed block is silent", input: "---\nname: unclosed\n"},
		{name: "invalid YAML", input: "---\nname: [broken\n---\n", wantErr: ErrInvalidYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var meta skillMeta
			err := ParseHeader(strings.NewReader(tt.input), &meta)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, meta)
		})
	}
}

func TestFormat(t *testing.T) {
	meta := skillMeta{Name: "pdf-tools", Description: "Extract text and tables from PDF files"}

	got, err := Format(meta, "# PDF tools")
	require.NoError(t, err)
	assert.Equal(t, "---\nname: pdf-tools\ndescription: Extract text and tables from PDF files\n---\n\n# PDF tools\n", string(got))

	got, err = Format(meta, "")
	require.NoError(t, err)
	assert.Equal(t, "---\nname: pdf-tools\ndescription: Extract text and tables from PDF files\n---\n", string(got))

	var back skillMeta
	require.NoError(t, ParseHeader(strings.NewReader(string(got)), &back))
	assert.Equal(t, meta, back)
}
