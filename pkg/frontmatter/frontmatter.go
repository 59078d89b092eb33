package frontmatter

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Delimiter opens and closes a frontmatter block.
const Delimiter = "---"

// ErrInvalidYAML is returned when the block exists but does not decode.
var ErrInvalidYAML = errors.New("invalid YAML in frontmatter")

// ParseHeader decodes only the frontmatter from r into matter.
// It stops reading after the closing delimiter, so large bodies are never
// loaded. Content without frontmatter is a silent success and leaves matter
// untouched.
func ParseHeader(r io.Reader, matter any) error {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		return scanner.Err()
	}
	if strings.TrimSpace(scanner.Text()) != Delimiter {
		return nil
	}

	var buf bytes.Buffer
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == Delimiter {
			if err := yaml.Unmarshal(buf.Bytes(), matter); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidYAML, err)
			}
			return nil
		}
		buf.WriteString(strings.TrimSuffix(line, "\r"))
		buf.WriteString("\n")
	}

	return scanner.Err()
}

// Format serializes matter to YAML between delimiters, followed by a blank
// line and body. An empty body yields only the frontmatter block.
func Format(matter any, body string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(Delimiter + "\n")

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(matter); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}

	buf.WriteString(Delimiter + "\n")
	if body != "" {
		buf.WriteString("\n")
		buf.WriteString(body)
		if !strings.HasSuffix(body, "\n") {
			buf.WriteString("\n")
		}
	}

	return buf.Bytes(), nil
}
