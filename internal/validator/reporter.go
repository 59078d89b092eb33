package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// Format specifies the output format for validation reports.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
	// FormatYAML produces machine-readable YAML output.
	FormatYAML Format = "yaml"
)

// Formats returns the supported report formats.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatYAML}
}

// ParseFormat converts s to a Format, rejecting unknown values.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats() {
		if string(f) == s {
			return f, nil
		}
	}
	return "", errors.Newf("unknown output format %q (valid: text, json, yaml)", s)
}

// Reporter formats and writes validation summaries.
type Reporter struct {
	out    io.Writer
	format Format
}

// NewReporter creates a new Reporter.
func NewReporter(out io.Writer, format Format) *Reporter {
	return &Reporter{
		out:    out,
		format: format,
	}
}

// Report writes the validation summary to the output.
func (r *Reporter) Report(s Summary) error {
	switch r.format {
	case FormatJSON:
		return r.reportJSON(s)
	case FormatYAML:
		return r.reportYAML(s)
	default:
		return r.reportText(s)
	}
}

func (r *Reporter) reportJSON(s Summary) error {
	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(s), "encoding JSON report")
}

func (r *Reporter) reportYAML(s Summary) error {
	encoder := yaml.NewEncoder(r.out)
	encoder.SetIndent(2)
	if err := encoder.Encode(s); err != nil {
		return errors.Wrap(err, "encoding YAML report")
	}
	return errors.Wrap(encoder.Close(), "flushing YAML report")
}

// reportText writes warnings, then errors, then the verdict.
func (r *Reporter) reportText(s Summary) error {
	if len(s.Warnings) > 0 {
		fmt.Fprintln(r.out, "Warnings:")
		for _, warn := range s.Warnings {
			r.printIssue(warn, color.FgYellow)
		}
		fmt.Fprintln(r.out)
	}

	if len(s.Errors) > 0 {
		fmt.Fprintln(r.out, "Errors:")
		for _, err := range s.Errors {
			r.printIssue(err, color.FgRed)
		}
		fmt.Fprintln(r.out)
	}

	switch {
	case s.Passed && len(s.Warnings) > 0:
		fmt.Fprintf(r.out, "%s (%s)\n",
			color.GreenString("✓ Validation passed"),
			color.YellowString("%d warning(s)", len(s.Warnings)))
	case s.Passed:
		fmt.Fprintln(r.out, color.GreenString("✓ Validation passed"))
	case s.FailedOnWarnings():
		fmt.Fprintf(r.out, "%s: %s\n",
			color.RedString("✗ Validation failed in strict mode"),
			color.YellowString("%d warning(s)", len(s.Warnings)))
	default:
		summary := []string{color.RedString("%d error(s)", len(s.Errors))}
		if len(s.Warnings) > 0 {
			summary = append(summary, color.YellowString("%d warning(s)", len(s.Warnings)))
		}
		fmt.Fprintf(r.out, "%s: %s\n", color.RedString("✗ Validation failed"), strings.Join(summary, ", "))
	}

	return nil
}

// printIssue writes "  • field: message", with the field colored.
func (r *Reporter) printIssue(i Issue, c color.Attribute) {
	var sb strings.Builder
	sb.WriteString("  • ")
	if i.Field != "" {
		sb.WriteString(color.New(c).Sprint(i.Field))
		sb.WriteString(": ")
	}
	sb.WriteString(i.Message)
	fmt.Fprintln(r.out, sb.String())
}
