package validator

import (
	"fmt"
)

// Severity represents the impact of a validation issue.
type Severity int

const (
	// SeverityError fails a run.
	SeverityError Severity = iota
	// SeverityWarning fails a run only in strict mode.
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// MarshalText encodes the severity by name so JSON and YAML reports stay readable.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Issue is a single finding.
type Issue struct {
	Severity Severity `json:"severity" yaml:"severity"`
	// Code is a stable machine-readable identifier.
	Code string `json:"code,omitempty" yaml:"code,omitempty"`
	// Field is the manifest location, e.g. "plugins[0].skills[1]".
	Field   string `json:"field,omitempty" yaml:"field,omitempty"`
	Message string `json:"message" yaml:"message"`
}

// Result aggregates validation issues in discovery order.
type Result struct {
	Issues []Issue `json:"issues" yaml:"issues"`
}

// HasErrors returns true if any issue has SeverityError.
func (r *Result) HasErrors() bool {
	return len(r.filter(SeverityError)) > 0
}

// HasWarnings returns true if any issue has SeverityWarning.
func (r *Result) HasWarnings() bool {
	return len(r.filter(SeverityWarning)) > 0
}

// Add appends an issue as-is.
func (r *Result) Add(i Issue) {
	r.Issues = append(r.Issues, i)
}

// Errorf adds a coded error issue with a formatted message.
func (r *Result) Errorf(code, field, format string, args ...any) {
	r.Add(Issue{
		Severity: SeverityError,
		Code:     code,
		Field:    field,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Warnf adds a coded warning issue with a formatted message.
func (r *Result) Warnf(code, field, format string, args ...any) {
	r.Add(Issue{
		Severity: SeverityWarning,
		Code:     code,
		Field:    field,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Errors returns a slice of all issues with SeverityError.
func (r *Result) Errors() []Issue {
	return r.filter(SeverityError)
}

// Warnings returns a slice of all issues with SeverityWarning.
func (r *Result) Warnings() []Issue {
	return r.filter(SeverityWarning)
}

func (r *Result) filter(s Severity) []Issue {
	if r == nil {
		return nil
	}
	var res []Issue
	for _, i := range r.Issues {
		if i.Severity == s {
			res = append(res, i)
		}
	}
	return res
}

// Summary is the finalized outcome of a validation run.
type Summary struct {
	// Passed is false when any error exists, or in strict mode when any warning exists.
	Passed bool `json:"passed" yaml:"passed"`
	// Strict records whether warnings were escalated.
	Strict bool `json:"strict" yaml:"strict"`
	// Target is what was validated, typically a directory (optional).
	Target   string  `json:"target,omitempty" yaml:"target,omitempty"`
	Errors   []Issue `json:"errors" yaml:"errors"`
	Warnings []Issue `json:"warnings" yaml:"warnings"`
}

// Finalize computes the verdict. Strict mode changes only Passed; the
// error and warning lists are identical in both modes.
func (r *Result) Finalize(strict bool) Summary {
	s := Summary{
		Passed:   !r.HasErrors() && !(strict && r.HasWarnings()),
		Strict:   strict,
		Errors:   r.Errors(),
		Warnings: r.Warnings(),
	}
	if s.Errors == nil {
		s.Errors = []Issue{}
	}
	if s.Warnings == nil {
		s.Warnings = []Issue{}
	}
	return s
}

// FailedOnWarnings reports whether the run failed only because strict mode
// escalated warnings.
func (s Summary) FailedOnWarnings() bool {
	return !s.Passed && len(s.Errors) == 0 && len(s.Warnings) > 0
}
