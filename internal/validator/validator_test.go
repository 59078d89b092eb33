package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverity_Text(t *testing.T) {
	for s, want := range map[Severity]string{SeverityError: "error", SeverityWarning: "warning", Severity(9): "unknown"} {
		text, err := s.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, want, string(text))
	}
}

func TestResult_Coded(t *testing.T) {
	r := &Result{}
	assert.False(t, r.HasErrors())
	assert.False(t, r.HasWarnings())

	r.Warnf("no_plugins", "plugins", "No plugins defined in marketplace.json")
	r.Errorf("duplicate_name", "plugins[1].name", "Duplicate plugin name: '%s'", "foo")

	assert.True(t, r.HasErrors())
	assert.True(t, r.HasWarnings())
	assert.Equal(t, []Issue{{
		Severity: SeverityError,
		Code:     "duplicate_name",
		Field:    "plugins[1].name",
		Message:  "Duplicate plugin name: 'foo'",
	}}, r.Errors())
	require.Len(t, r.Warnings(), 1)
	assert.Equal(t, "no_plugins", r.Warnings()[0].Code)
	// discovery order is kept
	assert.Equal(t, SeverityWarning, r.Issues[0].Severity)
}

func TestResult_NilSafety(t *testing.T) {
	var r *Result
	assert.False(t, r.HasErrors())
	assert.False(t, r.HasWarnings())
	assert.Nil(t, r.Errors())

	s := r.Finalize(true)
	assert.True(t, s.Passed)
	assert.NotNil(t, s.Errors)
	assert.NotNil(t, s.Warnings)
}

func TestResult_Finalize(t *testing.T) {
	tests := []struct {
		name       string
		errors     int
		warnings   int
		strict     bool
		wantPassed bool
	}{
		{"clean", 0, 0, false, true},
		{"clean strict", 0, 0, true, true},
		{"warning only", 0, 1, false, true},
		{"warning only strict", 0, 1, true, false},
		{"error", 1, 0, false, false},
		{"error and warning strict", 2, 3, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Result{}
			for range tt.errors {
				r.Errorf("missing_field", "f", "err")
			}
			for range tt.warnings {
				r.Warnf("placeholder_value", "f", "warn")
			}
			s := r.Finalize(tt.strict)
			assert.Equal(t, tt.wantPassed, s.Passed)
			assert.Equal(t, tt.strict, s.Strict)
			assert.Len(t, s.Errors, tt.errors)
			assert.Len(t, s.Warnings, tt.warnings)
		})
	}
}

func TestSummary_FailedOnWarnings(t *testing.T) {
	r := &Result{}
	r.Warnf("placeholder_value", "owner.name", "warn")
	assert.False(t, r.Finalize(false).FailedOnWarnings())
	assert.True(t, r.Finalize(true).FailedOnWarnings())

	r.Errorf("missing_field", "owner.email", "err")
	assert.False(t, r.Finalize(true).FailedOnWarnings())
}
