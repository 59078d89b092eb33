package config

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/mkt/internal/marketplace"
	"github.com/thoreinstein/mkt/internal/rules"
	"github.com/thoreinstein/mkt/internal/validator"
)

// Validation errors for configuration fields.
var (
	// ErrUnsupportedVersion indicates a version other than CurrentVersion.
	ErrUnsupportedVersion = errors.New("unsupported config version")

	// ErrInvalidOutput indicates an unknown report format.
	ErrInvalidOutput = errors.New("invalid output format")

	// ErrInvalidEmail indicates owner.email is not a plausible address.
	ErrInvalidEmail = errors.New("invalid owner email")

	// ErrInvalidValue indicates a value containing characters that cannot
	// appear in a manifest field.
	ErrInvalidValue = errors.New("invalid value")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version != CurrentVersion {
		errs = append(errs, errors.Newf("%w: %d", ErrUnsupportedVersion, cfg.Version))
	}

	if cfg.Output != "" {
		if _, err := validator.ParseFormat(cfg.Output); err != nil {
			errs = append(errs, &FieldError{Field: KeyOutput, Value: cfg.Output, Err: ErrInvalidOutput})
		}
	}

	email := cfg.Owner.Email
	if email != "" && email != marketplace.PlaceholderOwnerEmail && !rules.IsValidEmail(email) {
		errs = append(errs, &FieldError{Field: KeyOwnerEmail, Value: email, Err: ErrInvalidEmail})
	}

	for _, f := range []struct{ key, value string }{
		{KeyOwnerName, cfg.Owner.Name},
		{KeyLicense, cfg.License},
	} {
		if strings.ContainsAny(f.value, "\n\r\x00") {
			errs = append(errs, &FieldError{Field: f.key, Value: f.value, Err: ErrInvalidValue})
		}
	}

	return errs
}

// FieldError represents an error for a specific config key.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Value
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
