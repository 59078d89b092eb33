// Package rules provides the format predicates shared by marketplace
// validation, scaffolding and plugin registration.
package rules

import "regexp"

var (
	// semverRegex matches MAJOR.MINOR.PATCH with optional -prerelease and +build.
	semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+(-[a-zA-Z0-9.]+)?(\+[a-zA-Z0-9.]+)?$`)

	// emailRegex is a syntactic sanity check, not RFC 5322.
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// IsValidName reports whether s is kebab-case: non-empty, only lowercase
// ASCII letters, digits and hyphens, not starting or ending with a hyphen.
// Case is not folded and consecutive hyphens are accepted.
func IsValidName(s string) bool {
	if s == "" || s[0] == '-' || s[len(s)-1] == '-' {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c == '-':
		default:
			return false
		}
	}
	return true
}

// IsValidSemver reports whether s is a semantic version string.
// No numeric range restriction is applied.
func IsValidSemver(s string) bool {
	return semverRegex.MatchString(s)
}

// IsValidEmail reports whether s looks like local@domain.tld.
func IsValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}
