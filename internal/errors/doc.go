// Package errors holds mkt's sentinel errors, exit codes and the
// [ExitError] that carries both to main.
//
// Construction and wrapping helpers are re-exported from
// github.com/cockroachdb/errors, so a single import serves both:
//
//	if errors.Is(err, errors.ErrNotFound) {
//		return errors.NewUserError(err, "Run 'mkt init <name>' first")
//	}
//
// main prints the error, then the suggestion as a hint, and exits with
// [Code] of the error.
package errors
