// Package validator provides the finding model used by marketplace
// validation.
//
// It defines shared types for representing validation issues (errors and
// warnings), aggregating them in discovery order, and turning them
// into a pass/fail verdict.
//
// # Core Concepts
//
//   - [Severity]: Distinguishes between blocking errors and non-blocking warnings.
//   - [Issue]: A single finding with a stable code and field context.
//   - [Result]: Aggregates issues in the order they were found.
//   - [Summary]: The finalized verdict, optionally escalating warnings in strict mode.
//
// # Basic Usage
//
//	result := &validator.Result{}
//	if name == "" {
//		result.Errorf("missing_field", "name", "Missing required field: %s", "name")
//	}
//
//	summary := result.Finalize(strict)
//	if !summary.Passed {
//		// handle validation failure
//	}
package validator
