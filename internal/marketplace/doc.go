// Package marketplace implements the marketplace manifest model and the
// checks run against it.
//
// A marketplace is a directory whose .claude-plugin/marketplace.json lists
// plugins. Each plugin names one or more skill directories, and each skill
// directory holds a SKILL.md file that starts with a YAML frontmatter block.
//
// # Validation
//
// [Checker] walks marketplace → plugins → skills → frontmatter and
// accumulates findings into a [validator.Result]. Only the codes for which
// [Code.Fatal] holds (a missing root, a missing or unreadable manifest, or
// a manifest that is not a JSON object) abort a run;
// every other problem is recorded and checking continues so that a single
// run reports as much as possible:
//
//	res := marketplace.NewChecker(root).Check()
//	summary := res.Finalize(strict)
//
// The frontmatter check looks for "name:" and "description:" key patterns
// rather than parsing YAML. A key that only appears inside a YAML comment
// still satisfies it.
//
// # Mutation
//
// [Add] appends a plugin to an existing manifest. It fails before writing
// on an invalid name, a duplicate name, or an unreadable manifest, and asks
// a [Confirmer] before registering skill paths that do not resolve.
package marketplace
