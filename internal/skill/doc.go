// Package skill finds and scaffolds skill directories inside a marketplace.
//
// A skill is any directory containing SKILL.md. [Discover] walks a
// marketplace root and reads each skill's frontmatter header; [Create]
// writes a new SKILL.md.
package skill
