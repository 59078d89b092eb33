// Package frontmatter reads and writes the YAML block that opens a
// SKILL.md file:
//
//	---
//	name: pdf-tools
//	description: Extract text and tables from PDF files
//	---
//
//	# PDF tools
//
// [ParseHeader] decodes the block and stops at the closing delimiter, so
// listing many skills never loads their bodies. [Format] writes a block
// followed by a body. Both LF and CRLF line endings are accepted.
package frontmatter
