// Package clean normalizes raw markdown for LLM consumption.
//
// The pipeline is a fixed sequence of text removals followed by whitespace
// normalization. It is idempotent: cleaning already-cleaned content is a
// no-op, which the tests rely on.
package clean

import (
	"regexp"
	"strings"
)

// tocMarker is the heading that introduces a table-of-contents section.
const tocMarker = "## 🎯 Table of Contents"

var (
	nextBreadcrumbRe = regexp.MustCompile(`\*\*Next:\*\*[^\n]*`)
	lastUpdatedRe    = regexp.MustCompile(`---\n\n\*Last updated:[^\n]*`)
	htmlCommentRe    = regexp.MustCompile(`(?s)<!--.*?-->`)
	blankRunRe       = regexp.MustCompile(`\n{3,}`)
)

// Content cleans markdown content. The removals run first; the blank-line
// collapse runs after them so that stripped blocks never leave gaps, and the
// trailing trim is always the last step.
func Content(content string) string {
	content = stripTableOfContents(content)
	content = nextBreadcrumbRe.ReplaceAllString(content, "")
	content = lastUpdatedRe.ReplaceAllString(content, "")
	content = htmlCommentRe.ReplaceAllString(content, "")
	content = CollapseBlankLines(content)
	return strings.TrimSpace(content)
}

// CollapseBlankLines reduces any run of 3+ consecutive newlines to exactly
// two (one blank line). Also used as the final normalization pass over the
// assembled full dump.
func CollapseBlankLines(content string) string {
	return blankRunRe.ReplaceAllString(content, "\n\n")
}

// stripTableOfContents removes every table-of-contents section: from the
// marker heading up to, but not including, the next "##" or end of text.
func stripTableOfContents(content string) string {
	for {
		start := strings.Index(content, tocMarker)
		if start < 0 {
			return content
		}
		rest := content[start+len(tocMarker):]
		next := strings.Index(rest, "##")
		if next < 0 {
			content = content[:start]
			continue
		}
		content = content[:start] + rest[next:]
	}
}
