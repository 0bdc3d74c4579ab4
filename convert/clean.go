package convert

import (
	"regexp"
	"strings"
)

// Conversion artifacts cleaned out of generated markdown. Horizontal-rule
// noise and stray emphasis markers come from themed layout elements that
// survive extraction; the spacing rules normalize what the converter emits
// around headers.
var (
	hrArtifactRe     = regexp.MustCompile(`\n\* \* \*\n+`)
	strayEmphasisRe  = regexp.MustCompile(`\n__\n`)
	headerSpacingRe  = regexp.MustCompile(`(\n#{1,6} [^\n]+)\n+`)
	excessNewlinesRe = regexp.MustCompile(`\n{3,}`)
)

// CleanMarkdown normalizes converter output: drops horizontal-rule and
// emphasis artifacts, gives every header exactly one blank line below it,
// and collapses runs of blank lines.
func CleanMarkdown(markdown string) string {
	markdown = hrArtifactRe.ReplaceAllString(markdown, "\n\n")
	markdown = strayEmphasisRe.ReplaceAllString(markdown, "\n")
	markdown = headerSpacingRe.ReplaceAllString(markdown, "$1\n\n")
	markdown = excessNewlinesRe.ReplaceAllString(markdown, "\n\n")
	return strings.TrimSpace(markdown)
}
