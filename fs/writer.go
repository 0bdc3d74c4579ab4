package fs

import (
	"sort"
	"strings"

	"github.com/fwojciec/sitemd"
)

// PathToMarkdown converts a relative HTML page path to its markdown output
// path. Example: docs/api/users.html → docs/api/users.md
func PathToMarkdown(relPath string) string {
	return strings.TrimSuffix(relPath, ".html") + ".md"
}

// FormatDocument formats a document with YAML frontmatter.
func FormatDocument(doc *sitemd.Document) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(doc.SourcePath)
	b.WriteString("\ntitle: ")
	b.WriteString(doc.Title)
	b.WriteString("\nconverted: ")
	b.WriteString(doc.ConvertedAt.Format("2006-01-02"))

	// Extra frontmatter fields in sorted order for determinism. Title is
	// already written above.
	fields := make([]string, 0, len(doc.Frontmatter))
	for field := range doc.Frontmatter {
		if field == "title" {
			continue
		}
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		b.WriteString("\n")
		b.WriteString(field)
		b.WriteString(": ")
		b.WriteString(doc.Frontmatter[field])
	}

	b.WriteString("\n---\n\n")
	b.WriteString(doc.Content)
	return b.String()
}
