package sitemd

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string

	// Frontmatter holds additional fields extracted per the config's
	// frontmatter selectors.
	Frontmatter map[string]string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	// Returns ENOTFOUND when the page contains no extractable content;
	// callers decide whether to fall back or skip the page.
	Extract(html string) (*ExtractResult, error)
}
