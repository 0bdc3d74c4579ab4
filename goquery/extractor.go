package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sitemd"
	"golang.org/x/net/html"
)

// Ensure Extractor implements sitemd.Extractor at compile time.
var _ sitemd.Extractor = (*Extractor)(nil)

// Extractor extracts page content using the selectors from a conversion
// config: the first matching content selector wins, exclusion selectors are
// removed from the match before it is returned.
type Extractor struct {
	config *sitemd.Config
}

// NewExtractor creates a new Extractor driven by the given config.
func NewExtractor(config *sitemd.Config) *Extractor {
	return &Extractor{config: config}
}

// Extract processes raw HTML and returns the main content.
// Returns ENOTFOUND when no content selector matches the page; callers
// decide whether to fall back to a heuristic extractor or skip the page.
func (e *Extractor) Extract(rawHTML string) (*sitemd.ExtractResult, error) {
	if rawHTML == "" {
		return nil, sitemd.Errorf(sitemd.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, sitemd.Errorf(sitemd.EINVALID, "failed to parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	frontmatter := e.extractFrontmatter(doc)

	content := e.selectContent(doc)
	if content == nil {
		return nil, sitemd.Errorf(sitemd.ENOTFOUND, "no content matched selector %q", e.config.ContentSelector)
	}

	for _, selector := range e.config.ExcludeSelectors {
		content.Find(selector).Remove()
	}

	if !e.config.PreserveImages {
		content.Find("img").Remove()
	}
	if !e.config.PreserveLinks {
		content.Find("a").Each(func(_ int, a *goquery.Selection) {
			a.ReplaceWithHtml(html.EscapeString(a.Text()))
		})
	}

	contentHTML, err := goquery.OuterHtml(content)
	if err != nil {
		return nil, err
	}

	return &sitemd.ExtractResult{
		Title:       title,
		ContentHTML: contentHTML,
		Frontmatter: frontmatter,
	}, nil
}

// selectContent returns the first element matched by the comma-separated
// content selector list, or nil when nothing matches.
func (e *Extractor) selectContent(doc *goquery.Document) *goquery.Selection {
	for _, selector := range strings.Split(e.config.ContentSelector, ",") {
		selector = strings.TrimSpace(selector)
		if selector == "" {
			continue
		}
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			return sel
		}
	}
	return nil
}

// extractFrontmatter evaluates the config's frontmatter selectors against
// the page. Meta elements contribute their content attribute, everything
// else its trimmed text.
func (e *Extractor) extractFrontmatter(doc *goquery.Document) map[string]string {
	if len(e.config.Frontmatter) == 0 {
		return nil
	}

	fields := make(map[string]string, len(e.config.Frontmatter))
	for field, selector := range e.config.Frontmatter {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}

		var value string
		if goquery.NodeName(sel) == "meta" {
			value, _ = sel.Attr("content")
		} else {
			value = sel.Text()
		}
		if value = strings.TrimSpace(value); value != "" {
			fields[field] = value
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}
