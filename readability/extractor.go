// Package readability implements sitemd.Extractor using go-readability.
// It serves as a heuristic fallback when the configured content selector
// matches nothing on a page.
package readability

import (
	"strings"

	"github.com/fwojciec/sitemd"
	readability "github.com/go-shiori/go-readability"
)

var _ sitemd.Extractor = (*Extractor)(nil)

// Extractor extracts main content from HTML using readability's
// article-detection heuristics. It ignores selector configuration.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*sitemd.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, sitemd.Errorf(sitemd.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(article.Content) == "" {
		return nil, sitemd.Errorf(sitemd.ENOTFOUND, "no extractable content found")
	}

	return &sitemd.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
