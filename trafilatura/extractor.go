// Package trafilatura implements sitemd.Extractor using go-trafilatura.
// It serves as a heuristic fallback when the configured content selector
// matches nothing on a page.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/sitemd"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

var _ sitemd.Extractor = (*Extractor)(nil)

// Extractor extracts main content from HTML using trafilatura's
// content-detection heuristics. It ignores selector configuration.
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

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	if strings.TrimSpace(contentHTML) == "" {
		return nil, sitemd.Errorf(sitemd.ENOTFOUND, "no extractable content found")
	}

	return &sitemd.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
