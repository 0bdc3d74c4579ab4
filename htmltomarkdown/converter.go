// Package htmltomarkdown implements sitemd.Converter using the
// html-to-markdown library.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/sitemd"
)

var _ sitemd.Converter = (*Converter)(nil)

// Converter converts extracted HTML fragments to Markdown. Tables are
// converted to GitHub-flavored pipe tables; everything else follows
// CommonMark.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms an HTML fragment into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", sitemd.Errorf(sitemd.EINVALID, "empty HTML input")
	}
	return c.conv.ConvertString(html)
}
