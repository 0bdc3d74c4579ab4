// Package goquery provides DOM analysis and selector-driven content
// extraction built on PuerkitoBio/goquery.
package goquery

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sitemd"
	"golang.org/x/net/html"
)

// Ensure Analyzer implements sitemd.PageAnalyzer at compile time.
var _ sitemd.PageAnalyzer = (*Analyzer)(nil)

// Analyzer scores content containers and detects boilerplate on one page.
// Scoring is a pure function of each element's subtree; the analyzer holds
// only the read-only scoring configuration and is safe for concurrent use.
type Analyzer struct {
	config sitemd.ScoringConfig
}

// NewAnalyzer creates a new Analyzer with the given scoring configuration.
func NewAnalyzer(config sitemd.ScoringConfig) *Analyzer {
	return &Analyzer{config: config}
}

// ScoreContainers scores every container candidate on the page and returns
// one selector candidate per qualifying element, in document order.
// Elements with less than config.MinTextLength characters of stripped text
// are skipped entirely.
func (a *Analyzer) ScoreContainers(htmlContent string) ([]sitemd.SelectorCandidate, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, sitemd.Errorf(sitemd.EINVALID, "failed to parse HTML: %v", err)
	}

	var candidates []sitemd.SelectorCandidate
	doc.Find(strings.Join(a.config.ContainerTags, ", ")).Each(func(_ int, sel *goquery.Selection) {
		if candidate, ok := a.scoreContainer(sel); ok {
			candidates = append(candidates, candidate)
		}
	})

	return candidates, nil
}

// scoreContainer computes the content-likelihood score and selector for one
// container element. Returns false when the element fails the minimum text
// length gate.
func (a *Analyzer) scoreContainer(sel *goquery.Selection) (sitemd.SelectorCandidate, bool) {
	text := strippedText(sel)
	textLength := utf8.RuneCountInString(text)
	if textLength < a.config.MinTextLength {
		return sitemd.SelectorCandidate{}, false
	}

	metrics := computeMetrics(sel, textLength)

	// Base components: length saturates at 5 points, diversity contributes
	// up to 3, density up to 2.
	score := minFloat(float64(metrics.TextLength)/1000, 5)
	score += metrics.Diversity() * 3
	score += minFloat(metrics.Density()/100, 2)

	tag := goquery.NodeName(sel)
	role, hasRole := sel.Attr("role")

	switch tag {
	case "main":
		score += 3
		if role == "main" {
			score += 2
		}
	case "article":
		score += 2
	case "section":
		score += 1
	}

	classes := strings.Fields(sel.AttrOr("class", ""))

	classBonus := 0.0
	for _, class := range classes {
		lower := strings.ToLower(class)
		for indicator, points := range a.config.ClassIndicators {
			if strings.Contains(lower, indicator) {
				classBonus += points
			}
		}
	}
	score += minFloat(classBonus, a.config.MaxClassBonus)

	return sitemd.SelectorCandidate{
		Selector: a.buildSelector(tag, role, hasRole, classes),
		Score:    score,
	}, true
}

// buildSelector synthesizes the CSS selector for a scored container:
// tag name, a role attribute selector when present, then either the single
// indicator-matching class or a [class*=...] narrowing on the first match.
func (a *Analyzer) buildSelector(tag, role string, hasRole bool, classes []string) string {
	var b strings.Builder
	b.WriteString(tag)

	if hasRole && role != "" {
		fmt.Fprintf(&b, "[role=%q]", role)
	}

	var significant []string
	for _, class := range classes {
		lower := strings.ToLower(class)
		for indicator := range a.config.ClassIndicators {
			if strings.Contains(lower, indicator) {
				significant = append(significant, class)
				break
			}
		}
	}

	switch {
	case len(significant) == 1:
		b.WriteString(".")
		b.WriteString(significant[0])
	case len(significant) > 1:
		fmt.Fprintf(&b, "[class*=%q]", significant[0])
	}

	return b.String()
}

// DetectBoilerplate returns the boilerplate tags and class names found on
// the page per the configured tables.
func (a *Analyzer) DetectBoilerplate(htmlContent string) (*sitemd.BoilerplateSet, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, sitemd.Errorf(sitemd.EINVALID, "failed to parse HTML: %v", err)
	}

	tags := make(map[string]bool, len(a.config.BoilerplateTags))
	for _, tag := range a.config.BoilerplateTags {
		tags[tag] = true
	}

	set := sitemd.NewBoilerplateSet()
	doc.Find("*").Each(func(_ int, sel *goquery.Selection) {
		if tag := goquery.NodeName(sel); tags[tag] {
			set.Elements[tag] = true
		}

		for _, class := range strings.Fields(sel.AttrOr("class", "")) {
			lower := strings.ToLower(class)
			for _, indicator := range a.config.BoilerplateClassIndicators {
				if strings.Contains(lower, indicator) {
					set.Classes[class] = true
					break
				}
			}
		}
	})

	return set, nil
}

// computeMetrics computes content metrics for one container subtree.
func computeMetrics(sel *goquery.Selection, textLength int) sitemd.ContentMetrics {
	return sitemd.ContentMetrics{
		TextLength:     textLength,
		ParagraphCount: sel.Find("p").Length(),
		HeadingCount:   sel.Find("h1, h2, h3, h4, h5, h6").Length(),
		LinkCount:      sel.Find("a").Length(),
		ImageCount:     sel.Find("img").Length(),
		ListCount:      sel.Find("ul, ol").Length(),
	}
}

// strippedText returns the visible text of a subtree: text nodes outside
// script/style/noscript elements, each segment whitespace-trimmed and
// concatenated.
func strippedText(sel *goquery.Selection) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript":
				return
			}
		}
		if n.Type == html.TextNode {
			b.WriteString(strings.TrimSpace(n.Data))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return b.String()
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
