package sitemd

import "sort"

// ContentMetrics describes the measurable content of one DOM container.
// It is computed fresh per element during scoring and never mutated.
type ContentMetrics struct {
	// TextLength is the number of visible text characters in the subtree,
	// excluding script and style contents.
	TextLength int

	// Counts of structural descendant categories.
	ParagraphCount int
	HeadingCount   int
	LinkCount      int
	ImageCount     int
	ListCount      int
}

// structuralCategories is the number of categories tracked by ContentMetrics.
const structuralCategories = 5

// TotalElements returns the total count of structural descendants.
func (m ContentMetrics) TotalElements() int {
	return m.ParagraphCount + m.HeadingCount + m.LinkCount + m.ImageCount + m.ListCount
}

// Density returns text characters per structural element.
// Returns 0 when the subtree has no structural elements.
func (m ContentMetrics) Density() float64 {
	total := m.TotalElements()
	if total == 0 {
		return 0
	}
	return float64(m.TextLength) / float64(total)
}

// Diversity returns the fraction of structural categories present in the
// subtree, in [0, 1].
func (m ContentMetrics) Diversity() float64 {
	present := 0
	for _, count := range []int{m.ParagraphCount, m.HeadingCount, m.LinkCount, m.ImageCount, m.ListCount} {
		if count > 0 {
			present++
		}
	}
	return float64(present) / float64(structuralCategories)
}

// SelectorCandidate is a CSS selector proposed by scoring one container
// element, paired with its content-likelihood score.
type SelectorCandidate struct {
	Selector string
	Score    float64
}

// BoilerplateSet accumulates tag names and class names identified as
// boilerplate across a corpus. Both sets are unions: duplicate discovery
// collapses to one membership, so accumulation is idempotent and
// order-independent.
type BoilerplateSet struct {
	Elements map[string]bool
	Classes  map[string]bool
}

// NewBoilerplateSet returns an empty BoilerplateSet.
func NewBoilerplateSet() *BoilerplateSet {
	return &BoilerplateSet{
		Elements: make(map[string]bool),
		Classes:  make(map[string]bool),
	}
}

// Union merges other into s.
func (s *BoilerplateSet) Union(other *BoilerplateSet) {
	if other == nil {
		return
	}
	for tag := range other.Elements {
		s.Elements[tag] = true
	}
	for class := range other.Classes {
		s.Classes[class] = true
	}
}

// Len returns the total number of accumulated entries.
func (s *BoilerplateSet) Len() int {
	return len(s.Elements) + len(s.Classes)
}

// Selectors renders the set as a deterministic exclusion list: tag names as-is,
// classes as ".className", sorted lexicographically over the rendered strings.
func (s *BoilerplateSet) Selectors() []string {
	selectors := make([]string, 0, s.Len())
	for tag := range s.Elements {
		selectors = append(selectors, tag)
	}
	for class := range s.Classes {
		selectors = append(selectors, "."+class)
	}
	sort.Strings(selectors)
	return selectors
}

// ScoringConfig holds the tables and thresholds that drive selector
// inference. It is shared read-only across all elements and pages of a
// scoring run.
type ScoringConfig struct {
	// ContainerTags are the elements considered content container candidates.
	ContainerTags []string

	// MinTextLength gates scoring: containers with less stripped text
	// produce no candidate.
	MinTextLength int

	// ClassIndicators maps content-suggesting class substrings to bonus
	// points. An element can earn points from multiple indicators and
	// multiple classes; the total is capped at MaxClassBonus.
	ClassIndicators map[string]float64

	// MaxClassBonus caps the summed class bonus.
	MaxClassBonus float64

	// BoilerplateTags are elements contributed verbatim to the boilerplate
	// element set when present on a page.
	BoilerplateTags []string

	// BoilerplateClassIndicators are substrings tested against lower-cased
	// class names; a matching class is contributed to the boilerplate class
	// set.
	BoilerplateClassIndicators []string

	// AcceptanceThreshold is the minimum aggregated score (strict) a
	// selector needs to survive synthesis.
	AcceptanceThreshold float64

	// MaxSelectors is the number of top candidates joined into the emitted
	// content selector.
	MaxSelectors int
}

// DefaultScoringConfig returns the canonical scoring configuration.
// The boilerplate tables use the more inclusive variants.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		ContainerTags: []string{"main", "article", "section", "div"},
		MinTextLength: 50,
		ClassIndicators: map[string]float64{
			"content":   2.0,
			"main":      2.0,
			"article":   1.5,
			"container": 1.0,
			"section":   0.5,
		},
		MaxClassBonus: 3.0,
		BoilerplateTags: []string{
			"header", "footer", "nav", "aside", "script", "style",
			"noscript", "iframe", "form", "button", "input", "select",
			"textarea", "meta", "link", "img",
		},
		BoilerplateClassIndicators: []string{
			"header", "footer", "nav", "navigation", "menu", "sidebar",
			"advertisement", "ad", "social", "share", "comment", "form",
			"search", "login", "signup", "button", "btn", "modal",
			"popup", "cookie", "banner", "alert", "notification",
		},
		AcceptanceThreshold: 5.0,
		MaxSelectors:        3,
	}
}

// PageAnalyzer inspects one HTML page for selector inference.
type PageAnalyzer interface {
	// ScoreContainers scores every content container candidate on the page
	// and returns one candidate per qualifying element, in document order.
	ScoreContainers(html string) ([]SelectorCandidate, error)

	// DetectBoilerplate returns the boilerplate tags and classes found on
	// the page.
	DetectBoilerplate(html string) (*BoilerplateSet, error)
}
