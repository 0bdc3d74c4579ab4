package mock

import "github.com/fwojciec/sitemd"

var _ sitemd.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of sitemd.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*sitemd.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*sitemd.ExtractResult, error) {
	return e.ExtractFn(html)
}
