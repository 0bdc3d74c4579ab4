package mock

import "github.com/fwojciec/sitemd"

var _ sitemd.PageAnalyzer = (*PageAnalyzer)(nil)

// PageAnalyzer is a mock implementation of sitemd.PageAnalyzer.
type PageAnalyzer struct {
	ScoreContainersFn   func(html string) ([]sitemd.SelectorCandidate, error)
	DetectBoilerplateFn func(html string) (*sitemd.BoilerplateSet, error)
}

func (a *PageAnalyzer) ScoreContainers(html string) ([]sitemd.SelectorCandidate, error) {
	return a.ScoreContainersFn(html)
}

func (a *PageAnalyzer) DetectBoilerplate(html string) (*sitemd.BoilerplateSet, error) {
	return a.DetectBoilerplateFn(html)
}
