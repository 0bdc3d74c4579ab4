package mock

import "github.com/fwojciec/sitemd"

var _ sitemd.Converter = (*Converter)(nil)

// Converter is a mock implementation of sitemd.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
