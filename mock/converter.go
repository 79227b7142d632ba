package mock

import "github.com/fwojciec/hugomirror"

var _ hugomirror.Converter = (*Converter)(nil)

// Converter is a mock implementation of hugomirror.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
