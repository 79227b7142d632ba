package mock

import "github.com/fwojciec/hugomirror"

var _ hugomirror.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of hugomirror.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*hugomirror.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*hugomirror.ExtractResult, error) {
	return e.ExtractFn(html)
}
