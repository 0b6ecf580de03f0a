package mock

import "gutenfreq"

var _ gutenfreq.Analyzer = (*Analyzer)(nil)

// Analyzer is a mock implementation of gutenfreq.Analyzer.
type Analyzer struct {
	TopWordsFn     func(text string, n int) []gutenfreq.WordCount
	ExtractTitleFn func(text string) string
}

func (a *Analyzer) TopWords(text string, n int) []gutenfreq.WordCount {
	return a.TopWordsFn(text, n)
}

func (a *Analyzer) ExtractTitle(text string) string {
	return a.ExtractTitleFn(text)
}
