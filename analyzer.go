package gutenfreq

// Analyzer computes word statistics over plain text. Implementations are
// pure: both methods are total functions over their inputs and never fail,
// including on empty text.
type Analyzer interface {
	// TopWords returns the n most frequent words in text, excluding
	// stopwords and single-character tokens, ordered by count descending
	// with ties broken by ascending word. Returns an empty list when
	// n <= 0.
	TopWords(text string, n int) []WordCount

	// ExtractTitle returns a best-effort title for the text. The result is
	// a heuristic, not a guarantee.
	ExtractTitle(text string) string
}
