// Package textstat provides a pure implementation of gutenfreq.Analyzer.
// It tokenizes ASCII text, filters stopwords, and ranks words by frequency.
package textstat

import (
	"sort"
	"strings"

	snowballeng "github.com/kljensen/snowball/english"

	"gutenfreq"
)

// titleScanLines is how many leading lines ExtractTitle inspects for a
// TITLE: header before falling back to the first non-blank line.
const titleScanLines = 60

const titlePrefix = "TITLE:"

// Stopwords is the fixed set of common function words excluded from
// frequency counting.
var Stopwords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "if": {},
	"in": {}, "on": {}, "at": {}, "to": {}, "of": {}, "for": {},
	"with": {}, "without": {}, "from": {}, "by": {},
	"i": {}, "you": {}, "he": {}, "she": {}, "it": {}, "we": {}, "they": {},
	"this": {}, "that": {}, "these": {}, "those": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {},
	"as": {}, "so": {}, "than": {}, "then": {}, "there": {}, "here": {},
}

// Ensure Analyzer implements gutenfreq.Analyzer at compile time.
var _ gutenfreq.Analyzer = (*Analyzer)(nil)

// Analyzer computes word statistics over plain text. The zero value counts
// surface forms as they appear; WithStemming collapses inflected forms.
type Analyzer struct {
	stem bool
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithStemming reduces tokens to their Snowball English stem before
// counting, so "running", "runs", and "run" count as one word.
func WithStemming() Option {
	return func(a *Analyzer) {
		a.stem = true
	}
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// TopWords returns the n most frequent words in text, excluding stopwords
// and single-character tokens. The result is ordered by count descending,
// word ascending, so equal inputs always rank identically. Returns an empty
// list when n <= 0.
func (a *Analyzer) TopWords(text string, n int) []gutenfreq.WordCount {
	if n <= 0 {
		return nil
	}

	counts := make(map[string]int)
	for _, token := range tokenize(text) {
		if len(token) <= 1 {
			continue
		}
		if _, ok := Stopwords[token]; ok {
			continue
		}
		if a.stem {
			token = snowballeng.Stem(token, false)
		}
		counts[token]++
	}

	ranked := make([]gutenfreq.WordCount, 0, len(counts))
	for word, count := range counts {
		ranked = append(ranked, gutenfreq.WordCount{Word: word, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Word < ranked[j].Word
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// tokenize lowercases text and splits it into maximal runs of ASCII letters
// and apostrophes.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return (r < 'a' || r > 'z') && r != '\''
	})
}

// ExtractTitle returns a best-effort title for a Project Gutenberg text. It
// scans the first 60 lines for a "TITLE:" header and returns the remainder;
// failing that, the first non-blank line of the whole text; failing that,
// "Unknown Title".
func (a *Analyzer) ExtractTitle(text string) string {
	lines := strings.Split(text, "\n")

	for i, line := range lines {
		if i >= titleScanLines {
			break
		}
		line = strings.TrimSpace(line)
		if len(line) >= len(titlePrefix) && strings.EqualFold(line[:len(titlePrefix)], titlePrefix) {
			return strings.TrimSpace(line[len(titlePrefix):])
		}
	}

	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}

	return "Unknown Title"
}
