package textstat_test

import (
	"strings"
	"testing"

	"gutenfreq"
	"gutenfreq/textstat"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzer_TopWords(t *testing.T) {
	t.Parallel()

	t.Run("counts case-folded words and filters stopwords", func(t *testing.T) {
		t.Parallel()

		analyzer := textstat.NewAnalyzer()
		words := analyzer.TopWords("The cat sat on the mat. The Cat ran.", 10)

		assert.Equal(t, []gutenfreq.WordCount{
			{Word: "cat", Count: 2},
			{Word: "mat", Count: 1},
			{Word: "ran", Count: 1},
			{Word: "sat", Count: 1},
		}, words)
	})

	t.Run("breaks count ties by ascending word", func(t *testing.T) {
		t.Parallel()

		analyzer := textstat.NewAnalyzer()
		words := analyzer.TopWords("zebra apple zebra apple mango", 10)

		assert.Equal(t, []gutenfreq.WordCount{
			{Word: "apple", Count: 2},
			{Word: "zebra", Count: 2},
			{Word: "mango", Count: 1},
		}, words)
	})

	t.Run("truncates to n entries", func(t *testing.T) {
		t.Parallel()

		analyzer := textstat.NewAnalyzer()
		words := analyzer.TopWords("alpha bravo charlie delta echo", 3)

		require.Len(t, words, 3)
		assert.Equal(t, "alpha", words[0].Word)
	})

	t.Run("returns empty for non-positive n", func(t *testing.T) {
		t.Parallel()

		analyzer := textstat.NewAnalyzer()
		assert.Empty(t, analyzer.TopWords("some text here", 0))
		assert.Empty(t, analyzer.TopWords("some text here", -5))
	})

	t.Run("returns empty for empty text", func(t *testing.T) {
		t.Parallel()

		analyzer := textstat.NewAnalyzer()
		assert.Empty(t, analyzer.TopWords("", 10))
	})

	t.Run("drops single-character tokens", func(t *testing.T) {
		t.Parallel()

		analyzer := textstat.NewAnalyzer()
		words := analyzer.TopWords("x y z whale", 10)

		assert.Equal(t, []gutenfreq.WordCount{{Word: "whale", Count: 1}}, words)
	})

	t.Run("keeps apostrophes inside tokens", func(t *testing.T) {
		t.Parallel()

		analyzer := textstat.NewAnalyzer()
		words := analyzer.TopWords("don't stop, don't!", 10)

		assert.Equal(t, []gutenfreq.WordCount{
			{Word: "don't", Count: 2},
			{Word: "stop", Count: 1},
		}, words)
	})

	t.Run("splits on digits and punctuation", func(t *testing.T) {
		t.Parallel()

		analyzer := textstat.NewAnalyzer()
		words := analyzer.TopWords("chapter1chapter2 whale-road", 10)

		assert.Equal(t, []gutenfreq.WordCount{
			{Word: "chapter", Count: 2},
			{Word: "road", Count: 1},
			{Word: "whale", Count: 1},
		}, words)
	})

	t.Run("never returns a stopword", func(t *testing.T) {
		t.Parallel()

		analyzer := textstat.NewAnalyzer()
		text := "the whale and the sea were there with it"
		for _, wc := range analyzer.TopWords(text, 10) {
			_, isStopword := textstat.Stopwords[wc.Word]
			assert.False(t, isStopword, "stopword %q in results", wc.Word)
			assert.GreaterOrEqual(t, wc.Count, 1)
		}
	})
}

func TestAnalyzer_TopWords_Stemming(t *testing.T) {
	t.Parallel()

	t.Run("collapses inflected forms when enabled", func(t *testing.T) {
		t.Parallel()

		analyzer := textstat.NewAnalyzer(textstat.WithStemming())
		words := analyzer.TopWords("running runs run", 10)

		require.Len(t, words, 1)
		assert.Equal(t, 3, words[0].Count)
	})

	t.Run("default analyzer keeps surface forms", func(t *testing.T) {
		t.Parallel()

		analyzer := textstat.NewAnalyzer()
		words := analyzer.TopWords("running runs run", 10)

		assert.Len(t, words, 3)
	})
}

func TestAnalyzer_ExtractTitle(t *testing.T) {
	t.Parallel()

	t.Run("finds TITLE: header in leading lines", func(t *testing.T) {
		t.Parallel()

		analyzer := textstat.NewAnalyzer()
		title := analyzer.ExtractTitle("Some preamble\nTITLE: Moby Dick\nmore text")

		assert.Equal(t, "Moby Dick", title)
	})

	t.Run("matches header case-insensitively with surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		analyzer := textstat.NewAnalyzer()
		title := analyzer.ExtractTitle("\n   title:   Frankenstein   \nbody")

		assert.Equal(t, "Frankenstein", title)
	})

	t.Run("ignores TITLE: header past the first 60 lines", func(t *testing.T) {
		t.Parallel()

		text := "First line" + strings.Repeat("\nfiller", 70) + "\nTITLE: Too Late"
		analyzer := textstat.NewAnalyzer()

		assert.Equal(t, "First line", analyzer.ExtractTitle(text))
	})

	t.Run("falls back to first non-blank line", func(t *testing.T) {
		t.Parallel()

		analyzer := textstat.NewAnalyzer()
		title := analyzer.ExtractTitle("\n\n  The Odyssey  \nBook I")

		assert.Equal(t, "The Odyssey", title)
	})

	t.Run("returns Unknown Title for blank text", func(t *testing.T) {
		t.Parallel()

		analyzer := textstat.NewAnalyzer()
		assert.Equal(t, "Unknown Title", analyzer.ExtractTitle(""))
		assert.Equal(t, "Unknown Title", analyzer.ExtractTitle("\n \n\t\n"))
	})
}
