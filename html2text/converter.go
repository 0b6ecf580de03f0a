// Package html2text provides a gutenfreq.TextConverter that strips HTML
// markup, leaving plain text suitable for frequency analysis.
package html2text

import (
	jaytaylor "jaytaylor.com/html2text"

	"gutenfreq"
)

// Ensure Converter implements gutenfreq.TextConverter at compile time.
var _ gutenfreq.TextConverter = (*Converter)(nil)

// Converter wraps jaytaylor.com/html2text to convert HTML documents to
// plain text.
type Converter struct {
	options jaytaylor.Options
}

// NewConverter creates a new Converter. Links are reduced to their anchor
// text so URLs do not pollute the word counts.
func NewConverter() *Converter {
	return &Converter{
		options: jaytaylor.Options{OmitLinks: true},
	}
}

// Convert strips HTML markup from s and returns the remaining text. Input
// that is not HTML passes through unchanged apart from whitespace
// normalization.
func (c *Converter) Convert(s string) (string, error) {
	text, err := jaytaylor.FromString(s, c.options)
	if err != nil {
		return "", gutenfreq.Errorf(gutenfreq.EINTERNAL, "HTML conversion failed: %s", err)
	}
	return text, nil
}
