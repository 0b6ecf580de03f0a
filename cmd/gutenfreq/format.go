package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"gutenfreq"
)

// rankedWords is the serialized shape for json and yaml output.
type rankedWords struct {
	Title string                `json:"title" yaml:"title"`
	Words []gutenfreq.WordCount `json:"words" yaml:"words"`
}

// renderWords writes a ranked word list in the selected output format.
func renderWords(w io.Writer, format, title string, words []gutenfreq.WordCount) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rankedWords{Title: title, Words: words})
	case "yaml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(rankedWords{Title: title, Words: words}); err != nil {
			return err
		}
		return enc.Close()
	default:
		tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
		fmt.Fprintln(tw, "WORD\tCOUNT")
		for _, wc := range words {
			fmt.Fprintf(tw, "%s\t%d\n", wc.Word, wc.Count)
		}
		return tw.Flush()
	}
}

// reportError maps application error codes onto the three presentation
// tiers: not-found is informational and succeeds, transport failures are
// network errors, and everything else is generic.
func reportError(deps *Dependencies, err error) error {
	switch gutenfreq.ErrorCode(err) {
	case gutenfreq.ENOTFOUND:
		fmt.Fprintln(deps.Stdout, "Book was not found.")
		return nil
	case gutenfreq.ETRANSPORT:
		fmt.Fprintf(deps.Stderr, "Network error: %s\n", gutenfreq.ErrorMessage(err))
		return err
	default:
		fmt.Fprintf(deps.Stderr, "Error: %s\n", gutenfreq.ErrorMessage(err))
		return err
	}
}
