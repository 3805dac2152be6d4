package report

import (
	"fmt"
	"io"
	"nearby-places-service/internal/domain"
	"strings"
	"unicode"
	"unicode/utf8"
)

// PlacesPerCategory is how many places a summary line names before
// collapsing the rest into "and N more".
const PlacesPerCategory = 3

// Summarize renders one line per category:
//
//	Restaurant: A (0.12 miles away), B (0.30 miles away), C (distance unknown) and 2 more.
func Summarize(categories []domain.Category) string {
	var b strings.Builder
	for _, c := range categories {
		b.WriteString(capitalize(c.Type))
		b.WriteString(": ")

		shown := c.Places
		if len(shown) > PlacesPerCategory {
			shown = shown[:PlacesPerCategory]
		}
		for i, rp := range shown {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(rp.Place.DisplayTitle())
			b.WriteString(" (")
			b.WriteString(awayText(rp.Distance))
			b.WriteString(")")
		}

		if rest := len(c.Places) - len(shown); rest > 0 {
			fmt.Fprintf(&b, " and %d more", rest)
		}
		b.WriteString(".\n")
	}
	return b.String()
}

func PrintSummary(w io.Writer, categories []domain.Category) error {
	_, err := io.WriteString(w, Summarize(categories))
	return err
}

func awayText(d domain.Distance) string {
	if !d.Known() {
		return "distance unknown"
	}
	return d.String() + " away"
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
