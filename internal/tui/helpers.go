package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/tview"
)

const ellipsis = "…"

// truncate shortens s to at most width display cells
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, ellipsis)
}

// highlightMatch escapes text for tview and wraps the first
// case-insensitive occurrence of term in the given opening tag
func highlightMatch(text, term, tag string) string {
	start, end := findFold(text, term)
	if start < 0 {
		return tview.Escape(text)
	}

	before := tview.Escape(text[:start])
	matched := tview.Escape(text[start:end])
	after := tview.Escape(text[end:])

	return before + tag + matched + "[-:-:-]" + after
}

// findFold returns the byte range in text of the first window of runes that
// case-folds to term, or -1, -1.
func findFold(text, term string) (int, int) {
	if term == "" || text == "" {
		return -1, -1
	}

	runes := utf8.RuneCountInString(term)
	for start := 0; start < len(text); {
		end := start
		for n := 0; n < runes && end < len(text); n++ {
			_, size := utf8.DecodeRuneInString(text[end:])
			end += size
		}
		if strings.EqualFold(text[start:end], term) {
			return start, end
		}

		_, size := utf8.DecodeRuneInString(text[start:])
		start += size
	}

	return -1, -1
}
