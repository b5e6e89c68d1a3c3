// Package itinerary turns the free-text itinerary fields into render-ready
// lists, and prints a package itinerary as a PDF.
package itinerary

import (
	"regexp"
	"strings"
)

// DayEntry is one bullet of the day-by-day plan. Label is empty for text
// that carried no day marker.
type DayEntry struct {
	Label       string
	Description string
}

var dayMarker = regexp.MustCompile(`(?i)d[ií]a\s*\d+:`)

// ParseDays splits the daily-activities text at each accent-insensitive
// "Día N:" marker. Text before the first marker becomes an unlabeled entry.
func ParseDays(text string) []DayEntry {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	locs := dayMarker.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return []DayEntry{{Description: text}}
	}

	var entries []DayEntry
	if head := strings.TrimSpace(text[:locs[0][0]]); head != "" {
		entries = append(entries, DayEntry{Description: head})
	}
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		entries = append(entries, DayEntry{
			Label:       text[loc[0]:loc[1]],
			Description: strings.TrimSpace(text[loc[1]:end]),
		})
	}
	return entries
}

// SplitSentences breaks the general-recommendations text at sentence-ending
// punctuation into trimmed, period-terminated sentences. Empty fragments
// are discarded.
func SplitSentences(text string) []string {
	var out []string
	for _, frag := range strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	}) {
		frag = strings.TrimSpace(frag)
		if frag == "" {
			continue
		}
		out = append(out, frag+".")
	}
	return out
}
