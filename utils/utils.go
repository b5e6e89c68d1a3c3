package utils

import (
	rndm "math/rand"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
	"golang.org/x/text/unicode/norm"
)

// --- Currency ---

var arPrinter = message.NewPrinter(language.MustParse("es-AR"))

// FormatCurrency renders an ARS price the way the catalog displays it:
// es-AR grouping, no forced decimals, at most two.
func FormatCurrency(basePrice float64) string {
	return arPrinter.Sprintf("$ %v",
		number.Decimal(basePrice,
			number.MinFractionDigits(0),
			number.MaxFractionDigits(2)))
}

// --- Sampling ---

// SampleN returns min(n, len(list)) distinct elements of list in random
// order, without mutating the input.
func SampleN[T any](list []T, n int) []T {
	random := make([]T, len(list))
	copy(random, list)

	for i := len(random) - 1; i > 0; i-- {
		j := rndm.Intn(i + 1)
		random[i], random[j] = random[j], random[i]
	}
	if n > len(random) {
		n = len(random)
	}
	return random[:n]
}

// --- Text helpers ---

var nonSlugRunes = regexp.MustCompile(`[^\w\-]+`)
var dashRuns = regexp.MustCompile(`\-\-+`)

// Slugify derives a URL-safe identifier from a human title: accents
// stripped, lowercased, spaces collapsed to single dashes.
func Slugify(title string) string {
	if title == "" {
		return ""
	}
	decomposed := norm.NFD.String(strings.ToLower(title))
	var b strings.Builder
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	s := strings.Join(strings.Fields(b.String()), "-")
	s = nonSlugRunes.ReplaceAllString(s, "")
	s = dashRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Capitalize lowercases the whole string and uppercases the first rune.
func Capitalize(s string) string {
	if s == "" {
		return ""
	}
	lower := strings.ToLower(s)
	r := []rune(lower)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
