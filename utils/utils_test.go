package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$ 1.500", FormatCurrency(1500))
	assert.Equal(t, "$ 1.234,56", FormatCurrency(1234.56))
	assert.Equal(t, "$ 0", FormatCurrency(0))
	assert.Equal(t, "$ 120.000,5", FormatCurrency(120000.50))
}

func TestSampleN(t *testing.T) {
	list := []int{1, 2, 3, 4, 5, 6, 7, 8}

	got := SampleN(list, 3)
	assert.Len(t, got, 3)

	// distinct elements, all from the input
	seen := make(map[int]bool)
	for _, v := range got {
		assert.False(t, seen[v], "duplicate element %d", v)
		assert.Contains(t, list, v)
		seen[v] = true
	}

	// n beyond len caps at len
	assert.Len(t, SampleN(list, 50), len(list))
	assert.Empty(t, SampleN([]int{}, 4))

	// input must not be reordered
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, list)
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"AVENTURA EXTREMA":  "aventura-extrema",
		"Montaña y Río":     "montana-y-rio",
		"  playa   relax  ": "playa-relax",
		"Cata & Viñedos":    "cata-vinedos",
		"":                  "",
		"ESCAPADA--URBANA":  "escapada-urbana",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), "Slugify(%q)", in)
	}
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Montaña", Capitalize("MONTAÑA"))
	assert.Equal(t, "Playa", Capitalize("playa"))
	assert.Equal(t, "", Capitalize(""))
}
