package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDays(t *testing.T) {
	t.Run("labeled days", func(t *testing.T) {
		got := ParseDays("Día 1: Llegada y check-in. Día 2: Excursión al glaciar.")
		require.Len(t, got, 2)
		assert.Equal(t, "Día 1:", got[0].Label)
		assert.Equal(t, "Llegada y check-in.", got[0].Description)
		assert.Equal(t, "Día 2:", got[1].Label)
		assert.Equal(t, "Excursión al glaciar.", got[1].Description)
	})

	t.Run("accent insensitive marker", func(t *testing.T) {
		got := ParseDays("dia 1: Sin tilde. DÍA 2: Con mayúsculas.")
		require.Len(t, got, 2)
		assert.Equal(t, "dia 1:", got[0].Label)
		assert.Equal(t, "DÍA 2:", got[1].Label)
	})

	t.Run("head text before first marker", func(t *testing.T) {
		got := ParseDays("Salida desde Buenos Aires. Día 1: Vuelo a Bariloche.")
		require.Len(t, got, 2)
		assert.Empty(t, got[0].Label)
		assert.Equal(t, "Salida desde Buenos Aires.", got[0].Description)
		assert.Equal(t, "Día 1:", got[1].Label)
	})

	t.Run("no markers", func(t *testing.T) {
		got := ParseDays("Itinerario flexible según el clima.")
		require.Len(t, got, 1)
		assert.Empty(t, got[0].Label)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Nil(t, ParseDays("   "))
	})
}

func TestSplitSentences(t *testing.T) {
	got := SplitSentences("Llevar protector solar. ¿Documentos al día? Botella de agua!")
	assert.Equal(t, []string{
		"Llevar protector solar.",
		"¿Documentos al día.",
		"Botella de agua.",
	}, got)

	assert.Nil(t, SplitSentences(""))
	assert.Nil(t, SplitSentences(" . . "))
}
