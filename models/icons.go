package models

// IconGlyphs maps a characteristic's icon key to the CSS class rendered in
// the detail page. Unknown keys fall back to the star.
var IconGlyphs = map[string]string{
	"wifi":          "bi bi-wifi",
	"utensils":      "bi bi-egg-fried",
	"shield-check":  "bi bi-shield-check",
	"mountain":      "bi bi-image-alt",
	"camera":        "bi bi-camera",
	"bus":           "bi bi-bus-front",
	"first-aid":     "bi bi-heart-pulse",
	"apple":         "bi bi-apple",
	"map":           "bi bi-map",
	"plane":         "bi bi-airplane",
	"ticket":        "bi bi-ticket-perforated",
	"hotel":         "bi bi-building",
	"star":          "bi bi-star",
	"mountain-snow": "bi bi-snow",
}

// Glyph resolves an icon key, defaulting to the star.
func Glyph(icon string) string {
	if g, ok := IconGlyphs[icon]; ok {
		return g
	}
	return IconGlyphs["star"]
}
