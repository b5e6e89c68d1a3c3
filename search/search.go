// Package search backs the destination autocomplete on the home page.
package search

import (
	"strings"

	"tierranativa/models"
	"tierranativa/utils"
)

// FeaturedCount is how many random packages the home page shows when no
// destination filter is active.
const FeaturedCount = 6

// Suggestions returns the de-duplicated destinations whose lowercase form
// contains query as a substring. An empty query matches everything, so
// focusing the empty search box lists every distinct destination once.
func Suggestions(packages []models.Package, query string) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	seen := make(map[string]bool)
	var out []string
	for _, pkg := range packages {
		lower := strings.ToLower(pkg.Destination)
		if lower == "" || seen[lower] {
			continue
		}
		if query != "" && !strings.Contains(lower, query) {
			continue
		}
		seen[lower] = true
		out = append(out, pkg.Destination)
	}
	return out
}

// ByDestination filters case-insensitively on the exact destination. A nil
// selection (empty string) falls back to a random sample of FeaturedCount
// packages.
func ByDestination(packages []models.Package, destination string) []models.Package {
	if strings.TrimSpace(destination) == "" {
		return utils.SampleN(packages, FeaturedCount)
	}
	var out []models.Package
	for _, pkg := range packages {
		if strings.EqualFold(pkg.Destination, destination) {
			out = append(out, pkg)
		}
	}
	return out
}
