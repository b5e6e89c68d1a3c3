package models

import "strings"

// PlaceholderImage is the fallback shown whenever a package or category has
// no usable image. Served by the placeholder package, so no external CDN is
// involved.
const PlaceholderImage = "/static/placeholder/800x600.png"

// Roles as the backend reports them.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// ImageEntry is one image of a package. Exactly one entry per package is
// expected to be principal; consumers fall back to the first entry, then to
// PlaceholderImage.
type ImageEntry struct {
	ID        int    `json:"id,omitempty"`
	URL       string `json:"url"`
	Principal bool   `json:"principal"`
}

// ItineraryDetail is owned 1:1 by a Package.
type ItineraryDetail struct {
	Duration                   string `json:"duration"`
	LodgingType                string `json:"lodgingType"`
	TransferType               string `json:"transferType"`
	DailyActivitiesDescription string `json:"dailyActivitiesDescription"`
	FoodAndHydrationNotes      string `json:"foodAndHydrationNotes"`
	GeneralRecommendations     string `json:"generalRecommendations"`
}

// Package is the canonical display shape every page renders from. Raw
// backend payloads come in several historical shapes; normalize.Package
// produces this one.
type Package struct {
	ID                int             `json:"id"`
	Name              string          `json:"name"`
	ShortDescription  string          `json:"shortDescription"`
	BasePrice         float64         `json:"basePrice"`
	Destination       string          `json:"destination"`
	CategoryIDs       []int           `json:"categoryId"`
	CharacteristicIDs []int           `json:"characteristicIds"`
	ItineraryDetail   ItineraryDetail `json:"itineraryDetail"`
	Images            []ImageEntry    `json:"images"`
}

// MainImageURL resolves the principal image: the entry flagged principal,
// else the first entry, else the placeholder.
func (p Package) MainImageURL() string {
	for _, img := range p.Images {
		if img.Principal && img.URL != "" {
			return img.URL
		}
	}
	if len(p.Images) > 0 && p.Images[0].URL != "" {
		return p.Images[0].URL
	}
	return PlaceholderImage
}

// SecondaryImageURLs returns up to max non-principal image URLs for the
// detail-page grid.
func (p Package) SecondaryImageURLs(max int) []string {
	main := p.MainImageURL()
	urls := []string{}
	for _, img := range p.Images {
		if img.URL == "" || img.URL == main {
			continue
		}
		urls = append(urls, img.URL)
		if len(urls) == max {
			break
		}
	}
	return urls
}

// Category groups packages many-to-many via ids.
type Category struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Slug        string `json:"slug,omitempty"`
}

// Characteristic is an amenity/feature attached to packages. Icon keys into
// the glyph table in icons.go. PackageIDs supports reverse
// resolution when the package payload carries no characteristic ids.
type Characteristic struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	Icon       string `json:"icon"`
	PackageIDs []int  `json:"packageIds,omitempty"`
}

// User is a registered account as listed by GET /admin.
type User struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

// IsAdmin reports whether the account carries the ADMIN role.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

// Initials renders the avatar initials shown in the nav bar.
func (u User) Initials() string {
	var out []rune
	if f := []rune(u.FirstName); len(f) > 0 {
		out = append(out, f[0])
	}
	if l := []rune(u.LastName); len(l) > 0 {
		out = append(out, l[0])
	}
	return strings.ToUpper(string(out))
}
