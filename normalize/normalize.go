// Package normalize reconciles the backend's historical payload shapes into
// the one canonical form the pages render from. The backend has shipped
// packages with images under `images` or `imageDetails`, category links as a
// scalar, an id list, or embedded objects, and characteristics either as an
// id list or embedded. Normalization is idempotent: feeding a normalized
// payload back in yields byte-identical output.
package normalize

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"tierranativa/models"
)

// ErrUnexpectedShape reports a payload matching none of the known variants.
var ErrUnexpectedShape = errors.New("normalize: unexpected response shape")

// idList tolerates every way the backend has encoded entity references:
// a bare number, a numeric string, a list of numbers, or a list of objects
// carrying an id field. Anything non-numeric is dropped.
type idList []int

func (l *idList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*l = nil
		return nil
	}

	switch data[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		out := make([]int, 0, len(items))
		for _, item := range items {
			if id, ok := scalarID(item); ok {
				out = append(out, id)
			}
		}
		*l = out
		return nil
	default:
		if id, ok := scalarID(data); ok {
			*l = []int{id}
		} else {
			*l = nil
		}
		return nil
	}
}

func scalarID(data []byte) (int, bool) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return 0, false
	}
	switch data[0] {
	case '{':
		var obj struct {
			ID *int `json:"id"`
		}
		if err := json.Unmarshal(data, &obj); err != nil || obj.ID == nil {
			return 0, false
		}
		return *obj.ID, true
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return 0, false
		}
		id, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0, false
		}
		return id, true
	default:
		var f float64
		if err := json.Unmarshal(data, &f); err != nil {
			return 0, false
		}
		return int(f), true
	}
}

type rawImage struct {
	ID        int    `json:"id,omitempty"`
	URL       string `json:"url"`
	ImageURL  string `json:"imageUrl"`
	Principal bool   `json:"principal"`
}

type rawPackage struct {
	ID                int                    `json:"id"`
	Name              string                 `json:"name"`
	ShortDescription  string                 `json:"shortDescription"`
	BasePrice         float64                `json:"basePrice"`
	Destination       string                 `json:"destination"`
	Category          idList                 `json:"category"`
	CategoryID        idList                 `json:"categoryId"`
	Categories        idList                 `json:"categories"`
	CharacteristicIDs idList                 `json:"characteristicIds"`
	Characteristics   idList                 `json:"characteristics"`
	ItineraryDetail   models.ItineraryDetail `json:"itineraryDetail"`
	Images            []rawImage             `json:"images"`
	ImageDetails      []rawImage             `json:"imageDetails"`
	ImageURL          string                 `json:"imageUrl"`
}

// Package normalizes one raw package payload.
func Package(data []byte) (models.Package, error) {
	var raw rawPackage
	if err := json.Unmarshal(data, &raw); err != nil {
		return models.Package{}, err
	}
	return canonical(raw), nil
}

// Packages normalizes a list payload.
func Packages(data []byte) ([]models.Package, error) {
	var raws []rawPackage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, err
	}
	out := make([]models.Package, 0, len(raws))
	for _, raw := range raws {
		out = append(out, canonical(raw))
	}
	return out, nil
}

func canonical(raw rawPackage) models.Package {
	p := models.Package{
		ID:               raw.ID,
		Name:             raw.Name,
		ShortDescription: raw.ShortDescription,
		BasePrice:        raw.BasePrice,
		Destination:      raw.Destination,
		ItineraryDetail:  raw.ItineraryDetail,
	}

	p.CategoryIDs = firstNonEmpty(raw.CategoryID, raw.Categories, raw.Category)
	p.CharacteristicIDs = firstNonEmpty(raw.CharacteristicIDs, raw.Characteristics)

	source := raw.Images
	if len(source) == 0 {
		source = raw.ImageDetails
	}
	if len(source) == 0 && strings.TrimSpace(raw.ImageURL) != "" {
		source = []rawImage{{URL: raw.ImageURL, Principal: true}}
	}
	for _, img := range source {
		url := strings.TrimSpace(img.URL)
		if url == "" {
			url = strings.TrimSpace(img.ImageURL)
		}
		if url == "" {
			continue
		}
		p.Images = append(p.Images, models.ImageEntry{
			ID:        img.ID,
			URL:       url,
			Principal: img.Principal,
		})
	}
	return p
}

func firstNonEmpty(lists ...idList) []int {
	for _, l := range lists {
		if len(l) > 0 {
			return l
		}
	}
	return nil
}

// Category fills the slug from the title when the backend omitted it.
func Category(c models.Category, slugify func(string) string) models.Category {
	if c.Slug == "" {
		c.Slug = slugify(c.Title)
	}
	return c
}

// ResolveCharacteristics maps a package to its characteristics: by id when
// the package carries ids, else by reverse lookup through the package
// references some catalog versions embed in each characteristic.
func ResolveCharacteristics(pkg models.Package, catalog []models.Characteristic) []models.Characteristic {
	var out []models.Characteristic
	if len(pkg.CharacteristicIDs) > 0 {
		wanted := make(map[int]bool, len(pkg.CharacteristicIDs))
		for _, id := range pkg.CharacteristicIDs {
			wanted[id] = true
		}
		for _, c := range catalog {
			if wanted[c.ID] {
				out = append(out, c)
			}
		}
		return out
	}
	for _, c := range catalog {
		for _, pid := range c.PackageIDs {
			if pid == pkg.ID {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// CategoryDetail is the resolved result of the by-slug category endpoint.
// Degraded marks the bare-array response where the backend returned only
// packages; the page must tell the user the description and image are
// missing instead of failing silently.
type CategoryDetail struct {
	Info     *models.Category
	Packages []models.Package
	Degraded bool
}

// CategoryResponse tolerates the three shapes the by-slug endpoint has
// returned: {categoryDetails, packages}, a bare package array, or garbage
// (ErrUnexpectedShape).
func CategoryResponse(data []byte) (CategoryDetail, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return CategoryDetail{}, ErrUnexpectedShape
	}

	switch trimmed[0] {
	case '[':
		pkgs, err := Packages(trimmed)
		if err != nil {
			return CategoryDetail{}, ErrUnexpectedShape
		}
		return CategoryDetail{Packages: pkgs, Degraded: true}, nil
	case '{':
		var obj struct {
			CategoryDetails *models.Category  `json:"categoryDetails"`
			Packages        []json.RawMessage `json:"packages"`
		}
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			return CategoryDetail{}, ErrUnexpectedShape
		}
		detail := CategoryDetail{Info: obj.CategoryDetails}
		for _, rawPkg := range obj.Packages {
			pkg, err := Package(rawPkg)
			if err != nil {
				continue
			}
			detail.Packages = append(detail.Packages, pkg)
		}
		return detail, nil
	default:
		return CategoryDetail{}, ErrUnexpectedShape
	}
}
