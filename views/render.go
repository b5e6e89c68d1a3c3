package views

import (
	"net/http"
	"strings"

	"tierranativa/api"
	"tierranativa/models"
	"tierranativa/normalize"
	"tierranativa/rdx"
	"tierranativa/session"
	"tierranativa/utils"
)

// NavState is selected exactly once per request; templates switch on it
// instead of combining ad-hoc boolean flags.
type NavState int

const (
	NavAnonymous NavState = iota
	NavUser
	NavAdmin
)

// Renderer assembles the cross-page data (nav state, category menu,
// flashes) and executes a page template.
type Renderer struct {
	Templates *Templates
	Sessions  *session.Manager
	API       *api.Client
}

// Render executes the named page. data carries the page-specific fields;
// the shared ones are filled in here.
func (v *Renderer) Render(w http.ResponseWriter, r *http.Request, name, title string, data utils.M) {
	if data == nil {
		data = utils.M{}
	}

	s := v.Sessions.Current(w, r)
	nav := NavAnonymous
	var user *models.User
	switch s.State() {
	case session.AuthenticatedAdmin:
		nav = NavAdmin
		u := s.User
		user = &u
	case session.AuthenticatedUser:
		nav = NavUser
		u := s.User
		user = &u
	}

	data["Title"] = title
	data["Nav"] = nav
	data["IsAdmin"] = nav == NavAdmin
	data["User"] = user
	data["SolidNav"] = solidNav(r.URL.Path)
	data["Categories"] = v.navCategories(r)
	data["Flashes"] = v.Sessions.Flashes(w, r)
	data["Placeholder"] = models.PlaceholderImage

	v.Templates.Execute(w, name, data)
}

// solidNav: detail and admin pages always get the solid nav bar; elsewhere
// it starts transparent and solidifies on scroll (CSS class toggled client
// side).
func solidNav(path string) bool {
	if strings.HasPrefix(path, "/detallePaquete/") && strings.Count(path, "/") == 2 {
		return true
	}
	return strings.HasPrefix(path, "/paquetes/admin")
}

// navCategories feeds the nav menu: Redis cache first, then a backend
// fetch whose failure degrades to an empty menu rather than breaking the
// page.
func (v *Renderer) navCategories(r *http.Request) []models.Category {
	ctx := r.Context()
	if cats, ok := rdx.CachedCategories(ctx); ok {
		return cats
	}
	cats, err := v.API.GetPublicCategories(ctx)
	if err != nil {
		return nil
	}
	for i := range cats {
		cats[i] = normalize.Category(cats[i], utils.Slugify)
	}
	rdx.CacheCategories(ctx, cats)
	return cats
}
