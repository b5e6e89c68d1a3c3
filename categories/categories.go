// Package categories renders the category listing and the by-slug detail
// page, tolerating the backend's three response shapes.
package categories

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"tierranativa/api"
	"tierranativa/normalize"
	"tierranativa/utils"
	"tierranativa/views"
)

type Handler struct {
	API   *api.Client
	Views *views.Renderer
}

// Index serves /categories: cards for every public category.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	cats, err := h.API.GetPublicCategories(r.Context())
	if err != nil {
		h.Views.Render(w, r, "categories.html", "Categorías", utils.M{
			"LoadError": api.AsError(err).UserMessage(),
			"RetryPath": "/categories",
		})
		return
	}
	for i := range cats {
		cats[i] = normalize.Category(cats[i], utils.Slugify)
	}
	h.Views.Render(w, r, "categories.html", "Categorías", utils.M{
		"CategoryList": cats,
	})
}

// BySlug serves /categories/categoria/:categorySlug. The backend may answer
// with {categoryDetails, packages}, with a bare package array (degraded:
// the user is told the description and image are missing), or with
// something unexpected (rendered as an error with a retry link). A 401
// renders a login call-to-action instead of a generic error.
func (h *Handler) BySlug(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	slug := ps.ByName("categorySlug")
	title := utils.Capitalize(slug)
	if slug == "" || slug == "undefined" {
		h.renderError(w, r, title, "No se pudo identificar la categoría (slug ausente).", false, slug)
		return
	}

	var token string
	if s := h.Views.Sessions.Current(w, r); s != nil {
		token = s.Token
	}

	raw, err := h.API.GetCategoryBySlug(r.Context(), token, slug)
	if err != nil {
		apiErr := api.AsError(err)
		if apiErr.Kind == api.KindAuth {
			h.renderError(w, r, title,
				"Acceso no autorizado. Inicia sesión como administrador si intentas acceder a datos restringidos.",
				true, slug)
			return
		}
		if apiErr.Kind == api.KindNotFound {
			// older backend deployments only answer on the legacy listing
			if pkgs, legacyErr := h.API.GetPackagesByCategory(r.Context(), slug); legacyErr == nil {
				h.Views.Render(w, r, "category.html", title, utils.M{
					"Slug":     slug,
					"Packages": pkgs,
					"Degraded": true,
					"DegradedMessage": "El servicio solo devolvió la lista de paquetes para \"" + title +
						"\". Faltan la imagen y la descripción de la categoría.",
					"DisplayTitle": title,
				})
				return
			}
		}
		h.renderError(w, r, title,
			"No se pudieron cargar los paquetes para la categoría \""+title+"\".", false, slug)
		return
	}

	detail, err := normalize.CategoryResponse(raw)
	if err != nil {
		h.renderError(w, r, title,
			"Respuesta de la API inesperada para \""+title+"\".", false, slug)
		return
	}

	data := utils.M{
		"Slug":     slug,
		"Packages": detail.Packages,
		"Degraded": detail.Degraded,
	}
	if detail.Info != nil {
		data["Category"] = detail.Info
		if detail.Info.Title != "" {
			title = utils.Capitalize(detail.Info.Title)
		}
	}
	if detail.Degraded {
		data["DegradedMessage"] = "El servicio solo devolvió la lista de paquetes para \"" + title +
			"\". Faltan la imagen y la descripción de la categoría."
	}
	data["DisplayTitle"] = title
	h.Views.Render(w, r, "category.html", title, data)
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, title, msg string, needsLogin bool, slug string) {
	h.Views.Render(w, r, "category.html", title, utils.M{
		"DisplayTitle": title,
		"Slug":         slug,
		"LoadError":    msg,
		"NeedsLogin":   needsLogin,
		"RetryPath":    "/categories/categoria/" + slug,
	})
}
