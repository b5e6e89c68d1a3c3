// Package home renders the landing page: hero search, featured packages,
// destination filtering.
package home

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"tierranativa/api"
	"tierranativa/search"
	"tierranativa/utils"
	"tierranativa/views"
)

type Handler struct {
	API   *api.Client
	Views *views.Renderer
}

// Index serves /home and /paquetes. With ?destino= the list is filtered to
// that destination; without it a random sample of 6 is featured.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	packages, err := h.API.GetPackages(r.Context())
	if err != nil {
		h.Views.Render(w, r, "home.html", "Tierra Nativa", utils.M{
			"LoadError": api.AsError(err).UserMessage(),
			"RetryPath": r.URL.RequestURI(),
		})
		return
	}

	destination := r.URL.Query().Get("destino")
	display := search.ByDestination(packages, destination)

	h.Views.Render(w, r, "home.html", "Tierra Nativa", utils.M{
		"Packages":            display,
		"TotalCount":          len(packages),
		"SelectedDestination": destination,
		"Denied":              r.URL.Query().Get("denied") != "",
	})
}

// Suggestions answers the autocomplete box as JSON.
func (h *Handler) Suggestions(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	packages, err := h.API.GetPackages(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusBadGateway, api.AsError(err).UserMessage())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"suggestions": search.Suggestions(packages, r.URL.Query().Get("q")),
	})
}
