// Package paquetes renders the public package detail page and its printable
// itinerary.
package paquetes

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"tierranativa/api"
	"tierranativa/itinerary"
	"tierranativa/models"
	"tierranativa/normalize"
	"tierranativa/utils"
	"tierranativa/views"
)

type Handler struct {
	API   *api.Client
	Views *views.Renderer
}

type characteristicView struct {
	Title string
	Glyph string
}

// Detail serves /detallePaquete/:id with the gallery, itinerary summary,
// day plan, recommendations, and characteristics.
func (h *Handler) Detail(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := strconv.Atoi(ps.ByName("id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	pkg, err := h.API.GetPackage(r.Context(), id)
	if err != nil {
		apiErr := api.AsError(err)
		status := http.StatusBadGateway
		if apiErr.Kind == api.KindNotFound {
			status = http.StatusNotFound
		}
		w.WriteHeader(status)
		h.Views.Render(w, r, "error.html", "Paquete no encontrado", utils.M{
			"Message":   apiErr.UserMessage(),
			"RetryPath": r.URL.Path,
		})
		return
	}

	// Characteristic catalog failures degrade to an empty amenity list;
	// the rest of the page still renders.
	var chars []characteristicView
	if catalog, err := h.API.GetPublicCharacteristics(r.Context()); err == nil {
		for _, c := range normalize.ResolveCharacteristics(pkg, catalog) {
			chars = append(chars, characteristicView{Title: c.Title, Glyph: models.Glyph(c.Icon)})
		}
	}

	h.Views.Render(w, r, "detail.html", pkg.Name, utils.M{
		"Package":         pkg,
		"MainImage":       pkg.MainImageURL(),
		"SecondaryImages": pkg.SecondaryImageURLs(4),
		"HasGalleryModal": len(pkg.Images) > 5,
		"Days":            itinerary.ParseDays(pkg.ItineraryDetail.DailyActivitiesDescription),
		"Recommendations": itinerary.SplitSentences(pkg.ItineraryDetail.GeneralRecommendations),
		"Characteristics": chars,
	})
}

// ItineraryPDF serves /detallePaquete/:id/itinerario.pdf.
func (h *Handler) ItineraryPDF(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := strconv.Atoi(ps.ByName("id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	pkg, err := h.API.GetPackage(r.Context(), id)
	if err != nil {
		http.Error(w, api.AsError(err).UserMessage(), http.StatusBadGateway)
		return
	}

	detailURL := "https://" + r.Host + "/detallePaquete/" + strconv.Itoa(id)
	pdf, err := itinerary.BuildPDF(pkg, detailURL)
	if err != nil {
		http.Error(w, "No se pudo generar el PDF del itinerario.", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=itinerario-"+strconv.Itoa(id)+".pdf")
	w.Write(pdf)
}
