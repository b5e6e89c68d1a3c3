package admin

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"tierranativa/api"
	"tierranativa/models"
)

// SavePackage handles POST /paquetes/admin/packages: create when the id
// field is absent, full-entity update when present. basePrice is coerced to
// a float before sending; blank image URLs are dropped and the first image
// is the principal.
func (h *Handler) SavePackage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	name := r.FormValue("name")
	priceRaw := r.FormValue("basePrice")
	destination := r.FormValue("destination")
	if name == "" || priceRaw == "" || destination == "" {
		h.flash(w, r, "error", "Campos Incompletos", "Rellene al menos los campos principales.")
		http.Redirect(w, r, "/paquetes/admin?view=CREATE_FORM", http.StatusSeeOther)
		return
	}
	basePrice, err := strconv.ParseFloat(priceRaw, 64)
	if err != nil {
		h.flash(w, r, "error", "Precio Inválido", "El precio base debe ser un número.")
		http.Redirect(w, r, "/paquetes/admin?view=CREATE_FORM", http.StatusSeeOther)
		return
	}

	pkg := models.Package{
		Name:             name,
		ShortDescription: r.FormValue("shortDescription"),
		BasePrice:        basePrice,
		Destination:      destination,
		ItineraryDetail: models.ItineraryDetail{
			Duration:                   r.FormValue("duration"),
			LodgingType:                r.FormValue("lodgingType"),
			TransferType:               r.FormValue("transferType"),
			DailyActivitiesDescription: r.FormValue("dailyActivitiesDescription"),
			FoodAndHydrationNotes:      r.FormValue("foodAndHydrationNotes"),
			GeneralRecommendations:     r.FormValue("generalRecommendations"),
		},
	}
	for _, raw := range r.Form["categoryId"] {
		if id, err := strconv.Atoi(raw); err == nil {
			pkg.CategoryIDs = append(pkg.CategoryIDs, id)
		}
	}
	for _, raw := range r.Form["characteristicId"] {
		if id, err := strconv.Atoi(raw); err == nil {
			pkg.CharacteristicIDs = append(pkg.CharacteristicIDs, id)
		}
	}
	for i, url := range trimmedAll(r.Form["imageUrl"]) {
		pkg.Images = append(pkg.Images, models.ImageEntry{URL: url, Principal: i == 0})
	}

	_, token := h.token(w, r)
	isEditing := r.FormValue("id") != ""
	var saved models.Package
	if isEditing {
		pkg.ID, err = strconv.Atoi(r.FormValue("id"))
		if err == nil {
			saved, err = h.API.UpdatePackage(r.Context(), token, pkg)
		}
	} else {
		saved, err = h.API.CreatePackage(r.Context(), token, pkg)
	}

	if err != nil {
		if h.authFail(w, r, err) {
			return
		}
		verb := "registrar"
		if isEditing {
			verb = "actualizar"
		}
		apiErr := api.AsError(err)
		msg := "Error al " + verb + " el paquete. " + apiErr.UserMessage()
		h.flash(w, r, "error", "Error", msg)
		http.Redirect(w, r, "/paquetes/admin?view=LIST", http.StatusSeeOther)
		return
	}

	if isEditing {
		h.flash(w, r, "success", "Éxito", "Paquete \""+saved.Name+"\" actualizado con éxito!")
	} else {
		h.flash(w, r, "success", "Éxito", "Paquete \""+saved.Name+"\" registrado con éxito!")
	}
	http.Redirect(w, r, "/paquetes/admin?view=LIST", http.StatusSeeOther)
}

// DeletePackage handles POST /paquetes/admin/packages/delete.
func (h *Handler) DeletePackage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	id, err := strconv.Atoi(r.FormValue("id"))
	if err != nil {
		http.Redirect(w, r, "/paquetes/admin?view=LIST", http.StatusSeeOther)
		return
	}

	_, token := h.token(w, r)
	if err := h.API.DeletePackage(r.Context(), token, id); err != nil {
		if h.authFail(w, r, err) {
			return
		}
		h.flash(w, r, "error", "Error", "Error al eliminar el paquete. Intente de nuevo.")
	} else {
		name := r.FormValue("name")
		h.flash(w, r, "success", "Éxito", "Paquete \""+name+"\" eliminado con éxito.")
	}
	http.Redirect(w, r, "/paquetes/admin?view=LIST", http.StatusSeeOther)
}
