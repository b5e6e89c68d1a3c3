package admin

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"

	"tierranativa/api"
	"tierranativa/models"
	"tierranativa/utils"
)

// iconKeywords drives the icon auto-suggestion: the first keyword found in
// the title wins. Order matters (e.g. "nieve" before the generic mountain).
var iconKeywords = []struct {
	icon  string
	words []string
}{
	{"wifi", []string{"wifi", "internet"}},
	{"utensils", []string{"comida", "restaurante", "cena"}},
	{"shield-check", []string{"seguro", "protección"}},
	{"mountain-snow", []string{"nieve", "esquí", "snow"}},
	{"mountain", []string{"montaña", "trekking", "cerro"}},
	{"camera", []string{"foto", "cámara", "recuerdo"}},
	{"bus", []string{"bus", "autobús", "transporte"}},
	{"first-aid", []string{"médico", "auxilio", "salud"}},
	{"apple", []string{"fruta", "saludable"}},
	{"map", []string{"mapa", "guía", "ubicación"}},
	{"plane", []string{"vuelo", "avión", "aéreo"}},
	{"ticket", []string{"ticket", "entrada", "boleto"}},
	{"hotel", []string{"hotel", "alojamiento", "posada"}},
}

// AutoIcon suggests an icon key from the characteristic title.
func AutoIcon(title string) string {
	t := strings.ToLower(title)
	for _, entry := range iconKeywords {
		for _, word := range entry.words {
			if strings.Contains(t, word) {
				return entry.icon
			}
		}
	}
	return "star"
}

func (h *Handler) characteristicList(w http.ResponseWriter, r *http.Request) {
	_, token := h.token(w, r)
	chars, err := h.API.GetCharacteristics(r.Context(), token)
	if err != nil {
		if h.authFail(w, r, err) {
			return
		}
		h.Views.Render(w, r, "admin_characteristics.html", "Administración de Características", utils.M{
			"LoadError": "No se pudieron cargar las características desde el servidor.",
			"RetryPath": "/paquetes/admin?view=LIST_CHARACTERISTICS",
		})
		return
	}

	type row struct {
		models.Characteristic
		Glyph string
	}
	rows := make([]row, 0, len(chars))
	for _, c := range chars {
		rows = append(rows, row{Characteristic: c, Glyph: models.Glyph(c.Icon)})
	}

	start, end, totalPages, current := paginate(len(rows), pageParam(r))
	h.Views.Render(w, r, "admin_characteristics.html", "Administración de Características", utils.M{
		"Characteristics": rows[start:end],
		"Total":           len(rows),
		"TotalPages":      totalPages,
		"CurrentPage":     current,
		"IconLibrary":     models.IconGlyphs,
	})
}

// SaveCharacteristic handles POST /paquetes/admin/characteristics. Titles
// are capitalized; a missing icon is auto-suggested from the title.
func (h *Handler) SaveCharacteristic(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ch := models.Characteristic{
		Title: utils.Capitalize(strings.TrimSpace(r.FormValue("title"))),
		Icon:  r.FormValue("icon"),
	}
	if ch.Title == "" {
		h.flash(w, r, "warning", "Campos Incompletos", "Por favor, rellena todos los campos de las características (Título, Icono).")
		http.Redirect(w, r, "/paquetes/admin?view=LIST_CHARACTERISTICS", http.StatusSeeOther)
		return
	}
	if ch.Icon == "" {
		ch.Icon = AutoIcon(ch.Title)
	}

	_, token := h.token(w, r)
	var err error
	if idRaw := r.FormValue("id"); idRaw != "" {
		ch.ID, err = strconv.Atoi(idRaw)
		if err == nil {
			_, err = h.API.UpdateCharacteristic(r.Context(), token, ch)
		}
	} else {
		_, err = h.API.CreateCharacteristic(r.Context(), token, ch)
	}

	if err != nil {
		if h.authFail(w, r, err) {
			return
		}
		apiErr := api.AsError(err)
		msg := "Hubo un error al guardar la característica."
		if apiErr.Kind == api.KindConflict {
			msg = "Ya existe una característica llamada \"" + ch.Title + "\"."
		}
		h.flash(w, r, "error", "Error", msg)
	} else {
		verb := "creada"
		if r.FormValue("id") != "" {
			verb = "actualizada"
		}
		h.flash(w, r, "success", "Éxito", "Característica \""+ch.Title+"\" "+verb+" correctamente.")
	}
	http.Redirect(w, r, "/paquetes/admin?view=LIST_CHARACTERISTICS", http.StatusSeeOther)
}

// DeleteCharacteristic handles POST /paquetes/admin/characteristics/delete.
func (h *Handler) DeleteCharacteristic(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	id, err := strconv.Atoi(r.FormValue("id"))
	if err != nil {
		http.Redirect(w, r, "/paquetes/admin?view=LIST_CHARACTERISTICS", http.StatusSeeOther)
		return
	}

	_, token := h.token(w, r)
	if err := h.API.DeleteCharacteristic(r.Context(), token, id); err != nil {
		if h.authFail(w, r, err) {
			return
		}
		h.flash(w, r, "error", "Error de Eliminación", "Hubo un error al intentar eliminar la característica.")
	} else {
		h.flash(w, r, "success", "Eliminada", "La característica ha sido eliminada.")
	}
	http.Redirect(w, r, "/paquetes/admin?view=LIST_CHARACTERISTICS", http.StatusSeeOther)
}
