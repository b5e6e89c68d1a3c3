package admin

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"

	"tierranativa/api"
	"tierranativa/models"
	"tierranativa/rdx"
	"tierranativa/utils"
)

func (h *Handler) categoryList(w http.ResponseWriter, r *http.Request) {
	_, token := h.token(w, r)
	cats, err := h.API.GetCategories(r.Context(), token)
	if err != nil {
		if h.authFail(w, r, err) {
			return
		}
		h.Views.Render(w, r, "admin_categories.html", "Administración de Categorías", utils.M{
			"LoadError": "No se pudieron cargar las categorías desde el servidor.",
			"RetryPath": "/paquetes/admin?view=LIST_CATEGORY",
		})
		return
	}

	start, end, totalPages, current := paginate(len(cats), pageParam(r))
	h.Views.Render(w, r, "admin_categories.html", "Administración de Categorías", utils.M{
		"CategoryList": cats[start:end],
		"Total":        len(cats),
		"TotalPages":   totalPages,
		"CurrentPage":  current,
	})
}

// SaveCategory handles POST /paquetes/admin/categories. Titles are stored
// upper-cased, matching what the backend indexes category slugs on.
func (h *Handler) SaveCategory(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	cat := models.Category{
		Title:       strings.ToUpper(strings.TrimSpace(r.FormValue("title"))),
		Description: strings.TrimSpace(r.FormValue("description")),
		ImageURL:    strings.TrimSpace(r.FormValue("imageUrl")),
	}
	if cat.Title == "" || cat.Description == "" || cat.ImageURL == "" {
		h.flash(w, r, "warning", "Campos Incompletos", "Por favor, rellena todos los campos.")
		http.Redirect(w, r, "/paquetes/admin?view=LIST_CATEGORY", http.StatusSeeOther)
		return
	}

	_, token := h.token(w, r)
	var err error
	if idRaw := r.FormValue("id"); idRaw != "" {
		cat.ID, err = strconv.Atoi(idRaw)
		if err == nil {
			_, err = h.API.UpdateCategory(r.Context(), token, cat)
		}
	} else {
		_, err = h.API.CreateCategory(r.Context(), token, cat)
	}

	if err != nil {
		if h.authFail(w, r, err) {
			return
		}
		apiErr := api.AsError(err)
		msg := "Hubo un error al guardar."
		if apiErr.Kind == api.KindConflict {
			msg = "Ya existe una categoría con el título \"" + cat.Title + "\"."
		}
		h.flash(w, r, "error", "Error", msg)
	} else {
		verb := "creada"
		if r.FormValue("id") != "" {
			verb = "actualizada"
		}
		h.flash(w, r, "success", "Éxito", "Categoría \""+cat.Title+"\" "+verb+".")
		rdx.InvalidateCategories(r.Context())
	}
	http.Redirect(w, r, "/paquetes/admin?view=LIST_CATEGORY", http.StatusSeeOther)
}

// DeleteCategory handles POST /paquetes/admin/categories/delete.
func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	id, err := strconv.Atoi(r.FormValue("id"))
	if err != nil {
		http.Redirect(w, r, "/paquetes/admin?view=LIST_CATEGORY", http.StatusSeeOther)
		return
	}

	_, token := h.token(w, r)
	title := r.FormValue("title")
	if err := h.API.DeleteCategory(r.Context(), token, id); err != nil {
		if h.authFail(w, r, err) {
			return
		}
		h.flash(w, r, "error", "Error de Eliminación", "Hubo un error al intentar eliminar la categoría.")
	} else {
		h.flash(w, r, "success", "Eliminada", "La categoría \""+title+"\" ha sido eliminada.")
		rdx.InvalidateCategories(r.Context())
	}
	http.Redirect(w, r, "/paquetes/admin?view=LIST_CATEGORY", http.StatusSeeOther)
}
