// Package admin is the back office: package, category, characteristic and
// user management under /paquetes/admin. Every handler here runs behind
// middleware.RequireAdmin; the role is re-checked per request.
package admin

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"

	"tierranativa/api"
	"tierranativa/middleware"
	"tierranativa/models"
	"tierranativa/session"
	"tierranativa/utils"
	"tierranativa/views"
)

// ItemsPerPage sizes the category/characteristic tables.
const ItemsPerPage = 4

// Dashboard view states, mirrored in the ?view= query.
const (
	ViewMenu            = "MENU"
	ViewList            = "LIST"
	ViewCreateForm      = "CREATE_FORM"
	ViewEditForm        = "EDIT_FORM"
	ViewUsers           = "LIST_USERS"
	ViewCategories      = "LIST_CATEGORY"
	ViewCharacteristics = "LIST_CHARACTERISTICS"
)

type Handler struct {
	API      *api.Client
	Sessions *session.Manager
	Views    *views.Renderer
	// Superuser is the one identity allowed to mutate roles.
	Superuser string
}

// Dashboard serves GET /paquetes/admin, routing on the explicit view state.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	view := r.URL.Query().Get("view")
	if view == "" {
		view = ViewMenu
	}

	// Package and characteristic management need a desktop table layout;
	// mobile widths get the blocking screen no matter the role.
	switch view {
	case ViewList, ViewCreateForm, ViewEditForm, ViewCharacteristics:
		if middleware.IsMobileViewport(r) {
			h.Views.Render(w, r, "mobile_denied.html", "Acceso Restringido", nil)
			return
		}
	}

	switch view {
	case ViewList:
		h.packageList(w, r)
	case ViewCreateForm:
		h.packageForm(w, r, models.Package{})
	case ViewEditForm:
		h.editForm(w, r)
	case ViewUsers:
		h.userList(w, r)
	case ViewCategories:
		h.categoryList(w, r)
	case ViewCharacteristics:
		h.characteristicList(w, r)
	default:
		h.Views.Render(w, r, "admin_menu.html", "Menú de Administrador", nil)
	}
}

// token returns the bearer token of the current admin session. RequireAdmin
// guarantees a session exists.
func (h *Handler) token(w http.ResponseWriter, r *http.Request) (*session.Session, string) {
	s := h.Sessions.Current(w, r)
	if s == nil {
		return nil, ""
	}
	return s, s.Token
}

// authFail clears the session and redirects when the backend rejected the
// token; reports whether it handled err.
func (h *Handler) authFail(w http.ResponseWriter, r *http.Request, err error) bool {
	if err == nil || !api.IsAuth(err) {
		return false
	}
	_ = h.Sessions.Clear(w, r)
	http.Redirect(w, r, "/session-expired", http.StatusSeeOther)
	return true
}

func (h *Handler) flash(w http.ResponseWriter, r *http.Request, kind, title, msg string) {
	h.Sessions.AddFlash(w, r, session.Flash{Kind: kind, Title: title, Message: msg})
}

// paginate slices a table into ItemsPerPage chunks.
func paginate(total, page int) (start, end, totalPages, current int) {
	totalPages = (total + ItemsPerPage - 1) / ItemsPerPage
	if totalPages == 0 {
		totalPages = 1
	}
	current = page
	if current < 1 {
		current = 1
	}
	if current > totalPages {
		current = totalPages
	}
	start = (current - 1) * ItemsPerPage
	end = start + ItemsPerPage
	if end > total {
		end = total
	}
	return start, end, totalPages, current
}

func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		return 1
	}
	return page
}

func (h *Handler) packageList(w http.ResponseWriter, r *http.Request) {
	_, token := h.token(w, r)
	packages, err := h.API.GetAdminPackages(r.Context(), token)
	if err != nil {
		if h.authFail(w, r, err) {
			return
		}
		h.Views.Render(w, r, "admin_packages.html", "Administración de Paquetes", utils.M{
			"LoadError": api.AsError(err).UserMessage(),
			"RetryPath": "/paquetes/admin?view=LIST",
		})
		return
	}
	start, end, totalPages, current := paginate(len(packages), pageParam(r))
	h.Views.Render(w, r, "admin_packages.html", "Administración de Paquetes", utils.M{
		"Packages":    packages[start:end],
		"Total":       len(packages),
		"TotalPages":  totalPages,
		"CurrentPage": current,
	})
}

func (h *Handler) editForm(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil {
		http.Redirect(w, r, "/paquetes/admin?view=LIST", http.StatusSeeOther)
		return
	}
	pkg, err := h.API.GetPackage(r.Context(), id)
	if err != nil {
		if h.authFail(w, r, err) {
			return
		}
		h.flash(w, r, "error", "Error", api.AsError(err).UserMessage())
		http.Redirect(w, r, "/paquetes/admin?view=LIST", http.StatusSeeOther)
		return
	}
	h.packageForm(w, r, pkg)
}

func (h *Handler) packageForm(w http.ResponseWriter, r *http.Request, pkg models.Package) {
	_, token := h.token(w, r)
	// Category and characteristic options for the selectors; a failure
	// here leaves them empty but keeps the form usable.
	cats, _ := h.API.GetCategories(r.Context(), token)
	chars, _ := h.API.GetCharacteristics(r.Context(), token)

	title := "Registrar Nuevo Paquete de Viaje"
	if pkg.ID != 0 {
		title = "Editar Paquete Existente"
	}
	if len(pkg.Images) == 0 {
		pkg.Images = []models.ImageEntry{{Principal: true}}
	}
	h.Views.Render(w, r, "admin_package_form.html", title, utils.M{
		"Package":                 pkg,
		"IsEditing":               pkg.ID != 0,
		"CategoryOptions":         cats,
		"SelectedCategories":      categoryIDSet(pkg.CategoryIDs),
		"CharacteristicOptions":   chars,
		"SelectedCharacteristics": categoryIDSet(pkg.CharacteristicIDs),
	})
}

// categoryIDSet is a template helper: the form marks a category checked
// when the package already references it.
func categoryIDSet(ids []int) map[int]bool {
	set := make(map[int]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func trimmedAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if t := strings.TrimSpace(v); t != "" {
			out = append(out, t)
		}
	}
	return out
}
