package admin

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	"tierranativa/api"
	"tierranativa/models"
	"tierranativa/utils"
)

func (h *Handler) userList(w http.ResponseWriter, r *http.Request) {
	s, token := h.token(w, r)
	users, err := h.API.GetUsers(r.Context(), token)
	if err != nil {
		// A 403 here means the backend no longer honors this admin; drop
		// the session entirely rather than show a half-broken screen.
		if h.authFail(w, r, err) {
			return
		}
		h.Views.Render(w, r, "admin_users.html", "Gestión de Usuarios Registrados", utils.M{
			"LoadError": "No se pudo cargar la lista de usuarios.",
			"RetryPath": "/paquetes/admin?view=LIST_USERS",
		})
		return
	}

	term := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("q")))
	if term != "" {
		filtered := users[:0:0]
		for _, u := range users {
			full := strings.ToLower(u.FirstName + " " + u.LastName)
			if strings.Contains(full, term) || strings.Contains(strings.ToLower(u.Email), term) {
				filtered = append(filtered, u)
			}
		}
		users = filtered
	}

	h.Views.Render(w, r, "admin_users.html", "Gestión de Usuarios Registrados", utils.M{
		"Users":          users,
		"SearchTerm":     r.URL.Query().Get("q"),
		"Superuser":      h.Superuser,
		"CanModifyRoles": s != nil && s.User.Email == h.Superuser,
	})
}

// UpdateUserRole handles POST /paquetes/admin/users/role. Only the
// superuser may mutate roles, and it may never revoke its own ADMIN; both
// violations are rejected before any API call is made.
func (h *Handler) UpdateUserRole(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s, token := h.token(w, r)
	email := strings.TrimSpace(r.FormValue("email"))
	newRole := r.FormValue("newRole")

	if s == nil || s.User.Email != h.Superuser {
		h.flash(w, r, "warning", "Acción Restringida",
			"Solo el Superusuario ("+h.Superuser+") tiene permitido modificar los roles de usuario.")
		http.Redirect(w, r, "/paquetes/admin?view=LIST_USERS", http.StatusSeeOther)
		return
	}
	if email == s.User.Email && newRole == models.RoleUser {
		h.flash(w, r, "warning", "Permiso Restringido",
			"El Superusuario no puede auto-revocarse su propio permiso de administrador.")
		http.Redirect(w, r, "/paquetes/admin?view=LIST_USERS", http.StatusSeeOther)
		return
	}
	if newRole != models.RoleUser && newRole != models.RoleAdmin {
		h.flash(w, r, "error", "Rol Inválido", "El rol indicado no existe.")
		http.Redirect(w, r, "/paquetes/admin?view=LIST_USERS", http.StatusSeeOther)
		return
	}

	if err := h.API.UpdateUserRole(r.Context(), token, email, newRole); err != nil {
		if h.authFail(w, r, err) {
			return
		}
		h.flash(w, r, "error", "Error",
			"No se pudo cambiar el rol. "+api.AsError(err).UserMessage())
	} else {
		h.flash(w, r, "success", "Éxito", "Rol de "+email+" cambiado a "+newRole+".")
	}
	http.Redirect(w, r, "/paquetes/admin?view=LIST_USERS", http.StatusSeeOther)
}
