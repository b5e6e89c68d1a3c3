// Package auth renders the login/register/verification pages and bridges
// them to the backend's auth endpoints. No credential is ever stored here;
// the session keeps only the issued token.
package auth

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	"tierranativa/api"
	"tierranativa/session"
	"tierranativa/utils"
	"tierranativa/views"
)

type Handler struct {
	API      *api.Client
	Sessions *session.Manager
	Views    *views.Renderer
}

// LoginForm serves GET /login.
func (h *Handler) LoginForm(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.Views.Render(w, r, "login.html", "Iniciar Sesión", nil)
}

// Login handles POST /login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	creds := api.Credentials{
		Email:    strings.TrimSpace(r.FormValue("email")),
		Password: r.FormValue("password"),
	}
	if creds.Email == "" || creds.Password == "" {
		h.Views.Render(w, r, "login.html", "Iniciar Sesión", utils.M{
			"Error": "Completa el correo y la contraseña.",
			"Email": creds.Email,
		})
		return
	}

	resp, err := h.API.Login(r.Context(), creds)
	if err != nil {
		apiErr := api.AsError(err)
		msg := apiErr.UserMessage()
		if apiErr.Kind == api.KindAuth {
			// On the login form 401/403 means bad credentials, not an
			// expired session.
			msg = "El correo o la contraseña son incorrectos. Por favor, verifica tus datos."
		}
		h.Views.Render(w, r, "login.html", "Iniciar Sesión", utils.M{
			"Error": msg,
			"Email": creds.Email,
		})
		return
	}

	if _, err := h.Sessions.Login(w, r, resp); err != nil {
		h.Views.Render(w, r, "login.html", "Iniciar Sesión", utils.M{
			"Error": "No se pudo iniciar la sesión en este navegador.",
			"Email": creds.Email,
		})
		return
	}
	http.Redirect(w, r, "/home", http.StatusSeeOther)
}

// RegisterForm serves GET /register.
func (h *Handler) RegisterForm(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.Views.Render(w, r, "register.html", "Crear Cuenta", nil)
}

// Register handles POST /register and sends the user to the verify-email
// page on success.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	req := api.RegisterRequest{
		FirstName: strings.TrimSpace(r.FormValue("firstName")),
		LastName:  strings.TrimSpace(r.FormValue("lastName")),
		Email:     strings.TrimSpace(r.FormValue("email")),
		Password:  r.FormValue("password"),
	}

	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Password == "" {
		h.Views.Render(w, r, "register.html", "Crear Cuenta", utils.M{
			"Error": "Rellena todos los campos obligatorios.",
			"Form":  req,
		})
		return
	}
	if !strings.Contains(req.Email, "@") {
		h.Views.Render(w, r, "register.html", "Crear Cuenta", utils.M{
			"Error": "El correo electrónico no tiene un formato válido.",
			"Form":  req,
		})
		return
	}

	if err := h.API.Register(r.Context(), req); err != nil {
		apiErr := api.AsError(err)
		msg := apiErr.UserMessage()
		if apiErr.Kind == api.KindConflict {
			msg = "Ya existe una cuenta registrada con ese correo."
		}
		h.Views.Render(w, r, "register.html", "Crear Cuenta", utils.M{
			"Error": msg,
			"Form":  req,
		})
		return
	}

	http.Redirect(w, r, "/verify-email?email="+req.Email, http.StatusSeeOther)
}

// VerifyEmail serves GET /verify-email. With ?token= it redeems the mailed
// link; without it, it shows the waiting/resend screen.
func (h *Handler) VerifyEmail(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	token := r.URL.Query().Get("token")
	email := r.URL.Query().Get("email")

	status := "waiting"
	if token != "" {
		if err := h.API.VerifyEmail(r.Context(), token); err != nil {
			status = "error"
		} else {
			status = "success"
		}
	}

	h.Views.Render(w, r, "verify_email.html", "Verifica tu Correo", utils.M{
		"Status": status,
		"Email":  email,
	})
}

// ResendEmail handles POST /verify-email/resend.
func (h *Handler) ResendEmail(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	email := strings.TrimSpace(r.FormValue("email"))
	if email == "" {
		h.Views.Render(w, r, "verify_email.html", "Verifica tu Correo", utils.M{
			"Status": "waiting",
			"Error":  "Por favor, introduce tu correo electrónico.",
		})
		return
	}

	if err := h.API.ResendVerificationEmail(r.Context(), email); err != nil {
		h.Views.Render(w, r, "verify_email.html", "Verifica tu Correo", utils.M{
			"Status": "waiting",
			"Email":  email,
			"Error":  "No se pudo reenviar el correo. Verifica que la dirección sea correcta o intenta más tarde.",
		})
		return
	}

	h.Views.Render(w, r, "verify_email.html", "Verifica tu Correo", utils.M{
		"Status": "resent",
		"Email":  email,
	})
}

// Logout handles POST /logout: clears every session key and returns to the
// public home.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	_ = h.Sessions.Clear(w, r)
	http.Redirect(w, r, "/home", http.StatusSeeOther)
}

// SessionExpired serves the page 401/403 redirects land on.
func (h *Handler) SessionExpired(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.Views.Render(w, r, "session_expired.html", "Sesión Expirada", nil)
}
