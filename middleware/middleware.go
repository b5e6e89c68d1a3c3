package middleware

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"

	"tierranativa/session"
)

// MobileMaxWidth is the widest viewport still treated as mobile. Admin
// package/characteristic management blocks below it regardless of role.
const MobileMaxWidth = 768

// RequireAuth re-checks the session on every request. Expired or absent
// sessions land on the session-expired page.
func RequireAuth(sessions *session.Manager, next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		s := sessions.Current(w, r)
		if s == nil {
			http.Redirect(w, r, "/session-expired", http.StatusSeeOther)
			return
		}
		next(w, r, ps)
	}
}

// RequireAdmin additionally demands the ADMIN role. The decision is never
// cached: a role change is effective on the next request.
func RequireAdmin(sessions *session.Manager, next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		s := sessions.Current(w, r)
		if s == nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		if !s.IsAdmin() {
			http.Redirect(w, r, "/home?denied=1", http.StatusSeeOther)
			return
		}
		next(w, r, ps)
	}
}

// IsMobileViewport reports a sub-768px viewport. The width reaches the
// server through client-hint headers, with a `vw` query fallback filled in
// by an inline script on first paint; absence of any signal is treated as
// desktop.
func IsMobileViewport(r *http.Request) bool {
	for _, candidate := range []string{
		r.URL.Query().Get("vw"),
		r.Header.Get("Sec-CH-Viewport-Width"),
		r.Header.Get("Viewport-Width"),
	} {
		if candidate == "" {
			continue
		}
		if width, err := strconv.Atoi(candidate); err == nil {
			return width < MobileMaxWidth
		}
	}
	return false
}

// Logging logs each request method, path, remote address, and duration.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s from %s in %v", r.Method, r.RequestURI, r.RemoteAddr, time.Since(start))
	})
}

// SecurityHeaders applies a set of recommended HTTP security headers.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")
		next.ServeHTTP(w, r)
	})
}
