package routes

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"tierranativa/admin"
	"tierranativa/auth"
	"tierranativa/categories"
	"tierranativa/home"
	"tierranativa/middleware"
	"tierranativa/paquetes"
	"tierranativa/placeholder"
	"tierranativa/ratelim"
	"tierranativa/session"
)

func AddPublicRoutes(router *httprouter.Router, h *home.Handler, p *paquetes.Handler, c *categories.Handler) {
	router.GET("/", redirectTo("/home"))
	router.GET("/home", h.Index)
	router.GET("/paquetes", h.Index)
	router.GET("/api/search/suggestions", h.Suggestions)

	router.GET("/detallePaquete/:id", p.Detail)
	router.GET("/detallePaquete/:id/itinerario.pdf", p.ItineraryPDF)

	router.GET("/categories", c.Index)
	router.GET("/categories/categoria/:categorySlug", c.BySlug)
}

func AddAuthRoutes(router *httprouter.Router, a *auth.Handler, rateLimiter *ratelim.RateLimiter) {
	router.GET("/login", a.LoginForm)
	router.POST("/login", rateLimiter.Limit(a.Login))
	router.GET("/register", a.RegisterForm)
	router.POST("/register", rateLimiter.Limit(a.Register))
	router.GET("/verify-email", a.VerifyEmail)
	router.POST("/verify-email/resend", a.ResendEmail)
	router.POST("/logout", a.Logout)
	router.GET("/session-expired", a.SessionExpired)
}

func AddAdminRoutes(router *httprouter.Router, adm *admin.Handler, sessions *session.Manager) {
	router.GET("/paquetes/admin", middleware.RequireAdmin(sessions, adm.Dashboard))

	router.POST("/paquetes/admin/packages", middleware.RequireAdmin(sessions, adm.SavePackage))
	router.POST("/paquetes/admin/packages/delete", middleware.RequireAdmin(sessions, adm.DeletePackage))
	router.POST("/paquetes/admin/categories", middleware.RequireAdmin(sessions, adm.SaveCategory))
	router.POST("/paquetes/admin/categories/delete", middleware.RequireAdmin(sessions, adm.DeleteCategory))
	router.POST("/paquetes/admin/characteristics", middleware.RequireAdmin(sessions, adm.SaveCharacteristic))
	router.POST("/paquetes/admin/characteristics/delete", middleware.RequireAdmin(sessions, adm.DeleteCharacteristic))
	router.POST("/paquetes/admin/users/role", middleware.RequireAdmin(sessions, adm.UpdateUserRole))
}

func AddStaticRoutes(router *httprouter.Router) {
	router.GET("/static/placeholder/*dims", placeholder.Serve)
	router.ServeFiles("/static/assets/*filepath", http.Dir("web/static"))
}

func redirectTo(target string) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		http.Redirect(w, r, target, http.StatusMovedPermanently)
	}
}
