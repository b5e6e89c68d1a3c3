package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"

	"tierranativa/admin"
	"tierranativa/api"
	"tierranativa/auth"
	"tierranativa/categories"
	"tierranativa/config"
	"tierranativa/home"
	"tierranativa/middleware"
	"tierranativa/paquetes"
	"tierranativa/ratelim"
	"tierranativa/rdx"
	"tierranativa/routes"
	"tierranativa/session"
	"tierranativa/views"
)

// Index is a simple health check handler.
func Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

// setupRouter builds the router with every page and action route.
func setupRouter(cfg config.Config, sessions *session.Manager, renderer *views.Renderer, client *api.Client, rateLimiter *ratelim.RateLimiter) *httprouter.Router {
	router := httprouter.New()
	router.GET("/health", Index)

	homeHandler := &home.Handler{API: client, Views: renderer}
	detailHandler := &paquetes.Handler{API: client, Views: renderer}
	categoryHandler := &categories.Handler{API: client, Views: renderer}
	authHandler := &auth.Handler{API: client, Sessions: sessions, Views: renderer}
	adminHandler := &admin.Handler{API: client, Sessions: sessions, Views: renderer, Superuser: cfg.SuperuserEmail}

	routes.AddPublicRoutes(router, homeHandler, detailHandler, categoryHandler)
	routes.AddAuthRoutes(router, authHandler, rateLimiter)
	routes.AddAdminRoutes(router, adminHandler, sessions)
	routes.AddStaticRoutes(router)

	return router
}

func main() {
	cfg := config.Load()

	rdx.Init(cfg.RedisAddr)

	templates, err := views.LoadTemplates("web/templates")
	if err != nil {
		log.Fatalf("❌ Template load error: %v", err)
	}

	client := api.NewClient(cfg.APIBaseURL)
	sessions := session.NewManager(cfg.SessionSecret)
	renderer := &views.Renderer{Templates: templates, Sessions: sessions, API: client}
	rateLimiter := ratelim.NewRateLimiter()

	router := setupRouter(cfg, sessions, renderer, client, rateLimiter)

	// apply middleware: CORS → security headers → logging → router
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // lock down in production
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}).Handler(router)

	handler := middleware.Logging(middleware.SecurityHeaders(corsHandler))

	server := &http.Server{
		Addr:              cfg.Port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	go func() {
		log.Printf("🚀 Tierra Nativa listening on %s (backend %s)", cfg.Port, cfg.APIBaseURL)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("🛑 Shutdown signal received; shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Graceful shutdown failed: %v", err)
	}

	log.Println("✅ Server stopped cleanly")
}
