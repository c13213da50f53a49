// Package router sets up all HTTP routes and middleware chains for the
// analyst site API. Public reads are open; resource mutations and uploads
// require an admin session.
package router

import (
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"

	"analystsite/internal/handlers"
	"analystsite/internal/middleware"
	"analystsite/internal/session"
)

// Handlers bundles the handler groups the router wires up.
type Handlers struct {
	Blogs        *handlers.Blogs
	Services     *handlers.Services
	ContentItems *handlers.ContentItems
	Uploads      *handlers.Uploads
	Auth         *handlers.Auth
	Contact      *handlers.Contact
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. uploadDir is served statically under
// /images and /videos.
func New(sessionStore *session.Store, h *Handlers, uploadDir string) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(sessionStore))

	// Health check.
	r.Get("/health", healthHandler)

	// Login and contact are throttled to slow down password guessing and
	// form spam.
	limiter := middleware.NewRateLimiter(10, time.Minute)
	r.Group(func(r chi.Router) {
		r.Use(limiter.Middleware)
		r.Post("/admin/login", h.Auth.Login)
		r.Post("/contact", h.Contact.Submit)
	})
	r.Post("/admin/logout", h.Auth.Logout)

	// Blogs.
	r.Route("/blogs", func(r chi.Router) {
		r.Get("/", h.Blogs.List)
		r.Get("/{slug}", h.Blogs.Get)
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin)
			r.Post("/", h.Blogs.Create)
			r.Put("/", h.Blogs.Update)
			r.Delete("/{id}", h.Blogs.Delete)
		})
	})

	// Services.
	r.Route("/services", func(r chi.Router) {
		r.Get("/", h.Services.List)
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin)
			r.Get("/all", h.Services.ListAll)
			r.Post("/", h.Services.Create)
			r.Put("/", h.Services.Update)
			r.Delete("/{id}", h.Services.Delete)
		})
	})

	// Content items (homepage carousel).
	r.Route("/content-items", func(r chi.Router) {
		r.Get("/", h.ContentItems.List)
		r.Get("/{id}", h.ContentItems.Get)
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin)
			r.Get("/all", h.ContentItems.ListAll)
			r.Post("/", h.ContentItems.Create)
			r.Put("/", h.ContentItems.Update)
			r.Delete("/{id}", h.ContentItems.Delete)
		})
	})

	// Media upload.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdmin)
		r.Post("/upload", h.Uploads.Upload)
	})

	// Uploaded media served straight from the public directory.
	fileServer(r, "/images", filepath.Join(uploadDir, "images"))
	fileServer(r, "/videos", filepath.Join(uploadDir, "videos"))

	return r
}

// fileServer mounts a static file handler for the given URL prefix.
func fileServer(r chi.Router, prefix, dir string) {
	fs := http.StripPrefix(prefix, http.FileServer(http.Dir(dir)))
	r.Get(prefix+"/*", func(w http.ResponseWriter, req *http.Request) {
		fs.ServeHTTP(w, req)
	})
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
