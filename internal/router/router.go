// Package router sets up all HTTP routes and middleware chains for the
// blog API. Read endpoints for posts, categories and search go through the
// response cache; notes are always served live.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"devblog/internal/cache"
	"devblog/internal/handlers"
	"devblog/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. rc and limiter may be nil.
func New(api *handlers.API, rc *cache.ResponseCache, limiter *middleware.RateLimiter) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	r.NotFound(jsonStatus(http.StatusNotFound, "Not found"))
	r.MethodNotAllowed(jsonStatus(http.StatusMethodNotAllowed, "Method not allowed"))

	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		if limiter != nil {
			r.Use(limiter.Writes)
		}

		// Cacheable reads.
		r.Group(func(r chi.Router) {
			r.Use(rc.Handler)

			r.Get("/posts", api.ListPosts)
			r.Get("/posts/category/{category}", api.ListPostsByCategory)
			r.Get("/posts/{slug}", api.GetPost)
			r.Get("/posts/{slug}/html", api.GetPostHTML)
			r.Get("/search", api.Search)
			r.Get("/search/fuzzy", api.FuzzySearch)
			r.Get("/categories", api.ListCategories)
			r.Get("/categories/{slug}", api.GetCategory)
		})

		r.Post("/posts", api.CreatePost)
		r.Post("/categories", api.CreateCategory)

		// Notes
		r.Get("/posts/{postId}/notes", api.ListNotes)
		r.Post("/posts/{postId}/notes", api.CreateNote)
		r.Delete("/notes/{id}", api.DeleteNote)
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func jsonStatus(status int, msg string) http.HandlerFunc {
	body := []byte(`{"message":"` + msg + `"}`)
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write(body)
	}
}
