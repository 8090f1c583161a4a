package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, withGZipRequests)
	router.Use(middleware.Compress(5, "application/json", "text/plain"))
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)
		r.Post("/auth/validate-token", h.validateToken)

		r.Get("/posts", h.listPosts)
		r.Get("/posts/{id}", h.getPost)
		r.Get("/uploads/{name}", h.getUpload)
		r.Get("/api/version", h.getServerVersion)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/auth/check-password", h.checkPassword)
		r.Put("/auth/update-profile", h.updateProfile)

		r.Get("/users/profile", h.getProfile)
		r.Post("/users/profile-picture", h.uploadProfilePicture)

		r.Post("/posts", h.createPost)
		r.Put("/posts/{id}", h.updatePost)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	return router
}
