package generics

import "github.com/go-chi/chi/v5"

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/generics", h.List)
	r.Post("/generics", h.Create)
	r.Get("/generics/{id}", h.Get)
	r.Put("/generics/{id}", h.Update)
}
