package manufacturers

import "github.com/go-chi/chi/v5"

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/manufacturers", h.List)
	r.Post("/manufacturers", h.Create)
	r.Get("/manufacturers/{id}", h.Get)
	r.Put("/manufacturers/{id}", h.Update)
}
