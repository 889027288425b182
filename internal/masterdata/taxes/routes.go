package taxes

import "github.com/go-chi/chi/v5"

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/taxes", h.List)
	r.Post("/taxes", h.Create)
	r.Get("/taxes/{id}", h.Get)
	r.Put("/taxes/{id}", h.Update)
}
