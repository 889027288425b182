package categories

import "github.com/go-chi/chi/v5"

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/product-categories", h.List)
	r.Post("/product-categories", h.Create)
	r.Get("/product-categories/{id}", h.Get)
	r.Put("/product-categories/{id}", h.Update)
}
