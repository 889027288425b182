package producttypes

import "github.com/go-chi/chi/v5"

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/product-types", h.List)
	r.Post("/product-types", h.Create)
	r.Get("/product-types/{id}", h.Get)
	r.Put("/product-types/{id}", h.Update)
}
