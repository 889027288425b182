package productgenerics

import "github.com/go-chi/chi/v5"

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/product-generics", h.List)
	r.Post("/product-generics", h.Create)
	r.Delete("/product-generics/{id}", h.Delete)
}
