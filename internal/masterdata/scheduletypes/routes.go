package scheduletypes

import "github.com/go-chi/chi/v5"

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/schedule-types", h.List)
	r.Post("/schedule-types", h.Create)
	r.Get("/schedule-types/{id}", h.Get)
	r.Put("/schedule-types/{id}", h.Update)
}
