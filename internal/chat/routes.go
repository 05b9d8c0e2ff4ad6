package chat

import "github.com/go-chi/chi/v5"

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/", h.Root)
	r.Post("/chat", h.Chat)
	r.Post("/detect", h.Detect)
}
