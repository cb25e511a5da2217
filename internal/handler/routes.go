package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Get("/api/health", h.health)
	router.Get("/api/products", h.listProducts)
	router.Post("/api/sales", h.acceptSale)

	return router
}
