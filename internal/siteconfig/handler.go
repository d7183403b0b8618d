// AngelaMos | 2026
// handler.go

package siteconfig

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tkprod/portfolio-api/internal/core"
)

type Handler struct {
	service   *Service
	validator *core.Validator
}

func NewHandler(service *Service, validator *core.Validator) *Handler {
	return &Handler{
		service:   service,
		validator: validator,
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
	adminOnly func(http.Handler) http.Handler,
) {
	r.Route("/config", func(r chi.Router) {
		r.Get("/", h.Get)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Use(adminOnly)
			r.Put("/", h.Update)
		})
	})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.service.Get(r.Context())
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, ToResponse(cfg))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateRequest
	if err := core.DecodeJSON(r, &req); err != nil {
		core.JSONError(w, err)
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		core.JSONError(w, err)
		return
	}

	if _, err := h.service.Update(r.Context(), req); err != nil {
		core.JSONError(w, err)
		return
	}

	core.Message(w, "site configuration updated")
}
