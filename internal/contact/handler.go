// AngelaMos | 2026
// handler.go

package contact

import (
	"errors"
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
	r.Route("/contact", func(r chi.Router) {
		r.Post("/", h.Submit)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Use(adminOnly)
			r.Get("/messages", h.List)
			r.Put("/messages/{id}", h.Update)
			r.Delete("/messages/{id}", h.Delete)
		})
	})
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var req CreateMessageRequest
	if err := h.bind(r, &req); err != nil {
		core.JSONError(w, err)
		return
	}

	if _, err := h.service.Submit(r.Context(), req); err != nil {
		writeError(w, err)
		return
	}

	core.JSON(w, http.StatusCreated, core.MessageResponse{
		Message: "message sent",
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.List(
		r.Context(),
		core.QueryInt(r, "page", DefaultPage),
		core.QueryInt(r, "limit", DefaultLimit),
		ParseReadFilter(r.URL.Query().Get("read")),
	)
	if err != nil {
		writeError(w, err)
		return
	}

	core.OK(w, ToMessageListResponse(page))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := core.PathID(r)
	if !ok {
		core.NotFound(w, "message")
		return
	}

	var req UpdateMessageRequest
	if err := h.bind(r, &req); err != nil {
		core.JSONError(w, err)
		return
	}

	if err := h.service.SetRead(r.Context(), id, req.Read); err != nil {
		writeError(w, err)
		return
	}

	core.Message(w, "message updated")
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := core.PathID(r)
	if !ok {
		core.NotFound(w, "message")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	core.Message(w, "message deleted")
}

func (h *Handler) bind(r *http.Request, dst any) error {
	if err := core.DecodeJSON(r, dst); err != nil {
		return err
	}
	return h.validator.Struct(dst)
}

func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, core.ErrNotFound) {
		core.NotFound(w, "message")
		return
	}
	core.JSONError(w, err)
}
