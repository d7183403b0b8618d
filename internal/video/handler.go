// AngelaMos | 2026
// handler.go

package video

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
	r.Route("/videos", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Use(adminOnly)
			r.Post("/", h.Create)
			r.Put("/{id}", h.Update)
			r.Delete("/{id}", h.Delete)
		})
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.List(r.Context(), ReadListQuery(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	core.OK(w, ToVideoListResponse(page))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := core.PathID(r)
	if !ok {
		core.NotFound(w, "video")
		return
	}

	video, err := h.service.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	core.OK(w, ToVideoResponse(video))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateVideoRequest
	if err := h.bind(r, &req); err != nil {
		core.JSONError(w, err)
		return
	}

	video, err := h.service.Create(r.Context(), req)
	if err != nil {
		WriteError(w, err)
		return
	}

	core.Created(w, core.CreatedResponse{
		ID:      video.ID,
		Message: "video created",
	})
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := core.PathID(r)
	if !ok {
		core.NotFound(w, "video")
		return
	}

	var req UpdateVideoRequest
	if err := h.bind(r, &req); err != nil {
		core.JSONError(w, err)
		return
	}

	if _, err := h.service.Update(r.Context(), id, req); err != nil {
		WriteError(w, err)
		return
	}

	core.Message(w, "video updated")
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := core.PathID(r)
	if !ok {
		core.NotFound(w, "video")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	core.Message(w, "video deleted")
}

// ReadListQuery extracts the listing parameters shared by every video
// listing endpoint.
func ReadListQuery(r *http.Request) ListQuery {
	q := r.URL.Query()
	return ListQuery{
		Page:     core.QueryInt(r, "page", DefaultPage),
		Limit:    core.QueryInt(r, "limit", DefaultLimit),
		Category: q.Get("category"),
		Search:   q.Get("search"),
		Lang:     q.Get("lang"),
		Sort:     q.Get("sort"),
	}
}

func (h *Handler) bind(r *http.Request, dst any) error {
	if err := core.DecodeJSON(r, dst); err != nil {
		return err
	}
	return h.validator.Struct(dst)
}

// WriteError maps video service errors onto the API error envelope.
func WriteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidSort):
		core.JSONError(w, core.ValidationError(
			"invalid sort parameter",
			[]core.FieldError{{
				Field:   "sort",
				Message: err.Error(),
				Tag:     "oneof",
			}},
		))
	case errors.Is(err, ErrInvalidCategory):
		core.JSONError(w, core.NewAppError(
			err,
			"category does not exist",
			http.StatusBadRequest,
			core.CodeInvalidCategory,
		))
	case errors.Is(err, core.ErrNotFound):
		core.NotFound(w, "video")
	default:
		core.JSONError(w, err)
	}
}
