// AngelaMos | 2026
// handler.go

package category

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tkprod/portfolio-api/internal/core"
	"github.com/tkprod/portfolio-api/internal/video"
)

type VideoLister interface {
	List(ctx context.Context, q video.ListQuery) (*video.Page, error)
}

type Handler struct {
	service   *Service
	videos    VideoLister
	validator *core.Validator
}

func NewHandler(
	service *Service,
	videos VideoLister,
	validator *core.Validator,
) *Handler {
	return &Handler{
		service:   service,
		videos:    videos,
		validator: validator,
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
	adminOnly func(http.Handler) http.Handler,
) {
	r.Route("/categories", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{id}/videos", h.ListVideos)

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
	categories, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	core.OK(w, ToCategoryListResponse(categories))
}

// ListVideos lists the videos of one category with the same paging,
// search and sort options as the video listing.
func (h *Handler) ListVideos(w http.ResponseWriter, r *http.Request) {
	id, ok := core.PathID(r)
	if !ok {
		core.NotFound(w, "category")
		return
	}

	category, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	q := video.ReadListQuery(r)
	q.Category = category.CategoryID

	page, err := h.videos.List(r.Context(), q)
	if err != nil {
		video.WriteError(w, err)
		return
	}

	core.OK(w, video.ToVideoListResponse(page))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCategoryRequest
	if err := h.bind(r, &req); err != nil {
		core.JSONError(w, err)
		return
	}

	category, err := h.service.Create(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	core.Created(w, core.CreatedResponse{
		ID:      category.ID,
		Message: "category created",
	})
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := core.PathID(r)
	if !ok {
		core.NotFound(w, "category")
		return
	}

	var req UpdateCategoryRequest
	if err := h.bind(r, &req); err != nil {
		core.JSONError(w, err)
		return
	}

	if _, err := h.service.Update(r.Context(), id, req); err != nil {
		writeError(w, err)
		return
	}

	core.Message(w, "category updated")
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := core.PathID(r)
	if !ok {
		core.NotFound(w, "category")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	core.Message(w, "category deleted")
}

func (h *Handler) bind(r *http.Request, dst any) error {
	if err := core.DecodeJSON(r, dst); err != nil {
		return err
	}
	return h.validator.Struct(dst)
}

func writeError(w http.ResponseWriter, err error) {
	var inUse *InUseError

	switch {
	case errors.As(err, &inUse):
		core.JSONError(w, core.NewAppError(
			err,
			"category has videos and cannot be deleted",
			http.StatusBadRequest,
			core.CodeCategoryInUse,
		).WithDetails(InUseDetails{Count: inUse.Count}))
	case errors.Is(err, ErrCategoryExists):
		core.JSONError(w, core.NewAppError(
			err,
			"category already exists",
			http.StatusConflict,
			core.CodeCategoryExists,
		))
	case errors.Is(err, core.ErrNotFound):
		core.NotFound(w, "category")
	default:
		core.JSONError(w, err)
	}
}
