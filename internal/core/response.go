// AngelaMos | 2026
// response.go

package core

import (
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"sync/atomic"
)

var exposeErrorDetails atomic.Bool

// ExposeErrorDetails controls whether server_error responses carry the
// underlying error text. Only enabled in development.
func ExposeErrorDetails(expose bool) {
	exposeErrorDetails.Store(expose)
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type CreatedResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type Pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

func NewPagination(total, page, limit int) Pagination {
	pages := 0
	if limit > 0 {
		pages = int(math.Ceil(float64(total) / float64(limit)))
	}
	return Pagination{
		Total: total,
		Page:  page,
		Limit: limit,
		Pages: pages,
	}
}

func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("encode response", "error", err)
	}
}

func OK(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, data)
}

func Created(w http.ResponseWriter, data any) {
	JSON(w, http.StatusCreated, data)
}

func Message(w http.ResponseWriter, message string) {
	OK(w, MessageResponse{Message: message})
}

func JSONError(w http.ResponseWriter, err error) {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		InternalServerError(w, err)
		return
	}

	JSON(w, appErr.StatusCode, ErrorResponse{
		Error: ErrorBody{
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: appErr.Details,
		},
	})
}

func Unauthorized(w http.ResponseWriter, message string) {
	JSONError(w, UnauthorizedError(message))
}

func NotFound(w http.ResponseWriter, resource string) {
	JSONError(w, NotFoundError(resource))
}

func InternalServerError(w http.ResponseWriter, err error) {
	slog.Error("internal server error", "error", err)

	body := ErrorBody{
		Code:    CodeServerError,
		Message: "internal server error",
	}
	if exposeErrorDetails.Load() && err != nil {
		body.Details = err.Error()
	}

	JSON(w, http.StatusInternalServerError, ErrorResponse{Error: body})
}

// NotFoundHandler renders unknown routes with the standard envelope.
func NotFoundHandler(w http.ResponseWriter, _ *http.Request) {
	JSONError(w, NotFoundError("resource"))
}

func MethodNotAllowedHandler(w http.ResponseWriter, _ *http.Request) {
	JSONError(w, NewAppError(
		ErrInvalidInput,
		"method not allowed",
		http.StatusMethodNotAllowed,
		CodeMethodNotAllowed,
	))
}
