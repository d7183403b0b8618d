// AngelaMos | 2026
// request.go

package core

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// QueryInt reads a positive integer query parameter, returning def when it
// is absent or malformed.
func QueryInt(r *http.Request, key string, def int) int {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return def
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}

	return n
}

// PathID returns the {id} route parameter and whether it is a well-formed
// identifier. Malformed ids can never match a stored row.
func PathID(r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if uuid.Validate(id) != nil {
		return id, false
	}
	return id, true
}
