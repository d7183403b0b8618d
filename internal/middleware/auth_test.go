// AngelaMos | 2026
// auth_test.go

package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkprod/portfolio-api/internal/core"
)

type verifierFunc func(string) (string, error)

func (f verifierFunc) Verify(token string) (string, error) { return f(token) }

type resolverFunc func(context.Context, string) (*Identity, error)

func (f resolverFunc) ResolveIdentity(ctx context.Context, id string) (*Identity, error) {
	return f(ctx, id)
}

var testVerifier = verifierFunc(func(token string) (string, error) {
	switch token {
	case "admin":
		return "u-admin", nil
	case "editor":
		return "u-editor", nil
	case "ghost":
		return "u-deleted", nil
	case "broken":
		return "u-broken", nil
	}
	return "", core.ErrTokenInvalid
})

var testResolver = resolverFunc(func(_ context.Context, id string) (*Identity, error) {
	switch id {
	case "u-admin":
		return &Identity{ID: id, Role: "admin"}, nil
	case "u-editor":
		return &Identity{ID: id, Role: "editor"}, nil
	case "u-broken":
		return nil, errors.New("connection reset")
	}
	return nil, core.ErrNotFound
})

func protected(t *testing.T) http.Handler {
	t.Helper()
	final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		core.OK(w, map[string]string{"id": GetUserID(r.Context())})
	})
	return Authenticator(testVerifier, testResolver)(RequireAdmin(final))
}

func serve(h http.Handler, authorization string) (*httptest.ResponseRecorder, core.ErrorResponse) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var body core.ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &body) //nolint:errcheck // success bodies differ
	return rec, body
}

func TestAuthenticator(t *testing.T) {
	tests := []struct {
		name          string
		authorization string
		wantStatus    int
		wantCode      string
	}{
		{"missing header", "", http.StatusUnauthorized, core.CodeUnauthorized},
		{"wrong scheme", "Basic YWRtaW46eA==", http.StatusUnauthorized, core.CodeUnauthorized},
		{"empty bearer", "Bearer ", http.StatusUnauthorized, core.CodeUnauthorized},
		{"invalid token", "Bearer forged", http.StatusUnauthorized, core.CodeUnauthorized},
		{"user deleted after issue", "Bearer ghost", http.StatusUnauthorized, core.CodeUnauthorized},
		{"resolver failure", "Bearer broken", http.StatusInternalServerError, core.CodeServerError},
		{"non admin", "Bearer editor", http.StatusForbidden, core.CodeForbidden},
		{"admin", "Bearer admin", http.StatusOK, ""},
		{"scheme is case insensitive", "bearer admin", http.StatusOK, ""},
	}

	h := protected(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := serve(h, tt.authorization)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, body.Error.Code)
		})
	}
}

func TestAuthenticatorAttachesIdentity(t *testing.T) {
	rec, _ := serve(protected(t), "Bearer admin")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"u-admin"}`, rec.Body.String())
}

func TestRequireRoleWithoutIdentity(t *testing.T) {
	h := RequireRole("admin")(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec, body := serve(h, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, core.CodeUnauthorized, body.Error.Code)
}

func TestExtractToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, ExtractToken(req))

	req.Header.Set("Authorization", "Bearer  abc.def ")
	assert.Equal(t, "abc.def", ExtractToken(req))

	req.Header.Set("Authorization", "Token abc")
	assert.Empty(t, ExtractToken(req))
}
