// AngelaMos | 2026
// handler_test.go

package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixed(n int) Counter {
	return func(context.Context) (int, error) { return n, nil }
}

func TestGetStats(t *testing.T) {
	h := NewHandler(HandlerConfig{
		Videos:         fixed(12),
		Categories:     fixed(3),
		Messages:       fixed(7),
		UnreadMessages: fixed(2),
		DBPing:         func(context.Context) error { return nil },
		RedisPing:      func(context.Context) error { return errors.New("down") },
	})

	rec := httptest.NewRecorder()
	h.GetStats(rec, httptest.NewRequest(http.MethodGet, "/admin/stats", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp StatsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, ContentStats{
		Videos:         12,
		Categories:     3,
		Messages:       7,
		UnreadMessages: 2,
	}, resp.Content)
	assert.True(t, resp.Database.Healthy)
	assert.False(t, resp.Redis.Healthy)
	assert.Nil(t, resp.Database.Stats)
	assert.NotEmpty(t, resp.Runtime.GoVersion)
}

func TestGetStatsCountFailure(t *testing.T) {
	h := NewHandler(HandlerConfig{
		Videos: func(context.Context) (int, error) { return 0, errors.New("db down") },
	})

	rec := httptest.NewRecorder()
	h.GetStats(rec, httptest.NewRequest(http.MethodGet, "/admin/stats", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "server_error")
}
