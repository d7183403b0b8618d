// AngelaMos | 2026
// handler.go

package admin

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"runtime"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"github.com/tkprod/portfolio-api/internal/core"
)

// Counter returns the size of one collection.
type Counter func(ctx context.Context) (int, error)

type HandlerConfig struct {
	Videos         Counter
	Categories     Counter
	Messages       Counter
	UnreadMessages Counter

	DBStats    func() sql.DBStats
	RedisStats func() *redis.PoolStats
	DBPing     func(ctx context.Context) error
	RedisPing  func(ctx context.Context) error
}

type Handler struct {
	cfg HandlerConfig
}

func NewHandler(cfg HandlerConfig) *Handler {
	return &Handler{cfg: cfg}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(authenticator)
		r.Use(adminOnly)

		r.Get("/stats", h.GetStats)
	})
}

// GetStats reports content totals alongside backing service health. A
// failing content count fails the request; unhealthy infrastructure is
// reported, not raised.
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	content, err := h.contentStats(ctx)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	core.OK(w, StatsResponse{
		Content: content,
		Database: DatabaseStatus{
			Healthy: ping(ctx, h.cfg.DBPing),
			Stats:   h.dbPoolStats(),
		},
		Redis: RedisStatus{
			Healthy: ping(ctx, h.cfg.RedisPing),
			Stats:   h.redisPoolStats(),
		},
		Runtime: RuntimeStats{
			GoVersion:    runtime.Version(),
			NumGoroutine: runtime.NumGoroutine(),
			MemAlloc:     memStats.Alloc,
		},
	})
}

func (h *Handler) contentStats(ctx context.Context) (ContentStats, error) {
	var stats ContentStats

	counts := []struct {
		name    string
		counter Counter
		dst     *int
	}{
		{"videos", h.cfg.Videos, &stats.Videos},
		{"categories", h.cfg.Categories, &stats.Categories},
		{"messages", h.cfg.Messages, &stats.Messages},
		{"unread messages", h.cfg.UnreadMessages, &stats.UnreadMessages},
	}

	for _, c := range counts {
		if c.counter == nil {
			continue
		}
		n, err := c.counter(ctx)
		if err != nil {
			return ContentStats{}, fmt.Errorf("count %s: %w", c.name, err)
		}
		*c.dst = n
	}

	return stats, nil
}

func ping(ctx context.Context, fn func(context.Context) error) bool {
	if fn == nil {
		return false
	}
	return fn(ctx) == nil
}

func (h *Handler) dbPoolStats() *DBPoolStats {
	if h.cfg.DBStats == nil {
		return nil
	}

	stats := h.cfg.DBStats()
	return &DBPoolStats{
		OpenConnections: stats.OpenConnections,
		InUse:           stats.InUse,
		Idle:            stats.Idle,
		WaitCount:       stats.WaitCount,
	}
}

func (h *Handler) redisPoolStats() *RedisPoolStats {
	if h.cfg.RedisStats == nil {
		return nil
	}

	stats := h.cfg.RedisStats()
	return &RedisPoolStats{
		TotalConns: stats.TotalConns,
		IdleConns:  stats.IdleConns,
		Timeouts:   stats.Timeouts,
	}
}

type StatsResponse struct {
	Content  ContentStats   `json:"content"`
	Database DatabaseStatus `json:"database"`
	Redis    RedisStatus    `json:"redis"`
	Runtime  RuntimeStats   `json:"runtime"`
}

type ContentStats struct {
	Videos         int `json:"videos"`
	Categories     int `json:"categories"`
	Messages       int `json:"messages"`
	UnreadMessages int `json:"unreadMessages"`
}

type DatabaseStatus struct {
	Healthy bool         `json:"healthy"`
	Stats   *DBPoolStats `json:"stats,omitempty"`
}

type RedisStatus struct {
	Healthy bool            `json:"healthy"`
	Stats   *RedisPoolStats `json:"stats,omitempty"`
}

type DBPoolStats struct {
	OpenConnections int   `json:"openConnections"`
	InUse           int   `json:"inUse"`
	Idle            int   `json:"idle"`
	WaitCount       int64 `json:"waitCount"`
}

type RedisPoolStats struct {
	TotalConns uint32 `json:"totalConns"`
	IdleConns  uint32 `json:"idleConns"`
	Timeouts   uint32 `json:"timeouts"`
}

type RuntimeStats struct {
	GoVersion    string `json:"goVersion"`
	NumGoroutine int    `json:"numGoroutine"`
	MemAlloc     uint64 `json:"memAllocBytes"`
}
