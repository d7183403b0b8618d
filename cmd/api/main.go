// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tkprod/portfolio-api/internal/admin"
	"github.com/tkprod/portfolio-api/internal/auth"
	"github.com/tkprod/portfolio-api/internal/category"
	"github.com/tkprod/portfolio-api/internal/config"
	"github.com/tkprod/portfolio-api/internal/contact"
	"github.com/tkprod/portfolio-api/internal/core"
	"github.com/tkprod/portfolio-api/internal/health"
	"github.com/tkprod/portfolio-api/internal/middleware"
	"github.com/tkprod/portfolio-api/internal/server"
	"github.com/tkprod/portfolio-api/internal/siteconfig"
	"github.com/tkprod/portfolio-api/internal/user"
	"github.com/tkprod/portfolio-api/internal/video"
	"github.com/tkprod/portfolio-api/migrations"
)

const (
	drainDelay = 5 * time.Second
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	core.ExposeErrorDetails(cfg.IsDevelopment())

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	var telemetry *core.Telemetry
	if cfg.Otel.Enabled {
		tel, telErr := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
		if telErr != nil {
			logger.Warn("failed to initialize telemetry", "error", telErr)
		} else {
			telemetry = tel
			logger.Info("OpenTelemetry tracer initialized",
				"endpoint", cfg.Otel.Endpoint,
			)
		}
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	logger.Info("database connected",
		"max_open_conns", cfg.Database.MaxOpenConns,
		"max_idle_conns", cfg.Database.MaxIdleConns,
	)

	if cfg.Database.AutoMigrate {
		if err := db.Migrate(ctx, migrations.FS); err != nil {
			return err
		}
		logger.Info("database migrations applied")
	}

	redis, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	logger.Info("redis connected",
		"pool_size", cfg.Redis.PoolSize,
	)

	tokens, err := auth.NewTokenService(cfg.JWT)
	if err != nil {
		return err
	}
	logger.Info("token service initialized",
		"algorithm", "HS256",
		"expires_in", tokens.ExpiresIn().String(),
	)

	validator := core.NewValidator()

	userSvc := user.NewService(user.NewRepository(db.DB))
	authHandler := auth.NewHandler(auth.NewService(userSvc, tokens), validator)

	categorySvc := category.NewService(category.NewRepository(db.DB))
	videoSvc := video.NewService(video.NewRepository(db.DB), categorySvc)
	categoryHandler := category.NewHandler(categorySvc, videoSvc, validator)
	videoHandler := video.NewHandler(videoSvc, validator)

	siteSvc := siteconfig.NewService(
		siteconfig.NewRepository(db.DB),
		cfg.Site.DefaultContactEmail,
	)
	siteHandler := siteconfig.NewHandler(siteSvc, validator)

	notifier, err := newNotifier(cfg.SMTP)
	if err != nil {
		return err
	}
	contactSvc := contact.NewService(
		contact.NewRepository(db.DB),
		notifier,
		siteSvc,
		cfg.Site.DefaultContactEmail,
	)
	contactHandler := contact.NewHandler(contactSvc, validator)

	healthHandler := health.NewHandler(
		health.Dependency{Name: "database", Checker: db},
		health.Dependency{Name: "redis", Checker: redis},
	)

	adminHandler := admin.NewHandler(admin.HandlerConfig{
		Videos:         videoSvc.Count,
		Categories:     categorySvc.Count,
		Messages:       contactSvc.Count,
		UnreadMessages: contactSvc.CountUnread,
		DBStats:        db.Stats,
		RedisStats:     redis.PoolStats,
		DBPing:         db.Ping,
		RedisPing:      redis.Ping,
	})

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	trustedProxies, err := middleware.ParseProxies(cfg.Server.TrustedProxies)
	if err != nil {
		return err
	}

	router.Use(middleware.RequestID)
	router.Use(middleware.TrustedRealIP(trustedProxies))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recoverer)
	router.Use(
		middleware.NewRateLimiter(redis.Client, middleware.RateLimitConfig{
			Limit: middleware.PerWindow(
				cfg.RateLimit.Requests,
				cfg.RateLimit.Burst,
				cfg.RateLimit.Window,
			),
			FailOpen: true,
		}).Handler,
	)
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)

	router.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		core.OK(w, core.MessageResponse{Message: "video portfolio API"})
	})

	authenticator := middleware.Authenticator(tokens, userSvc)
	adminOnly := middleware.RequireAdmin

	router.Route("/api", func(r chi.Router) {
		authHandler.RegisterRoutes(r, authenticator)
		categoryHandler.RegisterRoutes(r, authenticator, adminOnly)
		videoHandler.RegisterRoutes(r, authenticator, adminOnly)
		contactHandler.RegisterRoutes(r, authenticator, adminOnly)
		siteHandler.RegisterRoutes(r, authenticator, adminOnly)
		adminHandler.RegisterRoutes(r, authenticator, adminOnly)
	})

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()
	healthHandler.SetReady(true)

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}

	if err := redis.Close(); err != nil {
		logger.Error("redis close error", "error", err)
	}

	if err := db.Close(); err != nil {
		logger.Error("database close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

// newNotifier returns an SMTP notifier when SMTP is configured and a no-op
// one otherwise.
func newNotifier(cfg config.SMTPConfig) (contact.Notifier, error) {
	if !cfg.Enabled() {
		slog.Info("smtp not configured, contact notifications disabled")
		return contact.NopNotifier{}, nil
	}

	notifier, err := contact.NewSMTPNotifier(cfg)
	if err != nil {
		return nil, err
	}

	slog.Info("smtp notifier initialized", "host", cfg.Host, "port", cfg.Port)
	return notifier, nil
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
