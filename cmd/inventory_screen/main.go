package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/pos_inventory_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_inventory_app/internal/core/ports/repositories"
	"github.com/SscSPs/pos_inventory_app/internal/core/services"
	"github.com/SscSPs/pos_inventory_app/internal/handlers"
	"github.com/SscSPs/pos_inventory_app/internal/middleware"
	"github.com/SscSPs/pos_inventory_app/internal/platform/config"
	"github.com/SscSPs/pos_inventory_app/internal/platform/tracing"
	"github.com/SscSPs/pos_inventory_app/internal/repositories/kv"
	"github.com/SscSPs/pos_inventory_app/internal/repositories/rpc"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// logStatusReporter writes every status tuple to the process log.
type logStatusReporter struct {
	logger *slog.Logger
}

func (r logStatusReporter) Report(msg domain.StatusMessage) {
	attrs := []any{
		slog.String("scope", string(msg.Scope)),
		slog.String("message", msg.Message),
	}
	if msg.RowID != 0 {
		attrs = append(attrs, slog.Int64("item_id", msg.RowID))
	}
	if msg.IsError {
		r.logger.Warn("Screen status", attrs...)
		return
	}
	r.logger.Info("Screen status", attrs...)
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, "inventory-screen", cfg.OTLPEndpoint)
	if err != nil {
		logger.Error("Failed to initialize tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	settings := newSettingsStore(ctx, cfg, logger)

	channel := rpc.NewHTTPChannel(cfg.BridgeURL, &http.Client{Timeout: cfg.BridgeTimeout})
	inventory := rpc.NewInventoryRepository(channel)

	screens := services.NewScreenContainer(ctx, settings, inventory, cfg.ScreenIsAdmin,
		services.WithStatusReporter(logStatusReporter{logger: logger}),
		services.WithSaveLogger(logger),
	)
	defer screens.Screen.Close()

	if err := screens.Screen.Load(ctx); err != nil {
		// The screen stays up in the load-error state; a reload can recover it.
		logger.Warn("Initial inventory load failed", slog.String("error", err.Error()))
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		corsMiddleware(cfg.CORSAllowedOrigins),
		middleware.Tracing(),
		middleware.Metrics(),
	)
	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterScreenRoutes(r, screens)

	srv := &http.Server{
		Addr:              ":" + cfg.ScreenPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info("Screen server starting",
			slog.String("port", cfg.ScreenPort),
			slog.Bool("admin", cfg.ScreenIsAdmin),
			slog.String("bridge_url", cfg.BridgeURL))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down screen server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("Tracing shutdown failed", slog.String("error", err.Error()))
	}
}

// newSettingsStore returns a Redis-backed store when REDIS_ADDR is set, else an in-process one.
func newSettingsStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) portsrepo.SettingsStoreFacade {
	if cfg.RedisAddr == "" {
		logger.Info("REDIS_ADDR not set, rate settings are kept in memory")
		return kv.NewMemorySettingsStore()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		// Reads and writes still go to Redis; the rate store keeps values in memory while it is down.
		logger.Warn("Redis unreachable at startup", slog.String("addr", cfg.RedisAddr), slog.String("error", err.Error()))
	}
	return kv.NewRedisSettingsStore(client)
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	if len(origins) == 0 {
		return cors.Default()
	}
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = origins
	return cors.New(corsCfg)
}
