// cmd/backoffice-server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"recruit-backoffice/internal/calendar"
	"recruit-backoffice/internal/common/auth"
	"recruit-backoffice/internal/common/config"
	"recruit-backoffice/internal/common/database"
	httpclient "recruit-backoffice/internal/common/http"
	"recruit-backoffice/internal/common/logger"
	"recruit-backoffice/internal/common/observability"
	"recruit-backoffice/internal/common/validation"
	"recruit-backoffice/internal/handoff"
	"recruit-backoffice/internal/invoice"
	"recruit-backoffice/internal/jobopening"
	"recruit-backoffice/internal/notify"
	"recruit-backoffice/internal/scoring"
	"recruit-backoffice/internal/server"
	"recruit-backoffice/internal/vendor"
	"recruit-backoffice/pkg/registry"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("starting backoffice server",
		zap.String("app", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	// --- Redis with retry ---
	redisClient, err := database.NewRedis(cfg.Redis)
	if err != nil {
		zapLog.Fatal("redis client init failed", zap.Error(err))
	}
	defer redisClient.Close()

	err = retryWithBackoff(func() error {
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		return redisClient.Ping(pingCtx)
	}, 10, 2*time.Second, zapLog, "Redis connection")
	if err != nil {
		zapLog.Fatal("redis unreachable", zap.Error(err))
	}

	// --- Upstream REST client ---
	var tokens httpclient.TokenSource
	if cfg.Upstream.Auth.TokenURL != "" {
		tokens = auth.NewTokenClient(cfg.Upstream.Auth.TokenURL, cfg.Upstream.Auth.ClientID, cfg.Upstream.Auth.ClientSecret)
	}
	rest := httpclient.NewRESTClient(cfg.Upstream.BaseURL, time.Duration(cfg.Upstream.Timeout)*time.Millisecond, tokens)

	// --- Lookup data ---
	reg := registry.LoadOrDefault(cfg.Calendar.RegistryPath)
	v := validation.New()

	// --- Domain services ---
	calendarSvc := calendar.NewService(rest, redisClient,
		calendar.NewAggregator(reg),
		time.Duration(cfg.Calendar.CacheTTL)*time.Second, log)
	broadcaster := notify.NewBroadcaster(redisClient, cfg.Calendar.RefreshChannel, log)

	deps := server.Deps{
		Scoring:  scoring.NewService(rest, scoring.NewEngine(reg.Rubric), log),
		Calendar: calendarSvc,
		Invoices: invoice.NewService(rest, invoice.NewCalculator(cfg.Invoice), v, log),
		Jobs:     jobopening.NewService(rest, log),
		Vendors:  vendor.NewService(rest, v, log),
		Handoff:  handoff.NewStore(redisClient, time.Duration(cfg.Handoff.TTL)*time.Second, log),
		Notify:   broadcaster,
		Probes: map[string]server.Probe{
			"redis":    redisClient.Ping,
			"upstream": upstreamProbe(cfg.Upstream.BaseURL),
		},
		Obs:    obs,
		Logger: log,
	}
	srv := server.New(deps)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Refresh triggers from other instances invalidate the month cache.
	go broadcaster.Listen(ctx, calendarSvc.InvalidateAll)

	apiServer := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      srv.Handler(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Millisecond,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Millisecond,
	}
	debugServer := &http.Server{
		Addr:    cfg.Server.DebugAddr(),
		Handler: srv.DebugHandler(),
	}

	go func() {
		zapLog.Info("debug server listening", zap.String("addr", debugServer.Addr))
		if err := debugServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Error("debug server failed", zap.Error(err))
		}
	}()

	go func() {
		zapLog.Info("api server listening", zap.String("addr", apiServer.Addr))
		if err := apiServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("api server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zapLog.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Millisecond)
	defer cancel()

	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("api server shutdown failed", zap.Error(err))
	}
	if err := debugServer.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("debug server shutdown failed", zap.Error(err))
	}

	zapLog.Info("backoffice server stopped")
}

// upstreamProbe reports whether the ATS backend answers at all. Any HTTP
// response counts as reachable; the status does not matter for liveness.
func upstreamProbe(baseURL string) server.Probe {
	client := &http.Client{Timeout: 2 * time.Second}
	return func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodHead, baseURL, nil)
		if err != nil {
			return err
		}
		resp, err := client.Do(req)
		if err != nil {
			return err
		}
		resp.Body.Close()
		return nil
	}
}
