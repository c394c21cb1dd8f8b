package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/maardu-realty/internal/api"
	"github.com/donaldgifford/maardu-realty/internal/config"
	"github.com/donaldgifford/maardu-realty/internal/observability"
	"github.com/donaldgifford/maardu-realty/internal/portal"
	"github.com/donaldgifford/maardu-realty/internal/session"
	"github.com/donaldgifford/maardu-realty/pkg/logger"
)

const (
	shutdownTimeout   = 30 * time.Second
	readHeaderTimeout = 10 * time.Second
	startupRefresh    = 30 * time.Second
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and scheduler",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	slog.SetDefault(log)

	ctx := cmd.Context()

	shutdownTelemetry, err := observability.Setup(ctx, observability.Config{
		Endpoint:       cfg.Tracing.Endpoint,
		ServiceName:    cfg.Tracing.ServiceName,
		ServiceVersion: Version,
		SampleRatio:    cfg.Tracing.SampleRatio,
		MetricInterval: cfg.Tracing.MetricInterval,
	}, log)
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(flushCtx); err != nil {
			log.Warn("telemetry shutdown failed", "error", err)
		}
	}()

	a, err := newApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.close()

	refreshCtx, cancel := context.WithTimeout(ctx, startupRefresh)
	if n, err := a.listings.Refresh(refreshCtx); err != nil {
		log.Warn("initial listings refresh failed; serving an empty cache until the next refresh", "error", err)
	} else {
		log.Info("listings loaded", "count", n)
	}
	cancel()

	app := portal.New(a.listings, a.pipeline,
		portal.WithLogger(log),
		portal.WithExpirations(a.scheduler),
		portal.WithRunTimeout(cfg.Pipeline.RunTimeout),
	)

	server := api.NewServer(api.Deps{
		Portal:   app,
		Jobs:     a.store,
		DB:       a.store,
		Listings: a.listings,
		Auth:     session.NewAuthenticator([]byte(cfg.Session.JWTSecret), cfg.Session.Issuer),
		Log:      log,
		Version:  Version,
	})

	httpServer := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           server.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      writeTimeout(cfg),
	}

	a.scheduler.Start()

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", "addr", httpServer.Addr, "version", Version)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		log.Info("shutting down")
	case serveErr = <-errCh:
		log.Error("server error", "error", serveErr)
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown failed", "error", err)
	}

	select {
	case <-a.scheduler.Stop().Done():
	case <-shutdownCtx.Done():
		log.Warn("scheduler jobs still running at shutdown deadline")
	}

	log.Info("server stopped")
	return serveErr
}

// writeTimeout leaves room for a payment run to finish before the server
// cuts off the response.
func writeTimeout(cfg *config.Config) time.Duration {
	minimum := cfg.Pipeline.RunTimeout + 10*time.Second
	if cfg.Server.WriteTimeout < minimum {
		return minimum
	}
	return cfg.Server.WriteTimeout
}
