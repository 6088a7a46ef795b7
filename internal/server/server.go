// Package server boots venuebook: config, database, cache, then the HTTP
// and gRPC listeners until the context is cancelled.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/shashiranjanraj/venuebook/config"
	"github.com/shashiranjanraj/venuebook/internal/kernel"
	"github.com/shashiranjanraj/venuebook/pkg/cache"
	"github.com/shashiranjanraj/venuebook/pkg/database"
	"github.com/shashiranjanraj/venuebook/pkg/grpc"
)

const shutdownTimeout = 5 * time.Second

// Start serves until ctx is done, then drains both servers.
func Start(ctx context.Context) error {
	if err := config.Load(); err != nil {
		return err
	}
	if err := database.Connect(); err != nil {
		return err
	}
	if err := cache.Connect(ctx); err != nil {
		slog.Warn("redis unavailable, flash messages disabled", "error", err)
	}

	k, err := kernel.NewHTTPKernel(database.DB)
	if err != nil {
		return err
	}

	grpcSrv, _, err := grpc.Start(config.GRPCPort(), database.Ping)
	if err != nil {
		return err
	}
	defer grpc.Stop(grpcSrv)

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           k.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("venuebook listening", "addr", srv.Addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}
