package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

const defaultShutdownTimeout = 10 * time.Second

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	// ShutdownTimeout bounds how long in-flight requests may drain. Zero means 10s.
	ShutdownTimeout time.Duration
}

// StartHTTPServer serves handler until SIGINT or SIGTERM, then drains
// in-flight requests. It returns early with an error when the listener fails.
func StartHTTPServer(
	handler http.Handler,
	cfg ServerConfig,
	auditLogger AuditLogger,
	logger ...*zap.Logger,
) error {
	log := zap.L().Named("http.server")
	if len(logger) > 0 && logger[0] != nil {
		log = logger[0].Named("http.server")
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	auditLogger.Log(context.Background(), AuditLog{
		Action:  "SERVER_START",
		Message: "Payroll API is starting",
		Meta:    map[string]any{"port": cfg.Port},
	})

	listenErr := make(chan error, 1)
	go func() {
		log.Info("payroll API listening", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-listenErr:
		auditLogger.Log(context.Background(), AuditLog{
			Action:  "SERVER_FAILED",
			Message: "Payroll API could not serve",
			Meta:    map[string]any{"port": cfg.Port, "error": err.Error()},
		})
		return fmt.Errorf("listen on :%s: %w", cfg.Port, err)
	case sig := <-quit:
		log.Info("shutdown signal received", zap.String("signal", sig.String()))
		auditLogger.Log(context.Background(), AuditLog{
			Action:  "SERVER_SHUTDOWN",
			Message: "Payroll API is shutting down",
			Meta:    map[string]any{"signal": sig.String()},
		})
	}

	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("payroll API stopped")
	return nil
}
