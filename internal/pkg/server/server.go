package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/propline/adminauth/internal/pkg/logger"
)

const shutdownTimeout = 30 * time.Second

// GracefulServer runs an Echo instance and drains it on SIGINT/SIGTERM.
type GracefulServer struct {
	echo   *echo.Echo
	logger *logger.ZapLogger
	port   int
}

// NewGracefulServer creates a server that shuts down cleanly on signals
func NewGracefulServer(e *echo.Echo, zapLogger *logger.ZapLogger, port int) *GracefulServer {
	return &GracefulServer{echo: e, logger: zapLogger, port: port}
}

// Start serves until an interrupt or termination signal arrives, then drains
func (s *GracefulServer) Start() error {
	errCh := make(chan error, 1)

	go func() {
		addr := fmt.Sprintf(":%d", s.port)
		s.logger.Info("HTTP server listening", logger.String("address", addr))

		if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-quit:
		s.logger.Info("Shutdown signal received", logger.String("signal", sig.String()))
	}

	return s.Shutdown()
}

// Shutdown drains in-flight requests within the shutdown timeout
func (s *GracefulServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.echo.Shutdown(ctx); err != nil {
		s.logger.Error("Forced shutdown", logger.Err(err))
		return err
	}

	s.logger.Info("Server stopped")
	return nil
}
