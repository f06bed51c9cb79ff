// Package server assembles the HTTP handler and owns the listen/serve
// lifecycle, including graceful shutdown.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shashiranjanraj/slopestock/app/routes"
	"github.com/shashiranjanraj/slopestock/app/services"
	"github.com/shashiranjanraj/slopestock/config"
	"github.com/shashiranjanraj/slopestock/pkg/logger"
	"github.com/shashiranjanraj/slopestock/pkg/metrics"
	"github.com/shashiranjanraj/slopestock/pkg/middleware"
	"github.com/shashiranjanraj/slopestock/pkg/reqid"
	"github.com/shashiranjanraj/slopestock/pkg/router"
)

// NewHandler builds the full HTTP handler: global middleware stack plus the
// catalog routes.
//
// Middleware ordering (outermost → innermost):
//  1. Prometheus metrics — outermost for accurate total latency
//  2. Recovery           — catches panics before they kill the goroutine
//  3. Request ID         — inject unique ID before anything logs
//  4. Logger             — logs request_id from context
//  5. CORS               — set CORS headers
//  6. Rate limiter       — reject abusers early
func NewHandler(service *services.ProductService) http.Handler {
	r := router.New()

	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))
	r.Use(middleware.RateLimit(200, time.Minute))

	routes.RegisterAPI(r, service)

	return r.Handler()
}

// Start serves handler on the configured port and blocks until SIGINT or
// SIGTERM, then drains in-flight requests for up to 10 seconds.
func Start(handler http.Handler) error {
	addr := ":" + config.AppPort()

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return err
	}

	logger.Close()
	return nil
}
