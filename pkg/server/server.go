// Package server exposes the bucket store over HTTP. The surface is thin:
// request-shape validation and JSON plumbing only, with all semantics in the
// pairs package.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"aidememoire/pkg/log"
	"aidememoire/pkg/pairs"
)

const shutdownTimeout = 10 * time.Second

// Server is the HTTP front end over a pairs repository.
type Server struct {
	echo *echo.Echo
	repo pairs.Repository
}

// New creates a server for the given repository.
func New(repo pairs.Repository) *Server {
	return &Server{
		echo: echo.New(),
		repo: repo,
	}
}

// Start runs the server until SIGINT/SIGTERM, then shuts down gracefully.
func (srv *Server) Start(addr string) error {
	srv.setupRoutes()

	go func() {
		log.Info().Str("addr", addr).Msg("Starting pairs server")

		if err := srv.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server startup failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	return srv.Shutdown()
}

// Shutdown stops the server gracefully.
func (srv *Server) Shutdown() error {
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.echo.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
		return err
	}

	log.Info().Msg("Server gracefully stopped")
	return nil
}

func (srv *Server) setupRoutes() {
	// Echo configuration
	srv.echo.HideBanner = true
	srv.echo.HidePort = true
	srv.echo.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} ${status} ${method} ${uri} (${latency_human})\n",
	}))
	srv.echo.Use(middleware.Recover())

	// Pair operations
	srv.echo.POST("/api/pairs", srv.addPair)
	srv.echo.GET("/api/pairs/random", srv.getRandomPairFromDefault)
	srv.echo.GET("/api/buckets/:bucket/pairs", srv.getAllPairs)
	srv.echo.GET("/api/buckets/:bucket/pairs/random", srv.getRandomPair)
	srv.echo.POST("/api/buckets/:bucket/pairs/bulk", srv.bulkUpload)
	srv.echo.PUT("/api/buckets/:bucket/pairs", srv.updatePair)
	srv.echo.DELETE("/api/buckets/:bucket/pairs", srv.deletePair)

	// Bucket operations
	srv.echo.GET("/api/buckets", srv.listBuckets)
	srv.echo.POST("/api/buckets", srv.createBucket)
	srv.echo.DELETE("/api/buckets/:bucket", srv.deleteBucket)
	srv.echo.POST("/api/buckets/:bucket/rename", srv.renameBucket)

	// Default bucket pointer
	srv.echo.GET("/api/default-bucket", srv.getDefaultBucket)
	srv.echo.PUT("/api/default-bucket", srv.setDefaultBucket)

	// Audio assets
	srv.echo.GET("/api/buckets/:bucket/audio/:audioId", srv.getAudio)
}
