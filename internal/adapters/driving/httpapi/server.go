// Package httpapi serves the lens catalog and EXIF reports as a JSON API.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lenscout/lenscout-cli/internal/core/ports/driving"
	"github.com/lenscout/lenscout-cli/internal/logger"
)

// ErrMissingCatalogService is returned when the catalog service is not provided.
var ErrMissingCatalogService = errors.New("httpapi: catalog service is required")

// Server is the JSON API over the catalog and EXIF services.
type Server struct {
	catalog driving.CatalogService
	exif    driving.ExifService
	engine  *gin.Engine
	started time.Time
}

// NewServer builds the router. exif may be nil, in which case
// /exif answers 503.
func NewServer(catalog driving.CatalogService, exif driving.ExifService) (*Server, error) {
	if catalog == nil {
		return nil, ErrMissingCatalogService
	}

	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		catalog: catalog,
		exif:    exif,
		engine:  gin.New(),
		started: time.Now(),
	}

	s.engine.Use(requestLogger(), gin.Recovery())
	s.routes()

	return s, nil
}

func (s *Server) routes() {
	s.engine.GET("/health", s.handleHealth)
	s.engine.GET("/brands", s.handleBrands)
	s.engine.GET("/lenses", s.handleLenses)
	s.engine.GET("/exif/:keyword", s.handleExif)
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx) //nolint:errcheck
	}()

	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// requestLogger logs each request through the application logger.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client", c.ClientIP(),
		)
	}
}
