package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lenscout/lenscout-cli/internal/core/domain"
	"github.com/lenscout/lenscout-cli/internal/logger"
)

func (s *Server) handleHealth(c *gin.Context) {
	health := gin.H{
		"status":  "ok",
		"uptime":  time.Since(s.started).Round(time.Second).String(),
		"exif_ok": s.exif != nil,
	}

	if stats, err := s.catalog.Stats(c.Request.Context()); err == nil {
		health["lenses"] = stats.Lenses
		health["example_sets"] = stats.ExampleSets
	}

	c.JSON(http.StatusOK, health)
}

func (s *Server) handleBrands(c *gin.Context) {
	brands, err := s.catalog.Brands(c.Request.Context())
	if err != nil {
		s.fail(c, "list brands", err)
		return
	}
	if brands == nil {
		brands = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"brands": brands})
}

func (s *Server) handleLenses(c *gin.Context) {
	brand := c.Query("brand")
	focal, err := strconv.Atoi(c.Query("focal"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "focal must be an integer number of millimetres"})
		return
	}

	rows, err := s.catalog.Query(c.Request.Context(), brand, focal)
	if err != nil {
		s.fail(c, "query lenses", err)
		return
	}
	if rows == nil {
		rows = []domain.LensRow{}
	}

	c.Header("X-Lens-Count", strconv.Itoa(len(rows)))
	c.JSON(http.StatusOK, gin.H{"lenses": rows, "count": len(rows)})
}

func (s *Server) handleExif(c *gin.Context) {
	if s.exif == nil {
		s.fail(c, "exif report", domain.ErrAPIKeyMissing)
		return
	}

	report, err := s.exif.Report(c.Request.Context(), c.Param("keyword"))
	if err != nil {
		s.fail(c, "exif report", err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// fail maps an error to a status code and JSON body.
func (s *Server) fail(c *gin.Context, op string, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "operation", op, "error", err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAPIKeyMissing):
		return http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrFetch):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
