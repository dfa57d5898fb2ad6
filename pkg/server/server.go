// Package server exposes the citation extractor over HTTP.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/coolbeans/lawlink/pkg/citation"
)

// Server provides the detect, health and metrics endpoints.
type Server struct {
	echo      *echo.Echo
	extractor *citation.Extractor
	logger    *zap.Logger
	metrics   *Metrics
	config    *Config
}

// Config holds HTTP server configuration.
type Config struct {
	Host string
	Port int
}

// New creates the HTTP server around a ready extractor.
func New(extractor *citation.Extractor, logger *zap.Logger, cfg *Config) (*Server, error) {
	if extractor == nil {
		return nil, fmt.Errorf("extractor cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required for request tracking and debugging")
	}
	if cfg == nil {
		cfg = &Config{Host: "0.0.0.0", Port: 8978}
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			duration := time.Since(start)

			logger.Info("http request",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Int("status", c.Response().Status),
				zap.Duration("duration", duration),
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			)

			return err
		}
	})

	s := &Server{
		echo:      e,
		extractor: extractor,
		logger:    logger,
		metrics:   NewMetrics(),
		config:    cfg,
	}

	s.registerRoutes()

	return s, nil
}

// registerRoutes sets up the HTTP endpoints.
func (s *Server) registerRoutes() {
	s.echo.GET("/health", s.handleHealth)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := s.echo.Group("/api/v1")
	v1.POST("/detect", s.handleDetect)
}

// DetectRequest is the request body for POST /api/v1/detect.
type DetectRequest struct {
	Text string `json:"text"`
}

// DetectResponse is the response body for POST /api/v1/detect.
type DetectResponse struct {
	Links []citation.LawReference `json:"links"`
}

// HealthResponse is the response body for GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// handleHealth returns a simple health check response.
func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// handleDetect extracts legal references from the provided text.
func (s *Server) handleDetect(c echo.Context) error {
	var req DetectRequest
	if err := c.Bind(&req); err != nil {
		s.logger.Warn("invalid detect request", zap.Error(err))
		s.metrics.DetectRequests.WithLabelValues("bad_request").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Text == "" {
		s.metrics.DetectRequests.WithLabelValues("bad_request").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, "text field is required")
	}

	start := time.Now()
	links := s.safeExtract(req.Text)
	s.metrics.ExtractionDuration.Observe(time.Since(start).Seconds())
	s.metrics.DetectRequests.WithLabelValues("ok").Inc()
	s.metrics.ReferencesExtracted.Add(float64(len(links)))

	s.logger.Debug("extracted references",
		zap.Int("text_len", len(req.Text)),
		zap.Int("links", len(links)),
	)

	return c.JSON(http.StatusOK, DetectResponse{Links: links})
}

// safeExtract is the fallible boundary around the (total) core call: any
// panic is logged and converted into an empty result instead of a 500.
func (s *Server) safeExtract(text string) (links []citation.LawReference) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("extraction panic", zap.Any("panic", r))
			links = []citation.LawReference{}
		}
	}()
	return s.extractor.Extract(text)
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.logger.Info("starting http server", zap.String("addr", addr))
	return s.echo.Start(addr)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.echo.Shutdown(ctx)
}
