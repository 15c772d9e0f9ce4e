// Package server exposes the record checks over HTTP.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/ccollicutt/flightcheck/internal/ctxlog"
	"github.com/ccollicutt/flightcheck/pkg/record"
	"github.com/ccollicutt/flightcheck/pkg/session"
	"github.com/ccollicutt/flightcheck/pkg/store"
)

// maxBodySize bounds request bodies, including uploaded batches.
const maxBodySize = "10M"

// Dependencies holds everything the handlers need.
type Dependencies struct {
	Store   *store.Store
	Parser  record.Parser
	Logger  *slog.Logger
	Version string
}

// Server is the HTTP front end.
type Server struct {
	echo    *echo.Echo
	store   *store.Store
	parser  record.Parser
	session *session.Session
	logger  *slog.Logger
	version string
}

// New creates a server with all routes registered.
func New(deps Dependencies) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = ctxlog.FromContext(context.Background())
	}

	s := &Server{
		echo:    echo.New(),
		store:   deps.Store,
		parser:  deps.Parser,
		session: session.New(),
		logger:  logger,
		version: deps.Version,
	}

	e := s.echo
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(maxBodySize))
	e.Use(s.requestLogger)

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	e := s.echo
	e.GET("/health", s.handleHealth)

	api := e.Group("/api")
	api.POST("/check", s.handleCheck)
	api.POST("/validate/flight", s.handleValidateFlight)
	api.POST("/validate/computer", s.handleValidateComputer)
	api.POST("/analyze", s.handleAnalyze)

	records := api.Group("/records")
	records.GET("", s.handleListRecords)
	records.POST("", s.handleAppendRecord)
	records.GET("/last", s.handleLastRecord)
}

// Handler returns the server as an http.Handler.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- s.echo.Start(addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.echo.Shutdown(shutdownCtx)
	}
}

// requestLogger carries the logger into each request context and logs the
// outcome.
func (s *Server) requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		req := c.Request()
		c.SetRequest(req.WithContext(ctxlog.WithLogger(req.Context(), s.logger)))

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		s.logger.Debug("request",
			"method", req.Method,
			"path", c.Path(),
			"status", c.Response().Status,
			"duration", time.Since(start))
		return nil
	}
}
