// Package api exposes the DriveNeutral engine over HTTP using gin.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/driveneutral/driveneutral/internal/config"
	"github.com/driveneutral/driveneutral/internal/engine"
	"github.com/driveneutral/driveneutral/internal/logging"
)

// Server serves the DriveNeutral HTTP API.
type Server struct {
	cfg    *config.Config
	engine *engine.Engine
	logger zerolog.Logger
	router *gin.Engine
}

// NewServer builds a Server with its routes registered.
func NewServer(cfg *config.Config, eng *engine.Engine, logger zerolog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		cfg:    cfg,
		engine: eng,
		logger: logging.ComponentLogger(logger, "api"),
		router: gin.New(),
	}
	s.router.Use(gin.Recovery(), s.requestLogger())
	s.registerRoutes()
	return s
}

// Router exposes the underlying gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", srv.Addr).Msg("http server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) registerRoutes() {
	api := s.router.Group("/api/v1")

	api.GET("/health", s.handleHealth)
	api.GET("/vehicles/compare", s.handleCompare)
	api.GET("/vehicles/eco", s.handleEco)
	api.GET("/vehicles/ev", s.handleEV)
	api.GET("/costs", s.handleCosts)
	api.GET("/insights", s.handleInsights)
	api.GET("/pricing/onroad", s.handleOnRoad)
	api.GET("/tip", s.handleTip)
}

// requestLogger attaches a trace-ID-tagged logger to the request
// context and logs each request on completion.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		ctx := c.Request.Context()
		traceID := logging.GetOrGenerateTraceID(ctx)
		ctx = logging.ContextWithTraceID(ctx, traceID)

		reqLogger := s.logger.With().Str("trace_id", traceID).Logger()
		c.Request = c.Request.WithContext(reqLogger.WithContext(ctx))

		c.Next()

		reqLogger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}
