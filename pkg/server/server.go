package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"reelsmith/pkg/analysis"
	"reelsmith/pkg/ratelimit"
	"reelsmith/pkg/schema"
	"reelsmith/pkg/tiktok"
	"reelsmith/pkg/utils"
)

type Server struct {
	Echo     *echo.Echo
	Analyzer *analysis.Analyzer
	Limiter  ratelimit.Limiter
	TikTok   tiktok.Publisher
	Ctx      context.Context
}

func NewServer(ctx context.Context, analyzer *analysis.Analyzer, limiter ratelimit.Limiter, publisher tiktok.Publisher) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Logger())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())

	s := &Server{
		Echo:     e,
		Analyzer: analyzer,
		Limiter:  limiter,
		TikTok:   publisher,
		Ctx:      ctx,
	}

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.Echo.GET("/", s.handleGetRoot)

	api := s.Echo.Group("/api", s.rateLimit)
	api.POST("/analyze", s.handlePostAnalyze)
	api.POST("/enhance", s.handlePostEnhance)

	api.GET("/tiktok/connect", s.handleGetTikTokConnect)
	api.POST("/tiktok/publish", s.handlePostTikTokPublish)
}

// rateLimit gates every API call by client IP. Denied requests get a
// Retry-After hint; the body keeps the standard error shape so the
// frontend shows it without retry-looping.
func (s *Server) rateLimit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if s.Limiter == nil {
			return next(c)
		}
		ok, retryAfter := s.Limiter.Allow(c.RealIP())
		if !ok {
			rlErr := &schema.RateLimitError{RetryAfter: retryAfter}
			seconds := int(retryAfter.Seconds()) + 1
			c.Response().Header().Set("Retry-After", fmt.Sprintf("%d", seconds))
			return c.JSON(http.StatusTooManyRequests, utils.ErrJSON(rlErr.Error()))
		}
		return next(c)
	}
}

func (s *Server) Start(addr string) error {
	log.Info("server listening", "addr", addr)
	return s.Echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	log.Info("shutting down server")
	return s.Echo.Shutdown(ctx)
}
