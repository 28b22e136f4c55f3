// Package server assembles the HTTP surface: echo instance, middleware
// stack, and the API v1 routes.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/scalexhq/chatgate/ai"
	"github.com/scalexhq/chatgate/ai/metrics"
	"github.com/scalexhq/chatgate/ai/summary"
	"github.com/scalexhq/chatgate/internal/profile"
	"github.com/scalexhq/chatgate/server/router/apiv1"
	"github.com/scalexhq/chatgate/store"
)

type Server struct {
	Profile *profile.Profile
	Store   *store.Store

	echoServer *echo.Echo
	dispatcher *ai.Dispatcher
}

func NewServer(ctx context.Context, profile *profile.Profile, store *store.Store) (*Server, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		Profile:    profile,
		Store:      store,
		echoServer: e,
	}

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("1M"))
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string {
			return uuid.New().String()
		},
	}))

	exporter := metrics.NewPrometheusExporter(metrics.DefaultConfig())
	s.dispatcher = ai.NewDispatcher(ai.NewConfigFromProfile(profile), exporter)
	summarizer := summary.NewSummarizer(s.dispatcher, store)

	apiV1Service := apiv1.NewAPIV1Service(profile, store, s.dispatcher, summarizer, exporter)
	apiV1Service.RegisterRoutes(e)

	e.RouteNotFound("/*", func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, map[string]any{
			"error":   "Endpoint not found",
			"message": fmt.Sprintf("Route %s does not exist. Check /api for available endpoints.", c.Request().URL.Path),
		})
	})

	return s, nil
}

func (s *Server) Start(ctx context.Context) error {
	address := fmt.Sprintf("%s:%d", s.Profile.Addr, s.Profile.Port)
	slog.Info("server started", "address", address, "default_provider", s.dispatcher.DefaultProvider())
	return s.echoServer.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := s.echoServer.Shutdown(ctx); err != nil {
		slog.Error("failed to shutdown server", "error", err)
	}

	slog.Info("server shutdown complete")
}
