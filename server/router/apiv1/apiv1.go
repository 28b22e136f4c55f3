// Package apiv1 contains the JSON REST handlers. It is a thin boundary:
// request validation and status-code mapping live here, the interesting
// control flow lives in ai, ai/summary, and store.
package apiv1

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/scalexhq/chatgate/ai"
	"github.com/scalexhq/chatgate/ai/metrics"
	"github.com/scalexhq/chatgate/ai/summary"
	"github.com/scalexhq/chatgate/internal/profile"
	"github.com/scalexhq/chatgate/store"
)

type APIV1Service struct {
	Profile    *profile.Profile
	Store      *store.Store
	Dispatcher *ai.Dispatcher
	Summarizer *summary.Summarizer
	Exporter   *metrics.PrometheusExporter
}

func NewAPIV1Service(
	profile *profile.Profile,
	store *store.Store,
	dispatcher *ai.Dispatcher,
	summarizer *summary.Summarizer,
	exporter *metrics.PrometheusExporter,
) *APIV1Service {
	return &APIV1Service{
		Profile:    profile,
		Store:      store,
		Dispatcher: dispatcher,
		Summarizer: summarizer,
		Exporter:   exporter,
	}
}

// RegisterRoutes wires all handlers onto the echo instance.
func (s *APIV1Service) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.GET("", s.Index)
	api.GET("/health", s.Health)
	api.GET("/models", s.Models)

	api.POST("/auth/signup", s.Signup)
	api.POST("/auth/login", s.Login)

	api.POST("/chat", s.Chat)

	api.GET("/history/:email", s.GetHistory)
	api.POST("/history", s.SaveHistory)
	api.DELETE("/history/:email", s.ClearHistory)

	api.POST("/summary", s.Summary)
	api.POST("/translate", s.Translate)

	e.GET("/metrics", echo.WrapHandler(s.Exporter.Handler()))
}

// errorResponse is the uniform error body.
type errorResponse struct {
	Error string `json:"error"`
}

func jsonError(c echo.Context, code int, message string) error {
	return c.JSON(code, errorResponse{Error: message})
}

// notFoundOr500 maps store errors onto HTTP status codes.
func notFoundOr500(c echo.Context, err error) error {
	if errors.Is(err, store.ErrUserNotFound) {
		return jsonError(c, http.StatusNotFound, "User not found")
	}
	return jsonError(c, http.StatusInternalServerError, "Internal server error")
}
