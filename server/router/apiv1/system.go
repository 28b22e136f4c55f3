package apiv1

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/scalexhq/chatgate/internal/version"
)

// modelDescriptions is keyed by provider id.
var modelDescriptions = map[string]string{
	"gemini": "Free tier - 60 requests per minute",
	"groq":   "Fast and efficient",
	"claude": "Thoughtful responses",
}

// Index lists every mounted endpoint so /api doubles as discovery.
func (s *APIV1Service) Index(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"message": "ScaleX Chatbot API",
		"version": version.GetCurrentVersion(s.Profile.Mode),
		"endpoints": map[string]string{
			"GET /api/health":            "Service and provider status",
			"GET /api/models":            "Available AI models",
			"POST /api/auth/signup":      "Create an account",
			"POST /api/auth/login":       "Log in",
			"POST /api/chat":             "Send a chat message",
			"GET /api/history/:email":    "Read chat history",
			"POST /api/history":          "Append a history entry",
			"DELETE /api/history/:email": "Clear chat history",
			"POST /api/summary":          "Summarize a conversation",
			"POST /api/translate":        "Translate text",
		},
	})
}

// Health reports per-provider availability alongside liveness.
func (s *APIV1Service) Health(c echo.Context) error {
	services := map[string]string{}
	for _, p := range s.Dispatcher.Providers() {
		status := "Not configured"
		if p.Configured {
			status = "Available"
		}
		services[p.ID] = status
	}

	return c.JSON(http.StatusOK, map[string]any{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"services":  services,
	})
}

type modelInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Available   bool   `json:"available"`
	Description string `json:"description"`
}

// Models describes the selectable providers and the fallback default.
func (s *APIV1Service) Models(c echo.Context) error {
	models := []modelInfo{}
	for _, p := range s.Dispatcher.Providers() {
		models = append(models, modelInfo{
			ID:          p.ID,
			Name:        p.Name,
			Available:   p.Configured,
			Description: modelDescriptions[p.ID],
		})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"models":  models,
		"default": s.Dispatcher.DefaultProvider(),
	})
}
