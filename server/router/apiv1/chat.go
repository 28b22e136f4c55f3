package apiv1

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/scalexhq/chatgate/store"
)

type chatRequest struct {
	Message  string `json:"message"`
	Model    string `json:"model"`
	Language string `json:"language"`
	Email    string `json:"email"`
}

// Chat answers a message with the requested provider, falling through the
// cascade when it fails. The handler always returns 200 with some answer;
// degraded paths are visible through the "model" field, never as errors.
func (s *APIV1Service) Chat(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, "Malformed request body")
	}

	if strings.TrimSpace(req.Message) == "" {
		return jsonError(c, http.StatusBadRequest, "Message is required")
	}
	if req.Language == "" {
		req.Language = "en"
	}

	started := time.Now()
	result := s.Dispatcher.Dispatch(c.Request().Context(), req.Model, req.Message, req.Language)
	elapsed := time.Since(started)

	// History is best effort: anonymous chats just skip the append.
	if req.Email != "" {
		entry := store.HistoryEntry{
			UserMessage:    req.Message,
			AIResponse:     result.Text,
			Provider:       result.Provider,
			Language:       req.Language,
			Timestamp:      time.Now().UTC(),
			ResponseTimeMs: elapsed.Milliseconds(),
		}
		if err := s.Store.AppendHistory(req.Email, entry); err != nil && !errors.Is(err, store.ErrUserNotFound) {
			slog.Error("failed to append chat history", "email", req.Email, "err", err)
		}
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message":      result.Text,
		"model":        result.Provider,
		"language":     req.Language,
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
		"responseTime": fmt.Sprintf("%dms", elapsed.Milliseconds()),
	})
}
