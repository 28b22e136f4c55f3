package apiv1

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/scalexhq/chatgate/store"
)

func (s *APIV1Service) GetHistory(c echo.Context) error {
	email := c.Param("email")

	history, err := s.Store.ListHistory(email)
	if err != nil {
		return notFoundOr500(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"history": history,
		"count":   len(history),
		"user":    email,
	})
}

type saveHistoryRequest struct {
	Email       string `json:"email"`
	UserMessage string `json:"userMessage"`
	AIResponse  string `json:"aiResponse"`
	Model       string `json:"model"`
	Language    string `json:"language"`
}

// SaveHistory lets a client append an entry it already holds, e.g. one
// produced while the server was unreachable.
func (s *APIV1Service) SaveHistory(c echo.Context) error {
	var req saveHistoryRequest
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, "Malformed request body")
	}

	if req.Email == "" || req.UserMessage == "" || req.AIResponse == "" {
		return jsonError(c, http.StatusBadRequest, "Email, userMessage and aiResponse are required")
	}
	if req.Language == "" {
		req.Language = "en"
	}

	entry := store.HistoryEntry{
		UserMessage: req.UserMessage,
		AIResponse:  req.AIResponse,
		Provider:    req.Model,
		Language:    req.Language,
		Timestamp:   time.Now().UTC(),
	}
	if err := s.Store.AppendHistory(req.Email, entry); err != nil {
		return notFoundOr500(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": "History saved",
	})
}

func (s *APIV1Service) ClearHistory(c echo.Context) error {
	email := c.Param("email")

	if err := s.Store.ClearHistory(email); err != nil {
		return notFoundOr500(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": "Chat history cleared",
		"user":    email,
	})
}
