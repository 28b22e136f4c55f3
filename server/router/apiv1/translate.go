package apiv1

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

type translateRequest struct {
	Text string `json:"text"`
	From string `json:"from"`
	To   string `json:"to"`
}

func (s *APIV1Service) Translate(c echo.Context) error {
	var req translateRequest
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, "Malformed request body")
	}

	if strings.TrimSpace(req.Text) == "" {
		return jsonError(c, http.StatusBadRequest, "Text is required")
	}
	if req.From == "" {
		req.From = "auto"
	}
	if req.To == "" {
		req.To = "ar"
	}

	translated := s.Dispatcher.Translate(c.Request().Context(), req.Text, req.From, req.To)

	return c.JSON(http.StatusOK, map[string]any{
		"original":        req.Text,
		"translated_text": translated,
		"from":            req.From,
		"to":              req.To,
		"timestamp":       time.Now().UTC().Format(time.RFC3339),
	})
}
