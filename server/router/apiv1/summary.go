package apiv1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/scalexhq/chatgate/ai/summary"
)

type summaryRequest struct {
	Email    string   `json:"email"`
	Messages []string `json:"messages"`
	Model    string   `json:"model"`
}

// Summary condenses a conversation, either by email lookup or from an
// inline message list.
func (s *APIV1Service) Summary(c echo.Context) error {
	var req summaryRequest
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, "Malformed request body")
	}

	if req.Email == "" && len(req.Messages) == 0 {
		return jsonError(c, http.StatusBadRequest, "Either email or messages array is required")
	}

	started := time.Now()
	resp, err := s.Summarizer.Summarize(c.Request().Context(), &summary.Request{
		Email:    req.Email,
		Messages: req.Messages,
		Provider: req.Model,
	})
	if err != nil {
		return notFoundOr500(c, err)
	}
	elapsed := time.Since(started)

	return c.JSON(http.StatusOK, map[string]any{
		"summary":      resp.Summary,
		"messageCount": resp.MessageCount,
		"generatedAt":  time.Now().UTC().Format(time.RFC3339),
		"model":        resp.Provider,
		"responseTime": fmt.Sprintf("%dms", elapsed.Milliseconds()),
	})
}
