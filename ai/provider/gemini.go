package provider

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const (
	geminiID    = "gemini"
	geminiModel = "gemini-2.5-flash"

	geminiMaxOutputTokens = 1000
	geminiTemperature     = 0.7
)

const (
	geminiSystemPromptDefault = "You are a helpful assistant. Provide clear, concise responses."
	geminiSystemPromptArabic  = "أنت مساعد مفيد. قم بالرد باللغة العربية بلغة واضحة ومناسبة."
)

// GeminiAdapter calls the Google Generative Language API. Gemini has no
// separate system role in this request shape; the system prompt is prepended
// to the user turn, matching the existing wire format.
type GeminiAdapter struct {
	client *genai.Client
	apiKey string
}

// NewGemini creates a Gemini adapter authenticated by API key.
func NewGemini(apiKey string) *GeminiAdapter {
	a := &GeminiAdapter{apiKey: apiKey}
	if apiKey == "" {
		return a
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		// The adapter stays registered but degrades like an unconfigured one.
		slog.Error("gemini: failed to create client", "error", err)
		return a
	}
	a.client = client
	return a
}

func (a *GeminiAdapter) ID() string { return geminiID }

func (a *GeminiAdapter) Name() string { return "Google Gemini Pro" }

func (a *GeminiAdapter) Configured() bool { return a.apiKey != "" && a.client != nil }

func (a *GeminiAdapter) Invoke(ctx context.Context, prompt, language string) (*Result, error) {
	if !a.Configured() {
		return nil, NewError(geminiID, ErrorKindNotConfigured, "Gemini not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, CallTimeout*time.Second)
	defer cancel()

	systemPrompt := geminiSystemPromptDefault
	if language == "ar" {
		systemPrompt = geminiSystemPromptArabic
	}

	model := a.client.GenerativeModel(geminiModel)
	model.SetMaxOutputTokens(geminiMaxOutputTokens)
	model.SetTemperature(geminiTemperature)

	resp, err := model.GenerateContent(ctx, genai.Text(systemPrompt+"\n\nUser: "+prompt))
	if err != nil {
		return nil, a.classify(err)
	}

	text, ok := firstCandidateText(resp)
	if !ok {
		return nil, NewError(geminiID, ErrorKindBadResponseShape, "invalid response format from Gemini API")
	}

	return &Result{Text: strings.TrimSpace(text), Provider: geminiID}, nil
}

// firstCandidateText digs out candidates[0].content.parts[0] without trusting
// any level of the nested response shape.
func firstCandidateText(resp *genai.GenerateContentResponse) (string, bool) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", false
	}
	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return "", false
	}
	text, ok := content.Parts[0].(genai.Text)
	if !ok {
		return "", false
	}
	return string(text), true
}

func (a *GeminiAdapter) classify(err error) error {
	if isTimeout(err) {
		return NewError(geminiID, ErrorKindTimeout, "request timeout")
	}
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			// Gemini reports key problems as 403 (quota or invalid key).
			return NewError(geminiID, ErrorKindAuthFailure, "API key invalid or quota exceeded")
		case http.StatusTooManyRequests:
			return NewError(geminiID, ErrorKindRateLimited, "rate limit exceeded - free tier allows 60 requests per minute")
		}
		return NewError(geminiID, ErrorKindUnknown, apiErr.Message)
	}
	return NewError(geminiID, ErrorKindUnknown, err.Error())
}
