package provider

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

const (
	groqID      = "groq"
	groqBaseURL = "https://api.groq.com/openai/v1"
	groqModel   = "llama-3.1-8b-instant"

	groqMaxTokens   = 1024
	groqTemperature = 0.7
)

const (
	groqSystemPromptDefault = "You are a helpful assistant. Provide clear, concise, and helpful responses."
	groqSystemPromptArabic  = "You are a helpful assistant. Respond in Arabic with clear, proper language. Keep responses concise and helpful."
)

// GroqAdapter calls the Groq chat completions endpoint, which speaks the
// OpenAI-compatible protocol.
type GroqAdapter struct {
	client *openai.Client
	apiKey string
}

// NewGroq creates a Groq adapter. An empty apiKey yields an unconfigured
// adapter that refuses invocations without a network call.
func NewGroq(apiKey string) *GroqAdapter {
	config := openai.DefaultConfig(apiKey)
	config.BaseURL = groqBaseURL
	return &GroqAdapter{
		client: openai.NewClientWithConfig(config),
		apiKey: apiKey,
	}
}

func (a *GroqAdapter) ID() string { return groqID }

func (a *GroqAdapter) Name() string { return "Groq (Llama 3.1)" }

func (a *GroqAdapter) Configured() bool { return a.apiKey != "" }

func (a *GroqAdapter) Invoke(ctx context.Context, prompt, language string) (*Result, error) {
	if !a.Configured() {
		return nil, NewError(groqID, ErrorKindNotConfigured, "Groq not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, CallTimeout*time.Second)
	defer cancel()

	systemPrompt := groqSystemPromptDefault
	if language == "ar" {
		systemPrompt = groqSystemPromptArabic
	}

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       groqModel,
		MaxTokens:   groqMaxTokens,
		Temperature: groqTemperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return nil, a.classify(err)
	}

	if len(resp.Choices) == 0 {
		return nil, NewError(groqID, ErrorKindBadResponseShape, "invalid response format from Groq API")
	}

	return &Result{
		Text:     strings.TrimSpace(resp.Choices[0].Message.Content),
		Provider: groqID,
	}, nil
}

func (a *GroqAdapter) classify(err error) error {
	if isTimeout(err) {
		return NewError(groqID, ErrorKindTimeout, "request timeout")
	}
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case http.StatusUnauthorized:
			return NewError(groqID, ErrorKindAuthFailure, "invalid API key")
		case http.StatusTooManyRequests:
			return NewError(groqID, ErrorKindRateLimited, "rate limit exceeded")
		}
		return NewError(groqID, ErrorKindUnknown, apiErr.Message)
	}
	return NewError(groqID, ErrorKindUnknown, err.Error())
}
