package provider

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const (
	claudeID    = "claude"
	claudeModel = "claude-3-haiku-20240307"

	claudeMaxTokens = 500
)

const (
	claudeSystemPromptDefault = "You are a helpful assistant. Provide clear, concise responses."
	claudeSystemPromptArabic  = "You are a helpful assistant. Respond in Arabic with clear, proper language."
)

// ClaudeAdapter calls the Anthropic Messages API using the official SDK.
// The SDK sends the x-api-key and anthropic-version headers.
type ClaudeAdapter struct {
	client anthropic.Client
	apiKey string
}

// NewClaude creates a Claude adapter.
func NewClaude(apiKey string) *ClaudeAdapter {
	return &ClaudeAdapter{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		apiKey: apiKey,
	}
}

func (a *ClaudeAdapter) ID() string { return claudeID }

func (a *ClaudeAdapter) Name() string { return "Claude Haiku" }

func (a *ClaudeAdapter) Configured() bool { return a.apiKey != "" }

func (a *ClaudeAdapter) Invoke(ctx context.Context, prompt, language string) (*Result, error) {
	if !a.Configured() {
		return nil, NewError(claudeID, ErrorKindNotConfigured, "Claude not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, CallTimeout*time.Second)
	defer cancel()

	systemPrompt := claudeSystemPromptDefault
	if language == "ar" {
		systemPrompt = claudeSystemPromptArabic
	}

	msg, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     claudeModel,
		MaxTokens: claudeMaxTokens,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return nil, a.classify(err)
	}

	if msg == nil || len(msg.Content) == 0 || msg.Content[0].Text == "" {
		return nil, NewError(claudeID, ErrorKindBadResponseShape, "invalid response format from Claude API")
	}

	return &Result{
		Text:     strings.TrimSpace(msg.Content[0].Text),
		Provider: claudeID,
	}, nil
}

func (a *ClaudeAdapter) classify(err error) error {
	if isTimeout(err) {
		return NewError(claudeID, ErrorKindTimeout, "request timeout")
	}
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusUnauthorized:
			return NewError(claudeID, ErrorKindAuthFailure, "invalid API key")
		case http.StatusTooManyRequests:
			return NewError(claudeID, ErrorKindRateLimited, "rate limit exceeded")
		}
		return NewError(claudeID, ErrorKindUnknown, apiErr.Error())
	}
	return NewError(claudeID, ErrorKindUnknown, err.Error())
}
