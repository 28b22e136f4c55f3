package provider

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFormatting(t *testing.T) {
	err := NewError("gemini", ErrorKindRateLimited, "rate limit exceeded")
	assert.Equal(t, "gemini: [RATE_LIMITED] rate limit exceeded", err.Error())
}

func TestIsTimeout(t *testing.T) {
	assert.True(t, isTimeout(context.DeadlineExceeded))
	assert.False(t, isTimeout(errors.New("connection refused")))
	assert.False(t, isTimeout(context.Canceled))
}

func TestUnconfiguredAdaptersRefuseWithoutNetwork(t *testing.T) {
	ctx := context.Background()

	for _, tc := range []struct {
		adapter Adapter
		message string
	}{
		{NewGemini(""), "Gemini not configured"},
		{NewGroq(""), "Groq not configured"},
		{NewClaude(""), "Claude not configured"},
	} {
		require.False(t, tc.adapter.Configured())

		res, err := tc.adapter.Invoke(ctx, "hello", "en")
		require.Nil(t, res)

		var perr *Error
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, ErrorKindNotConfigured, perr.Kind)
		assert.Equal(t, tc.message, perr.Message)
	}
}

func TestGroqClassify(t *testing.T) {
	a := NewGroq("key")

	for _, tc := range []struct {
		name string
		in   error
		kind ErrorKind
		msg  string
	}{
		{"timeout", context.DeadlineExceeded, ErrorKindTimeout, "request timeout"},
		{"auth", &openai.APIError{HTTPStatusCode: http.StatusUnauthorized}, ErrorKindAuthFailure, "invalid API key"},
		{"rate limit", &openai.APIError{HTTPStatusCode: http.StatusTooManyRequests}, ErrorKindRateLimited, "rate limit exceeded"},
		{"server error", &openai.APIError{HTTPStatusCode: http.StatusInternalServerError, Message: "boom"}, ErrorKindUnknown, "boom"},
		{"transport", errors.New("connection reset"), ErrorKindUnknown, "connection reset"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var perr *Error
			require.ErrorAs(t, a.classify(tc.in), &perr)
			assert.Equal(t, "groq", perr.Provider)
			assert.Equal(t, tc.kind, perr.Kind)
			assert.Equal(t, tc.msg, perr.Message)
		})
	}
}

func TestAdapterIdentity(t *testing.T) {
	assert.Equal(t, "gemini", NewGemini("").ID())
	assert.Equal(t, "groq", NewGroq("").ID())
	assert.Equal(t, "claude", NewClaude("").ID())

	assert.Equal(t, "Google Gemini Pro", NewGemini("").Name())
	assert.Equal(t, "Groq (Llama 3.1)", NewGroq("").Name())
	assert.Equal(t, "Claude Haiku", NewClaude("").Name())
}
