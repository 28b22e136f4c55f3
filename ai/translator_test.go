package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scalexhq/chatgate/ai/provider"
)

func TestTranslateUsesGeminiFirst(t *testing.T) {
	gemini := &stubAdapter{id: "gemini", configured: true}
	groq := &stubAdapter{id: "groq", configured: true}
	d := newTestDispatcher("gemini", gemini, groq)

	out := d.Translate(context.Background(), "hello", "en", "ar")

	assert.Contains(t, out, "reply to")
	assert.Equal(t, 1, gemini.calls)
	assert.Equal(t, 0, groq.calls)
}

func TestTranslateFallsBackToGroq(t *testing.T) {
	gemini := &stubAdapter{id: "gemini", configured: true, err: provider.NewError("gemini", provider.ErrorKindRateLimited, "rate limit exceeded")}
	groq := &stubAdapter{id: "groq", configured: true}
	d := newTestDispatcher("gemini", gemini, groq)

	out := d.Translate(context.Background(), "hello", "en", "ar")

	assert.Contains(t, out, "reply to")
	assert.Equal(t, 1, groq.calls)
}

func TestTranslateEchoesWhenNoProviderIsConfigured(t *testing.T) {
	gemini := &stubAdapter{id: "gemini", configured: false}
	groq := &stubAdapter{id: "groq", configured: false}
	d := newTestDispatcher("gemini", gemini, groq)

	out := d.Translate(context.Background(), "hello", "en", "ar")

	assert.Equal(t, "[Translation: en → ar] hello", out)
	assert.Equal(t, 0, gemini.calls)
	assert.Equal(t, 0, groq.calls)
}

func TestTranslatePromptCarriesLanguages(t *testing.T) {
	var captured string
	gemini := &captureAdapter{id: "gemini", prompt: &captured}
	d := newTestDispatcher("gemini", &stubAdapter{id: "placeholder", configured: false})
	d.Register(gemini)

	d.Translate(context.Background(), "good morning", "en", "fr")

	assert.Contains(t, captured, "from en to fr")
	assert.Contains(t, captured, `"good morning"`)
}

// captureAdapter records the prompt it is invoked with.
type captureAdapter struct {
	id     string
	prompt *string
}

func (c *captureAdapter) ID() string       { return c.id }
func (c *captureAdapter) Name() string     { return c.id }
func (c *captureAdapter) Configured() bool { return true }

func (c *captureAdapter) Invoke(_ context.Context, prompt, _ string) (*provider.Result, error) {
	*c.prompt = prompt
	return &provider.Result{Text: "ok", Provider: c.id}, nil
}
