package ai

import (
	"context"
	"fmt"
)

const translationPrompt = "Translate the following text from %s to %s. Only provide the translation, no additional text:\n\n\"%s\""

// Translate renders text from one language to another through the first
// configured provider that answers (Gemini first, then Groq, matching the
// historical order of the translation endpoint). When no real provider is
// reachable it returns the tagged echo of the original text instead of a
// mock chat reply.
func (d *Dispatcher) Translate(ctx context.Context, text, from, to string) string {
	prompt := fmt.Sprintf(translationPrompt, from, to, text)
	for _, id := range []string{"gemini", "groq"} {
		a, ok := d.adapters[id]
		if !ok || !a.Configured() {
			continue
		}
		if res, err := d.attempt(ctx, a, prompt, to); err == nil {
			return res.Text
		}
	}
	return fmt.Sprintf("[Translation: %s → %s] %s", from, to, text)
}
