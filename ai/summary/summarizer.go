// Package summary builds AI summaries of a user's recent messages, with a
// fully offline heuristic as the last line of defense.
package summary

import (
	"context"
	"strings"

	"github.com/scalexhq/chatgate/ai"
	"github.com/scalexhq/chatgate/ai/provider"
	"github.com/scalexhq/chatgate/store"
)

// EmptyHistorySummary is returned without any provider call when the
// resolved message sequence is empty.
const EmptyHistorySummary = "No chat history available yet."

// HeuristicProviderID tags summaries produced by the offline heuristic.
const HeuristicProviderID = "heuristic"

// maxRecentMessages caps how many trailing messages feed the analysis prompt.
const maxRecentMessages = 20

const analysisPrompt = `Analyze these user messages and provide a brief, friendly summary of their interests and common topics in 2-3 sentences. Be concise, insightful, and positive. Focus on patterns, recurring themes, and main areas of interest.

Messages:
`

// Dispatcher routes the analysis prompt through the fallback chain.
type Dispatcher interface {
	Dispatch(ctx context.Context, providerID, prompt, language string) *provider.Result
}

// HistoryReader resolves an email into that user's chat history.
type HistoryReader interface {
	ListHistory(email string) ([]store.HistoryEntry, error)
}

// Request names the summary source: either explicit Messages or an Email
// resolved through the history store, never both.
type Request struct {
	Email    string
	Messages []string
	Provider string
}

// Response is the summary outcome. Provider identifies what produced the
// text: a real adapter, ai.MockProviderID never appears here because mock
// degradation falls through to the heuristic.
type Response struct {
	Summary      string
	MessageCount int
	Provider     string
}

// Summarizer generates summaries through the dispatcher.
type Summarizer struct {
	dispatcher Dispatcher
	history    HistoryReader
}

// NewSummarizer creates a summary generator.
func NewSummarizer(dispatcher Dispatcher, history HistoryReader) *Summarizer {
	return &Summarizer{
		dispatcher: dispatcher,
		history:    history,
	}
}

// Summarize resolves the message source, assembles the analysis prompt, and
// routes it through the fallback dispatcher. A store ErrUserNotFound
// propagates to the caller; everything downstream of a resolved non-empty
// source cannot fail.
func (s *Summarizer) Summarize(ctx context.Context, req *Request) (*Response, error) {
	messages := req.Messages
	if req.Email != "" && len(messages) == 0 {
		entries, err := s.history.ListHistory(req.Email)
		if err != nil {
			return nil, err
		}
		messages = make([]string, 0, len(entries))
		for _, entry := range entries {
			messages = append(messages, entry.UserMessage)
		}
	}

	// Required short-circuit: no provider call for an empty source.
	if len(messages) == 0 {
		return &Response{
			Summary:      EmptyHistorySummary,
			MessageCount: 0,
			Provider:     req.Provider,
		}, nil
	}

	recent := messages
	if len(recent) > maxRecentMessages {
		recent = recent[len(recent)-maxRecentMessages:]
	}
	prompt := analysisPrompt + strings.Join(recent, "\n")

	result := s.dispatcher.Dispatch(ctx, req.Provider, prompt, "en")
	if result.Provider == ai.MockProviderID {
		// Every provider degraded; fall back to the pure local heuristic.
		return &Response{
			Summary:      HeuristicSummary(messages),
			MessageCount: len(messages),
			Provider:     HeuristicProviderID,
		}, nil
	}

	return &Response{
		Summary:      result.Text,
		MessageCount: len(messages),
		Provider:     result.Provider,
	}, nil
}
