// Package provider defines the Adapter interface and the AI backend adapters.
//
// Every backend (Gemini, Groq, Claude) implements Adapter. The rest of the
// gateway works only with the canonical Result and Error types, so handlers,
// dispatcher, and summarizer never need to know which provider actually
// answered a request.
package provider

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// CallTimeout bounds every outbound provider call. A call exceeding it is
// abandoned and reported as ErrorKindTimeout.
const CallTimeout = 30 // seconds

// ErrorKind classifies adapter failures into the canonical taxonomy.
type ErrorKind string

const (
	ErrorKindNotConfigured    ErrorKind = "NOT_CONFIGURED"
	ErrorKindAuthFailure      ErrorKind = "AUTH_FAILURE"
	ErrorKindRateLimited      ErrorKind = "RATE_LIMITED"
	ErrorKindTimeout          ErrorKind = "TIMEOUT"
	ErrorKindBadResponseShape ErrorKind = "BAD_RESPONSE_SHAPE"
	ErrorKindUnknown          ErrorKind = "UNKNOWN"
)

// Result is the normalized success value every adapter produces.
// Provider is the identifier of the adapter that actually answered, which
// may differ from the one the caller requested after a fallback.
type Result struct {
	Text     string
	Provider string
}

// Error is the normalized failure value. Adapters never return raw SDK or
// transport errors; routine provider failure is an expected value the
// dispatcher inspects, not an exception.
type Error struct {
	Provider string
	Kind     ErrorKind
	Message  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: [%s] %s", e.Provider, e.Kind, e.Message)
}

// NewError builds a canonical adapter error.
func NewError(providerID string, kind ErrorKind, message string) *Error {
	return &Error{Provider: providerID, Kind: kind, Message: message}
}

// Adapter translates a canonical (prompt, language) pair into one
// provider-specific HTTPS call. Implementations are stateless and safe for
// concurrent use. A failed invocation returns a *Error; Invoke never panics
// on malformed provider responses.
type Adapter interface {
	// ID returns the provider identifier, e.g. "gemini" or "claude".
	ID() string

	// Name returns the human-readable provider name for /api/models.
	Name() string

	// Configured reports whether the adapter has a credential. An
	// unconfigured adapter must not be invoked; it would refuse with
	// ErrorKindNotConfigured without touching the network.
	Configured() bool

	// Invoke sends prompt to the backend and returns the canonical result.
	// language is a short locale tag ("en", "ar", ...) selecting the system
	// prompt template; unrecognized tags use the default template.
	Invoke(ctx context.Context, prompt, language string) (*Result, error)
}

// isTimeout reports whether err is a deadline or transport timeout.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
