package ai

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/scalexhq/chatgate/ai/metrics"
	"github.com/scalexhq/chatgate/ai/provider"
)

// MockProviderID tags results produced by the mock responder instead of a
// real backend. Callers inspect it to detect degradation.
const MockProviderID = "mock"

// exhaustedReason is embedded in the mock reply when every provider in the
// fallback chain has failed.
const exhaustedReason = "All AI services unavailable"

// ProviderStatus describes one registered adapter for /api/health and
// /api/models.
type ProviderStatus struct {
	ID         string
	Name       string
	Configured bool
}

// Dispatcher resolves a requested provider identifier to an adapter and
// walks the fallback chain on failure. Dispatch never surfaces a provider
// failure to its caller; it always resolves to a real result or a mock one.
type Dispatcher struct {
	adapters  map[string]provider.Adapter
	order     []string // fixed secondary preference order = registration order
	defaultID string
	exporter  *metrics.PrometheusExporter
}

// NewDispatcher creates a dispatcher with the three standard adapters
// registered in fallback-preference order.
func NewDispatcher(cfg *Config, exporter *metrics.PrometheusExporter) *Dispatcher {
	d := &Dispatcher{
		adapters:  make(map[string]provider.Adapter),
		defaultID: strings.ToLower(cfg.DefaultProvider),
		exporter:  exporter,
	}
	d.Register(provider.NewGemini(cfg.GeminiAPIKey))
	d.Register(provider.NewGroq(cfg.GroqAPIKey))
	d.Register(provider.NewClaude(cfg.AnthropicAPIKey))

	if _, ok := d.adapters[d.defaultID]; !ok {
		if len(d.order) > 0 {
			d.defaultID = d.order[0]
		}
	}
	return d
}

// Register adds an adapter to the registry. Adding a provider means
// registering a new implementation, not editing a branch list. Later
// registrations of the same identifier replace the earlier adapter without
// changing its position in the fallback order.
func (d *Dispatcher) Register(a provider.Adapter) {
	id := strings.ToLower(a.ID())
	if _, ok := d.adapters[id]; !ok {
		d.order = append(d.order, id)
	}
	d.adapters[id] = a
}

// DefaultProvider returns the identifier used for unknown or absent
// provider requests.
func (d *Dispatcher) DefaultProvider() string {
	return d.defaultID
}

// Providers lists registered adapters in fallback-preference order.
func (d *Dispatcher) Providers() []ProviderStatus {
	statuses := make([]ProviderStatus, 0, len(d.order))
	for _, id := range d.order {
		a := d.adapters[id]
		statuses = append(statuses, ProviderStatus{
			ID:         id,
			Name:       a.Name(),
			Configured: a.Configured(),
		})
	}
	return statuses
}

// Dispatch routes one generation request. The returned result carries the
// identifier of the adapter that actually answered, which may differ from
// requestedID after a fallback, or MockProviderID after full degradation.
func (d *Dispatcher) Dispatch(ctx context.Context, requestedID, prompt, language string) *provider.Result {
	id := strings.ToLower(requestedID)
	primary, ok := d.adapters[id]
	if !ok {
		id = d.defaultID
		primary = d.adapters[id]
	}
	if primary == nil {
		return d.mockResult(prompt, language, exhaustedReason)
	}

	// A requested provider without a credential answers with a mock reply
	// right away; the attempt below performs no network call.
	res, err := d.attempt(ctx, primary, prompt, language)
	if err == nil {
		return res
	}
	var perr *provider.Error
	if errors.As(err, &perr) && perr.Kind == provider.ErrorKindNotConfigured {
		return d.mockResult(prompt, language, perr.Message)
	}

	for _, altID := range d.order {
		if altID == id {
			continue
		}
		alt := d.adapters[altID]
		if !alt.Configured() {
			continue
		}
		d.exporter.RecordFallbackAttempt()
		res, err := d.attempt(ctx, alt, prompt, language)
		if err == nil {
			slog.Info("ai: provider fallback succeeded",
				"requested", id,
				"answered_by", altID,
			)
			return res
		}
	}

	return d.mockResult(prompt, language, exhaustedReason)
}

func (d *Dispatcher) attempt(ctx context.Context, a provider.Adapter, prompt, language string) (*provider.Result, error) {
	start := time.Now()
	res, err := a.Invoke(ctx, prompt, language)
	latency := time.Since(start)
	if err != nil {
		outcome := "unknown"
		var perr *provider.Error
		if errors.As(err, &perr) {
			outcome = strings.ToLower(string(perr.Kind))
		}
		d.exporter.RecordProviderRequest(a.ID(), outcome, latency)
		if perr == nil || perr.Kind != provider.ErrorKindNotConfigured {
			slog.Warn("ai: provider attempt failed",
				"provider", a.ID(),
				"outcome", outcome,
				"error", err,
			)
		}
		return nil, err
	}
	d.exporter.RecordProviderRequest(a.ID(), "success", latency)
	return res, nil
}

func (d *Dispatcher) mockResult(prompt, language, reason string) *provider.Result {
	d.exporter.RecordMockDegradation(reason)
	return &provider.Result{
		Text:     provider.MockReply(prompt, language, reason),
		Provider: MockProviderID,
	}
}
