package ai

import (
	"context"
	"log/slog"
	"time"

	"github.com/poiesic/catharsis/core"
)

// Registry folds an operation over an ordered provider cascade. The
// first provider that is available, advertises the capability, and
// returns a usable result wins. Provider failures never surface to the
// caller; they are logged and the cascade advances. Only context
// cancellation or complete exhaustion aborts the fold.
type Registry struct {
	providers      []Provider
	callTimeout    time.Duration
	overallTimeout time.Duration
	logger         *slog.Logger
}

// RegistryOption is a functional option for configuring a Registry.
type RegistryOption func(*Registry)

// WithRegistryLogger sets the logger used for cascade advancement warnings.
func WithRegistryLogger(logger *slog.Logger) RegistryOption {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithTimeouts sets the per-call and whole-cascade timeouts.
func WithTimeouts(call, overall time.Duration) RegistryOption {
	return func(r *Registry) {
		if call > 0 {
			r.callTimeout = call
		}
		if overall > 0 {
			r.overallTimeout = overall
		}
	}
}

// NewRegistry creates a Registry over providers in priority order.
// Providers are tried front to back.
func NewRegistry(providers []Provider, opts ...RegistryOption) *Registry {
	r := &Registry{
		providers:      providers,
		callTimeout:    15 * time.Second,
		overallTimeout: 45 * time.Second,
		logger:         slog.Default().With("component", "ai.registry"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Providers returns the cascade order. Used for status reporting.
func (r *Registry) Providers() []Provider {
	return r.providers
}

// Analyze runs the analysis cascade and returns the result together
// with the name of the provider that produced it.
func (r *Registry) Analyze(ctx context.Context, req AnalyzeRequest) (*core.EmotionAnalysis, string, error) {
	return cascade(ctx, r, CapAnalyze, func(ctx context.Context, p Provider) (*core.EmotionAnalysis, error) {
		return p.Analyze(ctx, req)
	})
}

// Transform runs the transformation cascade. check, when non-nil, is a
// structural contract applied to each provider's payload before it is
// accepted; a payload that fails the check counts as a provider failure
// and the cascade advances.
func (r *Registry) Transform(ctx context.Context, req TransformRequest, check func(*core.TransformationPayload) error) (*core.TransformationPayload, string, error) {
	return cascade(ctx, r, CapTransform, func(ctx context.Context, p Provider) (*core.TransformationPayload, error) {
		payload, err := p.Transform(ctx, req)
		if err != nil {
			return nil, err
		}
		if check != nil {
			if err := check(payload); err != nil {
				return nil, OutputInvalid(p.Name(), err)
			}
		}
		return payload, nil
	})
}

// Respond runs the reply cascade.
func (r *Registry) Respond(ctx context.Context, req RespondRequest) (string, string, error) {
	return cascade(ctx, r, CapRespond, func(ctx context.Context, p Provider) (string, error) {
		return p.Respond(ctx, req)
	})
}

// cascade is the shared fold. One overall deadline covers the sweep and
// each call gets its own shorter deadline. A parent context error stops
// the fold where it stands; a provider error advances it.
func cascade[T any](ctx context.Context, r *Registry, cap Capability, call func(context.Context, Provider) (T, error)) (T, string, error) {
	var zero T

	ctx, cancel := context.WithTimeout(ctx, r.overallTimeout)
	defer cancel()

	for _, p := range r.providers {
		if !p.Capabilities().Has(cap) || !p.Available() {
			continue
		}

		callCtx, callCancel := context.WithTimeout(ctx, r.callTimeout)
		result, err := call(callCtx, p)
		callCancel()

		if err == nil {
			return result, p.Name(), nil
		}

		// The caller's deadline or cancellation takes precedence over
		// falling through to the next provider.
		if ctx.Err() != nil {
			return zero, "", ctx.Err()
		}

		r.logger.Warn("provider failed, advancing cascade",
			"provider", p.Name(),
			"operation", cap.String(),
			"error", err)
	}

	return zero, "", ErrAllProvidersExhausted
}
