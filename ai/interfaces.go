package ai

import (
	"context"

	"github.com/poiesic/catharsis/core"
)

// Capability is a bitmask of operations a provider supports.
type Capability uint8

const (
	// CapAnalyze is structured emotion/sentiment analysis.
	CapAnalyze Capability = 1 << iota
	// CapTransform is creative rewriting into a target form.
	CapTransform
	// CapRespond is persona-conditioned conversational reply generation.
	CapRespond
)

// Has reports whether c includes every capability in want.
func (c Capability) Has(want Capability) bool {
	return c&want == want
}

// String returns a short name for logging.
func (c Capability) String() string {
	switch c {
	case CapAnalyze:
		return "analyze"
	case CapTransform:
		return "transform"
	case CapRespond:
		return "respond"
	default:
		return "multi"
	}
}

// AnalyzeRequest asks a provider for a structured emotional analysis.
// Instructions carries the full provider-agnostic prompt built by the
// analysis engine; generative backends send it verbatim, the local
// heuristic provider works from Text alone.
type AnalyzeRequest struct {
	Text         string
	Instructions string
}

// TransformRequest asks a provider to rewrite Text into Form.
type TransformRequest struct {
	Text         string
	Form         core.TransformForm
	Instructions string
}

// RespondRequest asks a provider for a persona-conditioned reply.
type RespondRequest struct {
	Text         string
	Persona      core.Persona
	Instructions string
}

// Provider is the uniform capability interface over one AI backend.
// Implementations are constructed once at process start and must be
// immutable and safe for concurrent use afterwards.
//
// Every method must return a *ProviderError on failure so the Registry
// can fold over the cascade on explicit error kinds.
type Provider interface {
	// Name identifies the provider in results and logs.
	Name() string

	// Capabilities reports which operations this provider supports.
	Capabilities() Capability

	// Available reports whether the provider can serve requests:
	// credentials were present and the client constructed successfully.
	// Unavailable providers are skipped silently by the Registry.
	Available() bool

	// Analyze returns a normalized EmotionAnalysis for the request text.
	Analyze(ctx context.Context, req AnalyzeRequest) (*core.EmotionAnalysis, error)

	// Transform returns a payload for the requested form. For the meme
	// form the payload carries a structured MemeCard.
	Transform(ctx context.Context, req TransformRequest) (*core.TransformationPayload, error)

	// Respond returns a free-form reply in the requested persona's tone.
	Respond(ctx context.Context, req RespondRequest) (string, error)
}
