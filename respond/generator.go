// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package respond generates persona-conditioned replies to free text,
// with advisory metadata about each reply's tone and length.
package respond

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/poiesic/catharsis/ai"
	"github.com/poiesic/catharsis/ai/local"
	"github.com/poiesic/catharsis/core"
)

// ErrRegistryRequired is returned by NewGenerator without a registry.
var ErrRegistryRequired = errors.New("respond: registry is required")

// personaContexts frames each persona for the generative providers.
var personaContexts = map[core.Persona]string{
	core.PersonaSupportive:   "You are a supportive, empathetic friend who listens and offers comfort.",
	core.PersonaSarcastic:    "You are witty and sarcastic, but ultimately caring and helpful.",
	core.PersonaHumorous:     "You use humor to lighten the mood while being understanding.",
	core.PersonaMotivational: "You are an energetic motivational coach who inspires action.",
	core.PersonaProfessional: "You are a professional counselor providing thoughtful guidance.",
	core.PersonaAnalytical:   "You analyze situations calmly and help break problems into manageable parts.",
	core.PersonaEmpathetic:   "You deeply acknowledge feelings and reflect them back with warmth.",
	core.PersonaEncouraging:  "You highlight strengths and gently encourage the next small step.",
}

// Generator produces persona-conditioned replies through the provider
// cascade.
type Generator struct {
	registry *ai.Registry
	logger   *slog.Logger
}

// NewGenerator creates a response generator over the given registry.
func NewGenerator(registry *ai.Registry) (*Generator, error) {
	if registry == nil {
		return nil, ErrRegistryRequired
	}
	return &Generator{
		registry: registry,
		logger:   slog.Default().With("component", "respond-generator"),
	}, nil
}

// Respond validates the input and persona, folds the reply over the
// cascade, and computes the reply metadata. Unknown personas are
// rejected before any provider is invoked.
func (g *Generator) Respond(ctx context.Context, text string, persona core.Persona) (*core.ResponseResult, error) {
	if err := core.ValidateContent(text); err != nil {
		return nil, err
	}
	frame, ok := personaContexts[persona]
	if !ok {
		return nil, fmt.Errorf("%w: %w: %q", core.ErrValidation, core.ErrUnknownPersona, persona)
	}

	req := ai.RespondRequest{
		Text:         text,
		Persona:      persona,
		Instructions: buildPrompt(frame, text),
	}

	reply, provider, err := g.registry.Respond(ctx, req)
	if err != nil {
		return nil, err
	}

	result := &core.ResponseResult{
		Reply:    reply,
		Provider: provider,
		Persona:  persona,
		Metadata: buildMetadata(text, reply),
	}
	g.logger.Debug("reply generated",
		"provider", provider,
		"persona", persona,
		"length", result.Metadata.Length)
	return result, nil
}

func buildPrompt(frame, text string) string {
	return fmt.Sprintf(`%s

Someone just shared this with you: %q

Respond in a way that:
1. Acknowledges their feelings
2. Validates their experience
3. Offers gentle perspective or encouragement
4. Keeps it conversational, in your own voice`, frame, text)
}

// buildMetadata derives the advisory reply metadata. Reading time
// assumes 200 characters a minute and always rounds up to at least one
// minute. The sentiment shift compares keyword balances of reply and
// input, so it is stable for identical strings.
func buildMetadata(text, reply string) core.ResponseMetadata {
	return core.ResponseMetadata{
		Length:         len(reply),
		ReadingMinutes: len(reply)/200 + 1,
		SentimentShift: classifyShift(text, reply),
	}
}

func classifyShift(text, reply string) core.SentimentShift {
	inPos, inNeg := local.SentimentCounts(text)
	outPos, outNeg := local.SentimentCounts(reply)
	delta := (outPos - outNeg) - (inPos - inNeg)

	switch {
	case delta >= 3:
		return core.ShiftSignificantlyMorePositive
	case delta >= 1:
		return core.ShiftMorePositive
	case delta == 0:
		return core.ShiftMaintainedTone
	default:
		return core.ShiftNeutral
	}
}
