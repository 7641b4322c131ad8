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


// Package local implements ai.Provider with deterministic heuristics
// and templates. It needs no credentials and no network, is always
// available, and terminates every cascade so analysis and
// transformation never fail outright.
package local

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/poiesic/catharsis/ai"
	"github.com/poiesic/catharsis/core"
)

// Name identifies this provider in results and logs.
const Name = "local"

// Provider is the terminal heuristic provider.
type Provider struct {
	replies map[core.Persona][]string
	logger  *slog.Logger
}

// Option is a functional option for configuring the Provider.
type Option func(*Provider)

// WithPersonaReplies replaces the built-in reply templates. Personas
// absent from the map make Respond fail for them, which is the only way
// this provider ever errors.
func WithPersonaReplies(replies map[core.Persona][]string) Option {
	return func(p *Provider) {
		p.replies = replies
	}
}

// NewProvider creates the local provider with built-in templates.
func NewProvider(opts ...Option) *Provider {
	p := &Provider{
		replies: personaReplies,
		logger:  slog.Default().With("component", "local-provider"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Provider) Name() string {
	return Name
}

func (p *Provider) Capabilities() ai.Capability {
	return ai.CapAnalyze | ai.CapTransform | ai.CapRespond
}

func (p *Provider) Available() bool {
	return true
}

// Analyze runs the keyword heuristic. It never fails.
func (p *Provider) Analyze(_ context.Context, req ai.AnalyzeRequest) (*core.EmotionAnalysis, error) {
	return AnalyzeText(req.Text), nil
}

// Transform fills the template skeleton for the form. It never fails.
func (p *Provider) Transform(_ context.Context, req ai.TransformRequest) (*core.TransformationPayload, error) {
	return FallbackPayload(req.Text, req.Form), nil
}

// Respond picks a canned reply for the persona. The pick is
// deterministic in the input text so retries are stable.
func (p *Provider) Respond(_ context.Context, req ai.RespondRequest) (string, error) {
	variants, ok := p.replies[req.Persona]
	if !ok || len(variants) == 0 {
		return "", ai.OutputInvalid(Name, fmt.Errorf("no reply templates for persona %q", req.Persona))
	}
	return variants[len(req.Text)%len(variants)], nil
}
