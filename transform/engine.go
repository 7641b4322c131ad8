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


// Package transform rewrites free text into creative forms through the
// provider cascade, then enforces each form's structural contract.
package transform

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/poiesic/catharsis/ai"
	"github.com/poiesic/catharsis/ai/local"
	"github.com/poiesic/catharsis/core"
)

// ErrRegistryRequired is returned by NewEngine without a registry.
var ErrRegistryRequired = errors.New("transform: registry is required")

// FallbackProviderName marks results produced by the engine's own
// template fallback rather than any cascade provider.
const FallbackProviderName = "fallback"

const (
	// MaxTweetLength is the hard cap on tweet content in runes,
	// including the truncation marker.
	MaxTweetLength = 280
	// MaxContentRunes soft-caps every other form's content.
	MaxContentRunes = 4000
)

// Engine runs creative transformations through the provider cascade.
type Engine struct {
	registry *ai.Registry
	logger   *slog.Logger
}

// NewEngine creates a transformation engine over the given registry.
func NewEngine(registry *ai.Registry) (*Engine, error) {
	if registry == nil {
		return nil, ErrRegistryRequired
	}
	return &Engine{
		registry: registry,
		logger:   slog.Default().With("component", "transform-engine"),
	}, nil
}

// Transform validates the input, folds the transformation over the
// cascade, and enforces the form's structural contract on the winning
// payload. Supported forms never yield empty content: when every
// provider fails, the engine falls back to its deterministic templates.
// Only validation failures and context errors surface to the caller.
func (e *Engine) Transform(ctx context.Context, text string, form core.TransformForm) (*core.TransformationResult, error) {
	if err := core.ValidateContent(text); err != nil {
		return nil, err
	}
	spec, ok := formTable[form]
	if !ok {
		return nil, fmt.Errorf("%w: %w: %q", core.ErrValidation, core.ErrUnsupportedForm, form)
	}

	start := time.Now()
	req := ai.TransformRequest{
		Text:         text,
		Form:         form,
		Instructions: spec.prompt(text),
	}

	payload, provider, err := e.registry.Transform(ctx, req, checkPayload)
	if err != nil {
		if !errors.Is(err, ai.ErrAllProvidersExhausted) {
			return nil, err
		}
		e.logger.Warn("cascade exhausted, using template fallback", "form", form)
		payload = local.FallbackPayload(text, form)
		provider = FallbackProviderName
	}

	finalize(payload, text, spec)

	return &core.TransformationResult{
		Payload:      payload,
		Provider:     provider,
		Elapsed:      time.Since(start),
		QualityScore: spec.quality,
	}, nil
}

// checkPayload is the structural pre-acceptance contract: a payload
// that fails it counts as a provider failure and the cascade advances.
func checkPayload(p *core.TransformationPayload) error {
	if p == nil {
		return errors.New("nil payload")
	}
	if p.Form == core.FormMeme {
		if p.Meme == nil {
			return errors.New("meme payload without card")
		}
		return nil
	}
	if strings.TrimSpace(p.Content) == "" {
		return errors.New("empty content")
	}
	return nil
}

// finalize enforces post-acceptance contracts in place: size caps, the
// complete meme card, and a non-empty title.
func finalize(p *core.TransformationPayload, text string, spec formSpec) {
	if p.Title == "" {
		p.Title = spec.title
	}

	switch p.Form {
	case core.FormMeme:
		completeMeme(p, text)
	case core.FormTweet:
		p.Content = truncateRunes(p.Content, MaxTweetLength)
	default:
		p.Content = truncateRunes(p.Content, MaxContentRunes)
	}
}

// completeMeme fills any missing card slot from the template fallback
// so the card always carries all four fields.
func completeMeme(p *core.TransformationPayload, text string) {
	defaults := local.FallbackPayload(text, core.FormMeme).Meme
	if p.Meme == nil {
		p.Meme = defaults
		return
	}
	if p.Meme.Title == "" {
		p.Meme.Title = defaults.Title
	}
	if p.Meme.TopText == "" {
		p.Meme.TopText = defaults.TopText
	}
	if p.Meme.BottomText == "" {
		p.Meme.BottomText = defaults.BottomText
	}
	if p.Meme.Template == "" {
		p.Meme.Template = defaults.Template
	}
}

// truncateRunes hard-caps s at max runes, ending with a truncation
// marker when anything was cut. The marker counts against the cap.
func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
