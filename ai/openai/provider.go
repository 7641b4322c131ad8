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


// Package openai implements ai.Provider on OpenAI and on
// OpenAI-compatible servers (Ollama, LocalAI, vLLM).
package openai

import (
	"context"
	"errors"
	"log/slog"

	"github.com/tmc/langchaingo/llms"
	openaillm "github.com/tmc/langchaingo/llms/openai"

	"github.com/poiesic/catharsis/ai"
	"github.com/poiesic/catharsis/ai/structured"
	"github.com/poiesic/catharsis/core"
)

// Name identifies this provider in results and logs.
const Name = "openai"

const (
	analyzeTemperature   = 0.3
	transformTemperature = 0.8
	respondTemperature   = 0.7
)

// Provider implements ai.Provider using OpenAI-compatible chat APIs.
type Provider struct {
	model  llms.Model
	logger *slog.Logger
}

// NewProvider creates the OpenAI provider. Construction never hard-fails:
// without credentials or a compatible host, the provider reports itself
// unavailable and the registry skips it.
func NewProvider(config *ai.Config) ai.Provider {
	p := &Provider{
		logger: slog.Default().With("component", "openai-provider"),
	}

	if config == nil || (config.OpenAIAPIKey == "" && config.OpenAIHost == "") {
		p.logger.Debug("no credentials configured, provider unavailable")
		return p
	}

	// Use "none" as token for local OpenAI-compatible services that
	// don't require authentication
	token := config.OpenAIAPIKey
	if token == "" {
		token = "none"
	}

	opts := []openaillm.Option{
		openaillm.WithToken(token),
		openaillm.WithModel(config.OpenAIModel),
	}
	if config.OpenAIHost != "" {
		opts = append(opts, openaillm.WithBaseURL(config.OpenAIHost))
	}

	model, err := openaillm.New(opts...)
	if err != nil {
		p.logger.Warn("client construction failed, provider unavailable", "err", err)
		return p
	}

	p.model = model
	return p
}

func (p *Provider) Name() string {
	return Name
}

func (p *Provider) Capabilities() ai.Capability {
	return ai.CapAnalyze | ai.CapTransform | ai.CapRespond
}

func (p *Provider) Available() bool {
	return p.model != nil
}

// Analyze sends the analysis instructions and decodes the structured reply.
func (p *Provider) Analyze(ctx context.Context, req ai.AnalyzeRequest) (*core.EmotionAnalysis, error) {
	raw, err := p.generate(ctx, req.Instructions, analyzeTemperature, true)
	if err != nil {
		return nil, err
	}

	analysis, err := structured.DecodeAnalysis(raw)
	if err != nil {
		p.logger.Warn("unparseable analysis output", "err", err)
		return nil, ai.OutputInvalid(Name, err)
	}
	return analysis, nil
}

// Transform rewrites the text into the requested form.
func (p *Provider) Transform(ctx context.Context, req ai.TransformRequest) (*core.TransformationPayload, error) {
	if req.Form == core.FormMeme {
		raw, err := p.generate(ctx, req.Instructions, transformTemperature, true)
		if err != nil {
			return nil, err
		}
		card, err := structured.DecodeMemeCard(raw)
		if err != nil {
			p.logger.Warn("unparseable meme output", "err", err)
			return nil, ai.OutputInvalid(Name, err)
		}
		return &core.TransformationPayload{Form: req.Form, Meme: card}, nil
	}

	text, err := p.generate(ctx, req.Instructions, transformTemperature, false)
	if err != nil {
		return nil, err
	}
	return &core.TransformationPayload{Form: req.Form, Content: text}, nil
}

// Respond returns a persona-toned reply as plain text.
func (p *Provider) Respond(ctx context.Context, req ai.RespondRequest) (string, error) {
	return p.generate(ctx, req.Instructions, respondTemperature, false)
}

func (p *Provider) generate(ctx context.Context, prompt string, temperature float64, jsonMode bool) (string, error) {
	if p.model == nil {
		return "", ai.Unavailable(Name, errors.New("provider not configured"))
	}

	opts := []llms.CallOption{llms.WithTemperature(temperature)}
	if jsonMode {
		opts = append(opts, llms.WithJSONMode())
	}

	raw, err := llms.GenerateFromSinglePrompt(ctx, p.model, prompt, opts...)
	if err != nil {
		p.logger.Error("generation failed", "err", err)
		return "", ai.Transport(Name, err)
	}
	return raw, nil
}
