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


// Package analysis turns free text into a normalized emotional analysis
// by driving the provider cascade.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/poiesic/catharsis/ai"
	"github.com/poiesic/catharsis/core"
)

// ErrRegistryRequired is returned by NewEngine without a registry.
var ErrRegistryRequired = errors.New("analysis: registry is required")

// Engine runs emotion analysis through the provider cascade.
type Engine struct {
	registry *ai.Registry
	logger   *slog.Logger
}

// NewEngine creates an analysis engine over the given registry.
func NewEngine(registry *ai.Registry) (*Engine, error) {
	if registry == nil {
		return nil, ErrRegistryRequired
	}
	return &Engine{
		registry: registry,
		logger:   slog.Default().With("component", "analysis-engine"),
	}, nil
}

// Analyze validates text and folds the analysis over the cascade.
// Validation failures cost zero provider calls. The returned provider
// name identifies which backend produced the analysis.
func (e *Engine) Analyze(ctx context.Context, text string) (*core.EmotionAnalysis, string, error) {
	if err := core.ValidateContent(text); err != nil {
		return nil, "", err
	}

	req := ai.AnalyzeRequest{
		Text:         text,
		Instructions: buildPrompt(text),
	}

	analysis, provider, err := e.registry.Analyze(ctx, req)
	if err != nil {
		return nil, "", err
	}

	e.logger.Debug("analysis complete",
		"provider", provider,
		"emotion", analysis.Emotion,
		"confidence", analysis.Confidence)
	return analysis, provider, nil
}

// buildPrompt asks for a strict JSON object so structured decoding has
// a fighting chance even on smaller models.
func buildPrompt(text string) string {
	return fmt.Sprintf(`Analyze the following text and provide a detailed emotional and sentiment analysis.

Text: %q

Respond with ONLY a valid JSON object containing:
{
    "emotion": "one of: angry, frustrated, sad, anxious, excited, happy, confused, neutral",
    "emotion_confidence": 0.85,
    "sentiment_score": -0.3,
    "keywords": ["word1", "word2", "word3"],
    "summary": "Brief summary of the main issue or topic",
    "intensity": 0.7,
    "categories": ["category1", "category2"]
}

Make sure emotion_confidence and sentiment_score are numbers between 0-1 and -1 to 1 respectively.
Intensity should be 0-1 representing how intense the emotion is.`, text)
}
