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


// Package ai provides abstractions for the AI providers used in Catharsis.
//
// This package defines the Provider capability interface and the Registry
// that folds operations over an ordered provider cascade. The engine
// packages depend on these abstractions rather than on concrete
// implementations, so providers can be reordered or swapped without
// touching business logic.
//
// # Design Principles
//
// The package is designed around two key pieces:
//
//   - Provider: the uniform capability interface over one AI backend
//     (Analyze, Transform, Respond plus Capabilities/Available)
//   - Registry: an ordered fold over providers with per-call and
//     whole-cascade deadlines
//
// Providers never hard-fail at construction. A backend with missing
// credentials or a failed client handshake reports Available() == false
// and the Registry skips it, which keeps cascade order a pure
// configuration concern.
//
// # Implementation Packages
//
// The ai package includes four implementation sub-packages:
//
//   - ai/gemini: Google Gemini, primary generative backend
//   - ai/openai: OpenAI and OpenAI-compatible servers, secondary backend
//   - ai/local: deterministic heuristic provider, always available
//   - ai/mock: test doubles for unit testing without external services
//
// # Usage Example
//
//	cfg := ai.NewConfig(
//	    ai.WithGeminiAPIKey(geminiKey),
//	    ai.WithOpenAIAPIKey(openaiKey),
//	)
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//
//	registry := ai.NewRegistry([]ai.Provider{
//	    gemini.NewProvider(cfg),
//	    openai.NewProvider(cfg),
//	    local.NewProvider(),
//	})
//
//	analysis, provider, err := registry.Analyze(ctx, ai.AnalyzeRequest{Text: text, Instructions: prompt})
//
// Per-provider failures are logged and the cascade advances; callers see
// either a result, the caller's own context error, or
// ErrAllProvidersExhausted with no vendor error text attached.
package ai
