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


package ai

import (
	"errors"
	"strings"
	"time"
)

// Config holds configuration for AI service providers.
type Config struct {
	// GeminiAPIKey authenticates against the Google Gemini API.
	// When empty the gemini provider reports itself unavailable.
	GeminiAPIKey string

	// GeminiModel is the Gemini model identifier.
	// Example: "gemini-1.5-flash", "gemini-1.5-pro"
	GeminiModel string

	// OpenAIAPIKey authenticates against the OpenAI API. May be empty
	// when OpenAIHost points at a keyless OpenAI-compatible server.
	OpenAIAPIKey string

	// OpenAIModel is the OpenAI model identifier.
	// Example: "gpt-3.5-turbo", "gpt-4o-mini"
	OpenAIModel string

	// OpenAIHost optionally overrides the OpenAI base URL with an
	// OpenAI-compatible server (Ollama, LocalAI, vLLM, etc).
	OpenAIHost string

	// CallTimeout bounds a single provider call. Default: 15s.
	CallTimeout time.Duration

	// OverallTimeout bounds the whole cascade across providers for one
	// operation. Default: 45s.
	OverallTimeout time.Duration
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithGeminiAPIKey sets the Gemini API key.
func WithGeminiAPIKey(key string) ConfigOption {
	return func(c *Config) {
		c.GeminiAPIKey = key
	}
}

// WithGeminiModel sets the Gemini model identifier.
func WithGeminiModel(model string) ConfigOption {
	return func(c *Config) {
		c.GeminiModel = model
	}
}

// WithOpenAIAPIKey sets the OpenAI API key.
func WithOpenAIAPIKey(key string) ConfigOption {
	return func(c *Config) {
		c.OpenAIAPIKey = key
	}
}

// WithOpenAIModel sets the OpenAI model identifier.
func WithOpenAIModel(model string) ConfigOption {
	return func(c *Config) {
		c.OpenAIModel = model
	}
}

// WithOpenAIHost points the openai provider at an OpenAI-compatible host.
func WithOpenAIHost(host string) ConfigOption {
	return func(c *Config) {
		c.OpenAIHost = host
	}
}

// WithCallTimeout sets the per-provider call timeout.
func WithCallTimeout(d time.Duration) ConfigOption {
	return func(c *Config) {
		c.CallTimeout = d
	}
}

// WithOverallTimeout sets the whole-cascade timeout.
func WithOverallTimeout(d time.Duration) ConfigOption {
	return func(c *Config) {
		c.OverallTimeout = d
	}
}

// DefaultConfig returns a Config with sensible defaults. Credentials
// are left empty; providers without credentials report unavailable and
// the cascade falls through to the local heuristic provider.
func DefaultConfig() *Config {
	return &Config{
		GeminiModel:    "gemini-1.5-flash",
		OpenAIModel:    "gpt-3.5-turbo",
		CallTimeout:    15 * time.Second,
		OverallTimeout: 45 * time.Second,
	}
}

// NewConfig creates a Config with the default values and applies the provided options.
//
// Example:
//
//	cfg := NewConfig(
//	    WithGeminiAPIKey(key),
//	    WithOpenAIHost("http://localhost:11434/v1"),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form.
// It automatically adds the /v1 suffix to OpenAIHost if missing, which
// is required by most OpenAI-compatible APIs (Ollama, LocalAI, vLLM).
func (c *Config) Normalize() {
	if c.OpenAIHost != "" && !strings.HasSuffix(c.OpenAIHost, "/v1") {
		c.OpenAIHost = strings.TrimSuffix(c.OpenAIHost, "/")
		c.OpenAIHost = c.OpenAIHost + "/v1"
	}
	if c.CallTimeout <= 0 {
		c.CallTimeout = 15 * time.Second
	}
	if c.OverallTimeout <= 0 {
		c.OverallTimeout = 45 * time.Second
	}
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.GeminiAPIKey != "" && c.GeminiModel == "" {
		return errors.New("ai config: GeminiModel is required when GeminiAPIKey is set")
	}
	if (c.OpenAIAPIKey != "" || c.OpenAIHost != "") && c.OpenAIModel == "" {
		return errors.New("ai config: OpenAIModel is required when OpenAI is configured")
	}
	if c.OverallTimeout < c.CallTimeout {
		return errors.New("ai config: OverallTimeout must not be shorter than CallTimeout")
	}
	return nil
}
