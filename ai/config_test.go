package ai

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "gemini-1.5-flash", cfg.GeminiModel)
	assert.Equal(t, "gpt-3.5-turbo", cfg.OpenAIModel)
	assert.Equal(t, 15*time.Second, cfg.CallTimeout)
	assert.Equal(t, 45*time.Second, cfg.OverallTimeout)
	require.NoError(t, cfg.Validate())
}

func TestConfigOptions(t *testing.T) {
	cfg := NewConfig(
		WithGeminiAPIKey("gk"),
		WithGeminiModel("gemini-1.5-pro"),
		WithOpenAIAPIKey("ok"),
		WithOpenAIModel("gpt-4o-mini"),
		WithOpenAIHost("http://localhost:11434"),
		WithCallTimeout(5*time.Second),
		WithOverallTimeout(20*time.Second),
	)

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "gk", cfg.GeminiAPIKey)
	assert.Equal(t, "gemini-1.5-pro", cfg.GeminiModel)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAIModel)
	assert.Equal(t, 5*time.Second, cfg.CallTimeout)
}

func TestConfigNormalizeAddsV1Suffix(t *testing.T) {
	tests := []struct {
		name string
		host string
		want string
	}{
		{"no suffix", "http://localhost:11434", "http://localhost:11434/v1"},
		{"trailing slash", "http://localhost:11434/", "http://localhost:11434/v1"},
		{"already has v1", "http://localhost:11434/v1", "http://localhost:11434/v1"},
		{"empty stays empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig(WithOpenAIHost(tt.host))
			cfg.Normalize()
			assert.Equal(t, tt.want, cfg.OpenAIHost)
		})
	}
}

func TestConfigValidateRejectsInvertedTimeouts(t *testing.T) {
	cfg := NewConfig(
		WithCallTimeout(30*time.Second),
		WithOverallTimeout(10*time.Second),
	)
	require.Error(t, cfg.Validate())
}

func TestConfigValidateRequiresModels(t *testing.T) {
	cfg := NewConfig(WithGeminiAPIKey("gk"), WithGeminiModel(""))
	require.Error(t, cfg.Validate())

	cfg = NewConfig(WithOpenAIHost("http://localhost:11434"), WithOpenAIModel(""))
	require.Error(t, cfg.Validate())
}
