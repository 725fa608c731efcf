package llm

import "fmt"

const defaultMistralBaseURL = "https://api.mistral.ai/v1"

// MistralProvider wraps OpenAIProvider with Mistral defaults. La
// Plateforme exposes an OpenAI-compatible API, so the underlying SDK
// is reused.
type MistralProvider struct {
	*OpenAIProvider
}

// NewMistralProvider creates a provider targeting the Mistral API.
func NewMistralProvider(cfg MistralConfig) (*MistralProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("mistral API key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultMistralBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = "mistral-small-latest"
	}

	inner, err := newOpenAIProviderRaw(OpenAIConfig{
		APIKey:  cfg.APIKey,
		Model:   model,
		BaseURL: baseURL,
	})
	if err != nil {
		return nil, err
	}

	return &MistralProvider{OpenAIProvider: inner}, nil
}
