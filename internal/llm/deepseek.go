package llm

import "fmt"

const defaultDeepSeekBaseURL = "https://api.deepseek.com/v1"

// deepseekModels maps friendly names to DeepSeek model IDs.
var deepseekModels = map[string]string{
	"deepseek-chat":     "deepseek-chat",
	"deepseek-reasoner": "deepseek-reasoner",
}

// DeepSeekProvider targets the DeepSeek API, which is OpenAI-compatible,
// so the OpenAI SDK is reused with a different base URL.
type DeepSeekProvider struct {
	*OpenAIProvider
}

// NewDeepSeekProvider creates a provider targeting the DeepSeek API.
func NewDeepSeekProvider(cfg DeepSeekConfig) (*DeepSeekProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("deepseek API key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultDeepSeekBaseURL
	}

	inner, err := newOpenAIProviderRaw(OpenAIConfig{
		APIKey:  cfg.APIKey,
		Model:   resolveModel(cfg.Model, deepseekModels),
		BaseURL: baseURL,
	})
	if err != nil {
		return nil, err
	}

	return &DeepSeekProvider{OpenAIProvider: inner}, nil
}
