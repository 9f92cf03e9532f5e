package factory

import (
	"fmt"
	"time"

	"shop-assistant-be/pkg/llm"
	"shop-assistant-be/pkg/llm/gemini"
	"shop-assistant-be/pkg/llm/huggingface"
	"shop-assistant-be/pkg/llm/ollama"
	"shop-assistant-be/pkg/llm/retry"
)

const (
	ProviderNone        = "none"
	ProviderOllama      = "ollama"
	ProviderHuggingFace = "huggingface"
	ProviderGemini      = "gemini"
)

type Config struct {
	Provider    string
	Model       string
	BaseURL     string
	APIKey      string
	MaxAttempts int
}

// NewLLMProvider builds the configured backend. A nil provider with a nil
// error means generation is disabled.
func NewLLMProvider(cfg Config) (llm.LLMProvider, error) {
	var provider llm.LLMProvider

	switch cfg.Provider {
	case "", ProviderNone:
		return nil, nil
	case ProviderOllama:
		provider = ollama.NewOllamaProvider(cfg.BaseURL, cfg.Model)
	case ProviderHuggingFace:
		if cfg.APIKey == "" {
			return nil, nil
		}
		provider = huggingface.NewHuggingFaceProvider(cfg.APIKey, cfg.BaseURL, cfg.Model)
	case ProviderGemini:
		if cfg.APIKey == "" {
			return nil, nil
		}
		provider = gemini.NewGeminiProvider(cfg.APIKey, cfg.BaseURL, cfg.Model)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}

	if cfg.MaxAttempts > 1 {
		provider = retry.NewProvider(provider, cfg.MaxAttempts, 200*time.Millisecond)
	}
	return provider, nil
}
