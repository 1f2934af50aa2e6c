package factory

import (
	"fmt"

	"nutrichat-be/pkg/llm"
	"nutrichat-be/pkg/llm/ollama"
	"nutrichat-be/pkg/llm/openai"
)

// NewLLMProvider selects the chat backend by name.
func NewLLMProvider(provider, model, openAIKey, openAIBaseURL, ollamaBaseURL string) (llm.LLMProvider, error) {
	switch provider {
	case "openai":
		if openAIKey == "" {
			return nil, fmt.Errorf("openai provider requires an API key")
		}
		return openai.NewOpenAIProvider(openAIKey, openAIBaseURL, model), nil
	case "ollama":
		return ollama.NewOllamaProvider(ollamaBaseURL, model), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", provider)
	}
}
