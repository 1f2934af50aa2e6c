package embedding

import "fmt"

// NewProvider selects the embedding backend by name. The same selection
// must be used by the ingestion CLI and the serving process, and the
// chosen model's output width must match EMBEDDING_DIMENSIONS (the
// migrated vector column): text-embedding-3-small is 1536, nomic-embed-text
// and Gemini text-embedding-004 are 768.
func NewProvider(provider, openAIKey, openAIBaseURL, openAIModel, ollamaBaseURL, ollamaModel, geminiKey string) (EmbeddingProvider, error) {
	switch provider {
	case "openai":
		if openAIKey == "" {
			return nil, fmt.Errorf("openai embedding provider requires an API key")
		}
		return NewOpenAIProvider(openAIKey, openAIBaseURL, openAIModel), nil
	case "ollama":
		return NewOllamaProvider(ollamaBaseURL, ollamaModel), nil
	case "gemini":
		if geminiKey == "" {
			return nil, fmt.Errorf("gemini embedding provider requires an API key")
		}
		return NewGeminiProvider(geminiKey), nil
	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", provider)
	}
}
