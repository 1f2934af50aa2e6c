package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadEmbeddingDimensionDefault(t *testing.T) {
	// An unset or empty value falls back to the text-embedding-3-small width.
	t.Setenv("EMBEDDING_DIMENSIONS", "")

	cfg := Load()
	assert.Equal(t, 1536, cfg.Ai.EmbeddingDimensions)
}

func TestLoadEmbeddingDimensionOverride(t *testing.T) {
	t.Setenv("EMBEDDING_PROVIDER", "gemini")
	t.Setenv("EMBEDDING_DIMENSIONS", "768")

	cfg := Load()
	assert.Equal(t, "gemini", cfg.Ai.EmbeddingProvider)
	assert.Equal(t, 768, cfg.Ai.EmbeddingDimensions)
}

func TestLoadChatDefaults(t *testing.T) {
	for _, key := range []string{
		"CHAT_TEMPERATURE", "RETRIEVAL_TOP_K", "HISTORY_LIMIT", "ACTIVITY_LOG_LIMIT",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, 0.7, cfg.Chat.Temperature)
	assert.Equal(t, 3, cfg.Chat.RetrievalTopK)
	assert.Equal(t, 5, cfg.Chat.HistoryLimit)
	assert.Equal(t, 10, cfg.Chat.ActivityLogLimit)
}
