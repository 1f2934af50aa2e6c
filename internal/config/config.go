package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Ai       AIConfig
	Chat     ChatConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Connection string
}

type AIConfig struct {
	EmbeddingProvider    string // "openai", "ollama" or "gemini"
	LLMProvider          string // "openai" or "ollama"
	LLMModel             string // e.g. "gpt-4o-mini", "llama3"
	OpenAIApiKey         string
	OpenAIBaseURL        string
	OpenAIEmbeddingModel string
	OllamaBaseURL        string
	OllamaEmbeddingModel string
	GoogleGemini         string
	EmbeddingDimensions  int // must match the chosen embedding model's output width
	RequestTimeoutSecs   int
}

type ChatConfig struct {
	Temperature      float64
	RetrievalTopK    int
	HistoryLimit     int
	ActivityLogLimit int
	ArticlesDataDir  string
	ChunkSize        int
	ChunkOverlap     int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "5000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Ai: AIConfig{
			EmbeddingProvider:    getEnv("EMBEDDING_PROVIDER", "openai"),
			LLMProvider:          getEnv("LLM_PROVIDER", "openai"),
			LLMModel:             getEnv("CHAT_MODEL", "gpt-4o-mini"),
			OpenAIApiKey:         getEnv("OPENAI_API_KEY", ""),
			OpenAIBaseURL:        getEnv("OPENAI_BASE_URL", ""),
			OpenAIEmbeddingModel: getEnv("OPENAI_EMBEDDING_MODEL", "text-embedding-3-small"),
			OllamaBaseURL:        getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaEmbeddingModel: getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
			GoogleGemini:         getEnv("GOOGLE_GEMINI_API_KEY", ""),
			// 1536 for text-embedding-3-small; nomic-embed-text and
			// Gemini text-embedding-004 both produce 768.
			EmbeddingDimensions: getEnvAsInt("EMBEDDING_DIMENSIONS", 1536),
			RequestTimeoutSecs:  getEnvAsInt("AI_REQUEST_TIMEOUT_SECONDS", 60),
		},
		Chat: ChatConfig{
			Temperature:      getEnvAsFloat("CHAT_TEMPERATURE", 0.7),
			RetrievalTopK:    getEnvAsInt("RETRIEVAL_TOP_K", 3),
			HistoryLimit:     getEnvAsInt("HISTORY_LIMIT", 5),
			ActivityLogLimit: getEnvAsInt("ACTIVITY_LOG_LIMIT", 10),
			ArticlesDataDir:  getEnv("ARTICLES_DATA_DIR", "data"),
			ChunkSize:        getEnvAsInt("ARTICLE_CHUNK_SIZE", 500),
			ChunkOverlap:     getEnvAsInt("ARTICLE_CHUNK_OVERLAP", 50),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
