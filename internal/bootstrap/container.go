package bootstrap

import (
	"log"
	"time"

	"nutrichat-be/internal/config"
	"nutrichat-be/internal/controller"
	"nutrichat-be/internal/pkg/logger"
	"nutrichat-be/internal/repository/implementation"
	"nutrichat-be/internal/service"
	"nutrichat-be/pkg/embedding"
	"nutrichat-be/pkg/llm/factory"
	"nutrichat-be/pkg/rag/retrieval"

	"gorm.io/gorm"
)

// Container holds every long-lived handle. Built once at process start;
// everything inside is safe to share across concurrent requests.
type Container struct {
	ChatController controller.IChatController
	Logger         logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Repositories
	activityRepo := implementation.NewActivityLogRepository(db)
	goalRepo := implementation.NewGoalRepository(db)
	historyRepo := implementation.NewChatHistoryRepository(db)
	embeddingRepo := implementation.NewArticleEmbeddingRepository(db)

	// AI providers
	embeddingProvider, err := embedding.NewProvider(
		cfg.Ai.EmbeddingProvider,
		cfg.Ai.OpenAIApiKey,
		cfg.Ai.OpenAIBaseURL,
		cfg.Ai.OpenAIEmbeddingModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.OllamaEmbeddingModel,
		cfg.Ai.GoogleGemini,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize Embedding Provider: %v", err)
	}
	log.Printf("[INFO] Using Embedding Provider: %s", cfg.Ai.EmbeddingProvider)

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OpenAIApiKey,
		cfg.Ai.OpenAIBaseURL,
		cfg.Ai.OllamaBaseURL,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	retriever := retrieval.NewRetriever(embeddingProvider, embeddingRepo)

	chatService := service.NewChatService(
		activityRepo,
		goalRepo,
		historyRepo,
		retriever,
		llmProvider,
		sysLogger,
		service.Options{
			HistoryLimit:     cfg.Chat.HistoryLimit,
			ActivityLogLimit: cfg.Chat.ActivityLogLimit,
			RetrievalTopK:    cfg.Chat.RetrievalTopK,
			Temperature:      cfg.Chat.Temperature,
			AiTimeout:        time.Duration(cfg.Ai.RequestTimeoutSecs) * time.Second,
		},
	)

	return &Container{
		ChatController: controller.NewChatController(chatService),
		Logger:         sysLogger,
	}
}
