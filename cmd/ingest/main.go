package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"nutrichat-be/internal/config"
	"nutrichat-be/internal/entity"
	"nutrichat-be/internal/repository/contract"
	"nutrichat-be/internal/repository/implementation"
	"nutrichat-be/pkg/database"
	"nutrichat-be/pkg/embedding"
	"nutrichat-be/pkg/utils"
)

// Offline ingestion: walk the articles directory, split every text file
// into overlapping chunks, embed each chunk and persist it into the
// pgvector index. Run before the REST server starts answering.
func main() {
	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

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
		log.Fatalf("Failed to initialize Embedding Provider: %v", err)
	}

	embeddingRepo := implementation.NewArticleEmbeddingRepository(gormDB)

	ctx := context.Background()
	files, err := os.ReadDir(cfg.Chat.ArticlesDataDir)
	if err != nil {
		log.Fatalf("Failed to read articles dir %s: %v", cfg.Chat.ArticlesDataDir, err)
	}

	total := 0
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		path := filepath.Join(cfg.Chat.ArticlesDataDir, file.Name())
		n, err := ingestFile(ctx, cfg, embeddingProvider, embeddingRepo, path, file.Name())
		if err != nil {
			log.Fatalf("Failed to ingest %s: %v", path, err)
		}
		log.Printf("Ingested %s: %d chunks", file.Name(), n)
		total += n
	}

	count, err := embeddingRepo.Count(ctx)
	if err != nil {
		log.Fatalf("Failed to count index: %v", err)
	}
	log.Printf("Done. Ingested %d chunks this run, index now holds %d", total, count)
}

func ingestFile(
	ctx context.Context,
	cfg *config.Config,
	provider embedding.EmbeddingProvider,
	repo contract.ArticleEmbeddingRepository,
	path, source string,
) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	pieces := utils.SplitText(string(raw), cfg.Chat.ChunkSize, cfg.Chat.ChunkOverlap)

	chunks := make([]*entity.ArticleChunk, 0, len(pieces))
	for i, piece := range pieces {
		vector, err := provider.Embed(ctx, piece, embedding.TaskTypeRetrievalDocument)
		if err != nil {
			return 0, err
		}
		chunks = append(chunks, &entity.ArticleChunk{
			Source:     source,
			ChunkIndex: i,
			Content:    piece,
			Embedding:  vector,
		})
	}

	// Re-ingesting a source replaces its previous chunks.
	if err := repo.DeleteBySource(ctx, source); err != nil {
		return 0, err
	}
	if err := repo.CreateBulk(ctx, chunks); err != nil {
		return 0, err
	}

	return len(chunks), nil
}
