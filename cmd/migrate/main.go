package main

import (
	"fmt"
	"log"

	"nutrichat-be/internal/config"
	"nutrichat-be/internal/model"
	"nutrichat-be/pkg/database"
)

func main() {
	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// pgvector must exist before the embeddings table migrates.
	if err := gormDB.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		log.Fatalf("Failed to create vector extension: %v", err)
	}

	err = gormDB.AutoMigrate(
		&model.LogEntry{},
		&model.UserGoal{},
		&model.ChatTurn{},
		&model.ArticleEmbedding{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	// Pin the embedding column to the configured provider's output width.
	// Changing dimensions invalidates existing vectors; re-run ingestion after.
	ddl := fmt.Sprintf(
		"ALTER TABLE article_embeddings ALTER COLUMN embedding_value TYPE vector(%d)",
		cfg.Ai.EmbeddingDimensions,
	)
	if err := gormDB.Exec(ddl).Error; err != nil {
		log.Fatalf("Failed to set embedding dimension to %d: %v", cfg.Ai.EmbeddingDimensions, err)
	}

	log.Println("Migration completed")
}
