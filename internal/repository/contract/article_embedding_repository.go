package contract

import (
	"context"

	"nutrichat-be/internal/entity"
)

// ArticleEmbeddingRepository is the vector index over ingested article
// chunks. SearchSimilar returns the limit nearest chunks by cosine
// distance. CreateBulk is used only by the offline ingestion pipeline.
type ArticleEmbeddingRepository interface {
	CreateBulk(ctx context.Context, chunks []*entity.ArticleChunk) error
	DeleteBySource(ctx context.Context, source string) error
	SearchSimilar(ctx context.Context, embedding []float32, limit int) ([]entity.ArticleChunk, error)
	Count(ctx context.Context) (int64, error)
}
