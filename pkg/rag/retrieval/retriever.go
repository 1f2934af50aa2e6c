package retrieval

import (
	"context"

	"nutrichat-be/internal/entity"
	"nutrichat-be/internal/repository/contract"
	"nutrichat-be/pkg/embedding"
)

// Retriever answers free-text queries with the k nearest article chunks
// from the pre-built index. The index itself is read-only at serving time.
type Retriever struct {
	embeddingProvider embedding.EmbeddingProvider
	embeddingRepo     contract.ArticleEmbeddingRepository
}

func NewRetriever(embeddingProvider embedding.EmbeddingProvider, embeddingRepo contract.ArticleEmbeddingRepository) *Retriever {
	return &Retriever{
		embeddingProvider: embeddingProvider,
		embeddingRepo:     embeddingRepo,
	}
}

func (r *Retriever) Retrieve(ctx context.Context, query string, k int) ([]entity.ArticleChunk, error) {
	vector, err := r.embeddingProvider.Embed(ctx, query, embedding.TaskTypeRetrievalQuery)
	if err != nil {
		return nil, err
	}
	return r.embeddingRepo.SearchSimilar(ctx, vector, k)
}
