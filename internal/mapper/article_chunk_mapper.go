package mapper

import (
	"nutrichat-be/internal/entity"
	"nutrichat-be/internal/model"

	"github.com/pgvector/pgvector-go"
)

type ArticleChunkMapper struct{}

func NewArticleChunkMapper() *ArticleChunkMapper {
	return &ArticleChunkMapper{}
}

func (m *ArticleChunkMapper) ToEntity(e *model.ArticleEmbedding) *entity.ArticleChunk {
	if e == nil {
		return nil
	}
	return &entity.ArticleChunk{
		Id:         e.Id,
		Source:     e.Source,
		ChunkIndex: e.ChunkIndex,
		Content:    e.Content,
		Embedding:  e.EmbeddingValue.Slice(),
		CreatedAt:  e.CreatedAt,
	}
}

func (m *ArticleChunkMapper) ToModel(e *entity.ArticleChunk) *model.ArticleEmbedding {
	if e == nil {
		return nil
	}
	return &model.ArticleEmbedding{
		Id:             e.Id,
		Source:         e.Source,
		ChunkIndex:     e.ChunkIndex,
		Content:        e.Content,
		EmbeddingValue: pgvector.NewVector(e.Embedding),
		CreatedAt:      e.CreatedAt,
	}
}
