package implementation

import (
	"context"

	"nutrichat-be/internal/entity"
	"nutrichat-be/internal/mapper"
	"nutrichat-be/internal/model"
	"nutrichat-be/internal/repository/contract"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type ArticleEmbeddingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ArticleChunkMapper
}

func NewArticleEmbeddingRepository(db *gorm.DB) contract.ArticleEmbeddingRepository {
	return &ArticleEmbeddingRepositoryImpl{
		db:     db,
		mapper: mapper.NewArticleChunkMapper(),
	}
}

func (r *ArticleEmbeddingRepositoryImpl) CreateBulk(ctx context.Context, chunks []*entity.ArticleChunk) error {
	if len(chunks) == 0 {
		return nil
	}
	rows := make([]*model.ArticleEmbedding, len(chunks))
	for i, c := range chunks {
		rows[i] = r.mapper.ToModel(c)
	}
	if err := r.db.WithContext(ctx).Create(rows).Error; err != nil {
		return err
	}
	for i, m := range rows {
		*chunks[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *ArticleEmbeddingRepositoryImpl) DeleteBySource(ctx context.Context, source string) error {
	return r.db.WithContext(ctx).Where("source = ?", source).Delete(&model.ArticleEmbedding{}).Error
}

// SearchSimilar runs a pgvector cosine-distance KNN query.
// The query embedding must come from the same provider used at ingestion.
func (r *ArticleEmbeddingRepositoryImpl) SearchSimilar(ctx context.Context, embedding []float32, limit int) ([]entity.ArticleChunk, error) {
	if limit <= 0 {
		limit = 3
	}

	var rows []*model.ArticleEmbedding
	err := r.db.WithContext(ctx).
		Order(gorm.Expr("embedding_value <=> ?", pgvector.NewVector(embedding))).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	chunks := make([]entity.ArticleChunk, 0, len(rows))
	for _, row := range rows {
		if c := r.mapper.ToEntity(row); c != nil {
			chunks = append(chunks, *c)
		}
	}
	return chunks, nil
}

func (r *ArticleEmbeddingRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ArticleEmbedding{}).Count(&count).Error
	return count, err
}
