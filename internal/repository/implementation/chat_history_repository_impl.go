package implementation

import (
	"context"

	"nutrichat-be/internal/entity"
	"nutrichat-be/internal/mapper"
	"nutrichat-be/internal/model"
	"nutrichat-be/internal/repository/contract"
	"nutrichat-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatHistoryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatTurnMapper
}

func NewChatHistoryRepository(db *gorm.DB) contract.ChatHistoryRepository {
	return &ChatHistoryRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatTurnMapper(),
	}
}

func (r *ChatHistoryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// FindRecentByEmail reads the newest turns descending, then reverses so
// callers always see ascending chronological order (oldest first).
func (r *ChatHistoryRepositoryImpl) FindRecentByEmail(ctx context.Context, email string, limit int) ([]entity.ConversationTurn, error) {
	if limit <= 0 {
		limit = 5
	}

	var rows []*model.ChatTurn
	query := r.applySpecifications(r.db.WithContext(ctx),
		specification.ByUserEmail{Email: email},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{N: limit},
	)
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(oldestFirst(rows)), nil
}

// oldestFirst reverses the store's newest-first read in place so callers
// always see ascending chronological order.
func oldestFirst(rows []*model.ChatTurn) []*model.ChatTurn {
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
	return rows
}

func (r *ChatHistoryRepositoryImpl) Append(ctx context.Context, email, question, answer string) error {
	turn := model.ChatTurn{
		Id:        uuid.New(),
		UserEmail: email,
		Question:  question,
		Answer:    answer,
	}
	return r.db.WithContext(ctx).Create(&turn).Error
}
