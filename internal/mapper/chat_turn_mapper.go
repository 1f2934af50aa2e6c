package mapper

import (
	"nutrichat-be/internal/entity"
	"nutrichat-be/internal/model"
)

type ChatTurnMapper struct{}

func NewChatTurnMapper() *ChatTurnMapper {
	return &ChatTurnMapper{}
}

func (m *ChatTurnMapper) ToEntity(t *model.ChatTurn) *entity.ConversationTurn {
	if t == nil {
		return nil
	}
	return &entity.ConversationTurn{
		Question:  t.Question,
		Answer:    t.Answer,
		CreatedAt: t.CreatedAt,
	}
}

func (m *ChatTurnMapper) ToEntities(models []*model.ChatTurn) []entity.ConversationTurn {
	turns := make([]entity.ConversationTurn, 0, len(models))
	for _, row := range models {
		if t := m.ToEntity(row); t != nil {
			turns = append(turns, *t)
		}
	}
	return turns
}
