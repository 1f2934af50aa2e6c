package contract

import (
	"context"

	"nutrichat-be/internal/entity"
)

// ChatHistoryRepository persists and replays question/answer turns.
// FindRecentByEmail returns at most limit turns strictly in ascending
// timestamp order (oldest first); the repository owns the reversal of the
// store's descending read.
type ChatHistoryRepository interface {
	FindRecentByEmail(ctx context.Context, email string, limit int) ([]entity.ConversationTurn, error)
	Append(ctx context.Context, email, question, answer string) error
}
