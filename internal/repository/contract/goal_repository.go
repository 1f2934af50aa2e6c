package contract

import (
	"context"

	"nutrichat-be/internal/entity"
)

// GoalRepository looks up a user's goal record. A (nil, nil) return means
// no goal is set; callers must degrade to the no-goal sentinel.
type GoalRepository interface {
	FindByEmail(ctx context.Context, email string) (*entity.GoalRecord, error)
}
