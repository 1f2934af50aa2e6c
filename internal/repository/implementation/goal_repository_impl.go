package implementation

import (
	"context"

	"nutrichat-be/internal/entity"
	"nutrichat-be/internal/repository/contract"

	"gorm.io/gorm"
)

type GoalRepositoryImpl struct {
	db *gorm.DB
}

func NewGoalRepository(db *gorm.DB) contract.GoalRepository {
	return &GoalRepositoryImpl{db: db}
}

// FindByEmail currently reports no goal for every user.
// TODO: read from user_goals once the mobile client starts writing
// goal records; the table and model already exist.
func (r *GoalRepositoryImpl) FindByEmail(ctx context.Context, email string) (*entity.GoalRecord, error) {
	return nil, nil
}
