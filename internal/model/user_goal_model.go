package model

import (
	"time"

	"github.com/google/uuid"
)

// UserGoal is the schema reserved for goal tracking. The goal repository
// is still a stub (see implementation.GoalRepositoryImpl); the table exists
// so a real lookup can land without a migration of callers.
type UserGoal struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserEmail     string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	GoalType      string    `gorm:"type:varchar(100)"`
	CurrentWeight *float64
	TargetWeight  *float64
	TargetDate    *time.Time
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (UserGoal) TableName() string {
	return "user_goals"
}
