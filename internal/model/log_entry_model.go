package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// LogEntry mirrors the ingestion-owned activity log rows. Field shapes are
// heterogeneous: item_name may hold a JSON string or a JSON array of
// strings, and every nutrition column is nullable. Normalization lives in
// the mapper, not here.
type LogEntry struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserEmail     string         `gorm:"type:varchar(255);not null;index"`
	MealType      string         `gorm:"type:varchar(50)"`
	ItemName      datatypes.JSON `gorm:"type:jsonb"`
	DateTime      *time.Time
	TotalCalories *float64
	TotalCarbs    *float64
	TotalProtein  *float64
	TotalFat      *float64
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

func (LogEntry) TableName() string {
	return "log_entries"
}
