package contract

import (
	"context"

	"nutrichat-be/internal/entity"
)

// ActivityLogRepository reads a user's recorded meals. Entries come back
// already normalized (joined item names, category enum, zero defaults) and
// in store-native order; no ordering is promised.
type ActivityLogRepository interface {
	FindRecentByEmail(ctx context.Context, email string, limit int) ([]entity.ActivityEntry, error)
}
