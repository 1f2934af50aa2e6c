package implementation

import (
	"context"

	"nutrichat-be/internal/entity"
	"nutrichat-be/internal/mapper"
	"nutrichat-be/internal/model"
	"nutrichat-be/internal/repository/contract"
	"nutrichat-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ActivityLogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ActivityEntryMapper
}

func NewActivityLogRepository(db *gorm.DB) contract.ActivityLogRepository {
	return &ActivityLogRepositoryImpl{
		db:     db,
		mapper: mapper.NewActivityEntryMapper(),
	}
}

func (r *ActivityLogRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// FindRecentByEmail fetches up to limit rows for the user in store-native
// order. Ordering by meal time would need a composite index; callers must
// not rely on any particular order.
func (r *ActivityLogRepositoryImpl) FindRecentByEmail(ctx context.Context, email string, limit int) ([]entity.ActivityEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	var rows []*model.LogEntry
	query := r.applySpecifications(r.db.WithContext(ctx),
		specification.ByUserEmail{Email: email},
		specification.Limit{N: limit},
	)
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(rows), nil
}
