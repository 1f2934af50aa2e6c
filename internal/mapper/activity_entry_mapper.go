package mapper

import (
	"encoding/json"
	"strings"

	"nutrichat-be/internal/entity"
	"nutrichat-be/internal/model"
)

const unknownItem = "Unknown item"

// ActivityEntryMapper normalizes heterogeneous log_entry rows into clean
// entities. Everything downstream of this mapper can assume a single joined
// item string, a fixed category enum and zero-valued nutrition defaults.
type ActivityEntryMapper struct{}

func NewActivityEntryMapper() *ActivityEntryMapper {
	return &ActivityEntryMapper{}
}

func (m *ActivityEntryMapper) ToEntity(e *model.LogEntry) *entity.ActivityEntry {
	if e == nil {
		return nil
	}

	return &entity.ActivityEntry{
		Category:   entity.ParseMealCategory(e.MealType),
		Items:      normalizeItemName(e.ItemName),
		ConsumedAt: e.DateTime,
		Calories:   floatOrZero(e.TotalCalories),
		Carbs:      floatOrZero(e.TotalCarbs),
		Protein:    floatOrZero(e.TotalProtein),
		Fat:        floatOrZero(e.TotalFat),
	}
}

func (m *ActivityEntryMapper) ToEntities(models []*model.LogEntry) []entity.ActivityEntry {
	entries := make([]entity.ActivityEntry, 0, len(models))
	for _, row := range models {
		if e := m.ToEntity(row); e != nil {
			entries = append(entries, *e)
		}
	}
	return entries
}

// normalizeItemName handles the string-or-list shape of item_name:
// a JSON array is comma-joined, a JSON string passes through, and anything
// absent or empty becomes the "Unknown item" marker.
func normalizeItemName(raw []byte) string {
	if len(raw) == 0 {
		return unknownItem
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		joined := strings.Join(list, ", ")
		if strings.TrimSpace(joined) == "" {
			return unknownItem
		}
		return joined
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		if strings.TrimSpace(single) == "" {
			return unknownItem
		}
		return single
	}

	return unknownItem
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
