package mapper

import (
	"testing"
	"time"

	"nutrichat-be/internal/entity"
	"nutrichat-be/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestNormalizeItemName(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
		want string
	}{
		{"json array is comma joined", []byte(`["eggs","toast","juice"]`), "eggs, toast, juice"},
		{"single-element array", []byte(`["apple"]`), "apple"},
		{"json string passes through", []byte(`"grilled cheese"`), "grilled cheese"},
		{"absent field", nil, "Unknown item"},
		{"empty string", []byte(`""`), "Unknown item"},
		{"empty array", []byte(`[]`), "Unknown item"},
		{"json null", []byte(`null`), "Unknown item"},
		{"unparseable payload", []byte(`{"weird":1}`), "Unknown item"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeItemName(tt.raw))
		})
	}
}

func TestCategoryNormalizationIsCaseInsensitive(t *testing.T) {
	m := NewActivityEntryMapper()

	for _, raw := range []string{"Breakfast", "BREAKFAST", "breakfast"} {
		e := m.ToEntity(&model.LogEntry{MealType: raw})
		require.NotNil(t, e)
		assert.Equal(t, entity.CategoryBreakfast, e.Category, "meal_type %q", raw)
	}

	tests := []struct {
		raw  string
		want entity.MealCategory
	}{
		{"snacks", entity.CategorySnack},
		{"Snack", entity.CategorySnack},
		{"lunch", entity.CategoryLunch},
		{"DINNER", entity.CategoryDinner},
		{"brunch", entity.CategoryUnknown},
		{"", entity.CategoryUnknown},
	}
	for _, tt := range tests {
		e := m.ToEntity(&model.LogEntry{MealType: tt.raw})
		assert.Equal(t, tt.want, e.Category, "meal_type %q", tt.raw)
	}
}

func TestToEntityDefaults(t *testing.T) {
	m := NewActivityEntryMapper()

	e := m.ToEntity(&model.LogEntry{MealType: "snack"})
	require.NotNil(t, e)
	assert.Equal(t, "Unknown item", e.Items)
	assert.Nil(t, e.ConsumedAt)
	assert.Zero(t, e.Calories)
	assert.Zero(t, e.Carbs)
	assert.Zero(t, e.Protein)
	assert.Zero(t, e.Fat)
}

func TestToEntityFullRow(t *testing.T) {
	m := NewActivityEntryMapper()
	when := time.Date(2024, 1, 1, 8, 30, 0, 0, time.UTC)
	cal, carbs, protein, fat := 95.0, 25.0, 0.5, 0.3

	e := m.ToEntity(&model.LogEntry{
		UserEmail:     "user@example.com",
		MealType:      "Snacks",
		ItemName:      datatypes.JSON(`"apple"`),
		DateTime:      &when,
		TotalCalories: &cal,
		TotalCarbs:    &carbs,
		TotalProtein:  &protein,
		TotalFat:      &fat,
	})

	require.NotNil(t, e)
	assert.Equal(t, entity.CategorySnack, e.Category)
	assert.Equal(t, "apple", e.Items)
	assert.Equal(t, when, *e.ConsumedAt)
	assert.Equal(t, 95.0, e.Calories)
	assert.Equal(t, 25.0, e.Carbs)
	assert.Equal(t, 0.5, e.Protein)
	assert.Equal(t, 0.3, e.Fat)
}

func TestToEntitiesSkipsNothing(t *testing.T) {
	m := NewActivityEntryMapper()
	rows := []*model.LogEntry{
		{MealType: "breakfast", ItemName: datatypes.JSON(`["eggs"]`)},
		{MealType: "unknown-thing"},
	}

	entries := m.ToEntities(rows)
	require.Len(t, entries, 2)
	assert.Equal(t, entity.CategoryBreakfast, entries[0].Category)
	assert.Equal(t, entity.CategoryUnknown, entries[1].Category)
}
