package entity

import (
	"strings"
	"time"
)

// MealCategory is the normalized bucket an activity entry belongs to.
type MealCategory string

const (
	CategoryBreakfast MealCategory = "breakfast"
	CategoryLunch     MealCategory = "lunch"
	CategoryDinner    MealCategory = "dinner"
	CategorySnack     MealCategory = "snack"
	CategoryUnknown   MealCategory = "unknown"
)

// KnownCategories lists the buckets that get their own summary section,
// in the order they appear in the assembled prompt.
var KnownCategories = []MealCategory{
	CategorySnack,
	CategoryBreakfast,
	CategoryLunch,
	CategoryDinner,
}

// ParseMealCategory maps a raw store value onto a category bucket.
// Matching is case-insensitive and tolerates the plural "snacks" form.
// Anything unrecognized maps to CategoryUnknown.
func ParseMealCategory(raw string) MealCategory {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "breakfast":
		return CategoryBreakfast
	case "lunch":
		return CategoryLunch
	case "dinner":
		return CategoryDinner
	case "snack", "snacks":
		return CategorySnack
	default:
		return CategoryUnknown
	}
}

// ActivityEntry is one recorded instance of consumption with its
// nutritional metadata. Immutable once fetched; ingestion happens elsewhere.
type ActivityEntry struct {
	Category   MealCategory
	Items      string
	ConsumedAt *time.Time
	Calories   float64
	Carbs      float64
	Protein    float64
	Fat        float64
}
