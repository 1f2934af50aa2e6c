package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"nutrichat-be/internal/entity"
)

// Fixed summary strings. These are part of the prompt contract: tests and
// downstream prompt text depend on them byte-for-byte.
const (
	NoGoalSummary        = "User goal: No specific goals set"
	NoMealsPlaceholder   = "No recent meals found"
	NoHistoryPlaceholder = "This is the start of our conversation"

	goalTypeNotSet = "not set"
	unknownDate    = "Unknown date"
)

var categoryPlaceholders = map[entity.MealCategory]string{
	entity.CategorySnack:     "No snacks recorded",
	entity.CategoryBreakfast: "No breakfast recorded",
	entity.CategoryLunch:     "No lunch recorded",
	entity.CategoryDinner:    "No dinner recorded",
}

// Bundle is the assembled textual context for a single request. It is
// derived, ephemeral and never persisted; every known category key always
// holds a non-empty string.
type Bundle struct {
	GoalSummary          string
	AllEntriesSummary    string
	PerCategorySummaries map[entity.MealCategory]string
	HistorySummary       string
}

// Assemble merges the goal, activity entries and conversation history into
// a Bundle. Pure and deterministic: identical inputs yield byte-identical
// summaries, and empty inputs degrade to the fixed placeholders.
func Assemble(goal *entity.GoalRecord, entries []entity.ActivityEntry, history []entity.ConversationTurn) Bundle {
	return Bundle{
		GoalSummary:          summarizeGoal(goal),
		AllEntriesSummary:    summarizeEntries(entries),
		PerCategorySummaries: summarizeCategories(entries),
		HistorySummary:       summarizeHistory(history),
	}
}

// PromptContext renders the bundle as one prompt-context block. Section
// order is fixed: persona, goal, history, all entries, per-category
// breakdown, behavioral instructions.
func (b Bundle) PromptContext() string {
	var sb strings.Builder

	sb.WriteString("<task>\n")
	sb.WriteString("You are a nutrition assistant. Answer the user's question using their goal, their recorded meals and the conversation so far.\n")
	sb.WriteString("</task>\n\n")

	sb.WriteString("User Information:\n")
	sb.WriteString(b.GoalSummary)
	sb.WriteString("\n\n")

	sb.WriteString("Conversation So Far:\n")
	sb.WriteString(b.HistorySummary)
	sb.WriteString("\n\n")

	sb.WriteString("Recent Meal History (All Meals):\n")
	sb.WriteString(b.AllEntriesSummary)
	sb.WriteString("\n\n")

	sb.WriteString("Categorized Meals:\n")
	sb.WriteString("Snacks: " + b.PerCategorySummaries[entity.CategorySnack] + "\n")
	sb.WriteString("Breakfast: " + b.PerCategorySummaries[entity.CategoryBreakfast] + "\n")
	sb.WriteString("Lunch: " + b.PerCategorySummaries[entity.CategoryLunch] + "\n")
	sb.WriteString("Dinner: " + b.PerCategorySummaries[entity.CategoryDinner] + "\n\n")

	sb.WriteString("<guidelines>\n")
	sb.WriteString("The meal data above includes detailed nutritional information (calories, carbs, protein, fat) for each meal.\n")
	sb.WriteString("1. When asked about a specific meal type (snacks, breakfast, lunch, dinner), use only the data from that category.\n")
	sb.WriteString("2. When the user refers to their \"last question\", they mean the most recent question listed in the conversation above, not the question they are asking now.\n")
	sb.WriteString("3. If the data above does not contain what is being asked, say so honestly.\n")
	sb.WriteString("</guidelines>")

	return sb.String()
}

// FormatEntry renders one activity entry as its fixed single-line form.
func FormatEntry(e entity.ActivityEntry) string {
	date := unknownDate
	if e.ConsumedAt != nil {
		date = e.ConsumedAt.Format("2006-01-02")
	}
	return fmt.Sprintf("%s on %s: %s - %s kcal (Carbs: %sg, Protein: %sg, Fat: %sg)",
		string(e.Category),
		date,
		e.Items,
		formatNumber(e.Calories),
		formatNumber(e.Carbs),
		formatNumber(e.Protein),
		formatNumber(e.Fat),
	)
}

func summarizeGoal(goal *entity.GoalRecord) string {
	if goal == nil {
		return NoGoalSummary
	}

	goalType := goal.GoalType
	if goalType == "" {
		goalType = goalTypeNotSet
	}
	targetDate := goalTypeNotSet
	if goal.TargetDate != nil {
		targetDate = goal.TargetDate.Format("2006-01-02")
	}

	return fmt.Sprintf("User goal: %s, Current: %skg, Target: %skg by %s",
		goalType,
		formatNumber(goal.CurrentWeight),
		formatNumber(goal.TargetWeight),
		targetDate,
	)
}

func summarizeEntries(entries []entity.ActivityEntry) string {
	if len(entries) == 0 {
		return NoMealsPlaceholder
	}
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = FormatEntry(e)
	}
	return strings.Join(lines, "\n")
}

// summarizeCategories buckets entries by category. Unknown entries appear
// only in the all-entries summary, never in a per-category bucket.
func summarizeCategories(entries []entity.ActivityEntry) map[entity.MealCategory]string {
	buckets := make(map[entity.MealCategory][]string)
	for _, e := range entries {
		if e.Category == entity.CategoryUnknown {
			continue
		}
		buckets[e.Category] = append(buckets[e.Category], FormatEntry(e))
	}

	summaries := make(map[entity.MealCategory]string, len(entity.KnownCategories))
	for _, cat := range entity.KnownCategories {
		if lines := buckets[cat]; len(lines) > 0 {
			summaries[cat] = strings.Join(lines, "\n")
		} else {
			summaries[cat] = categoryPlaceholders[cat]
		}
	}
	return summaries
}

func summarizeHistory(history []entity.ConversationTurn) string {
	if len(history) == 0 {
		return NoHistoryPlaceholder
	}
	pairs := make([]string, len(history))
	for i, turn := range history {
		pairs[i] = "User: " + turn.Question + "\nBot: " + turn.Answer
	}
	return strings.Join(pairs, "\n")
}

// formatNumber keeps whole numbers free of trailing decimals so a 95 kcal
// snack renders as "95", not "95.000000".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
