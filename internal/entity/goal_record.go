package entity

import "time"

// GoalRecord is a user's target objective and tracked progress value.
// A nil *GoalRecord means no goal has been set and degrades to a fixed
// sentinel in the assembled prompt.
type GoalRecord struct {
	GoalType      string
	CurrentWeight float64
	TargetWeight  float64
	TargetDate    *time.Time
}
