package ledger

import (
	"math"

	"github.com/tidelog/tidelog/internal/config"
)

// ResolveGoal derives a user's effective daily goal in milliliters. A profile
// with a weight personalizes the goal; everyone else gets the global default.
func ResolveGoal(profile *Profile, goal config.GoalConfig) int {
	if profile != nil && profile.WeightKg > 0 {
		return int(math.Round(profile.WeightKg * goal.GoalMlPerKg))
	}
	return goal.DailyGoalMl
}
