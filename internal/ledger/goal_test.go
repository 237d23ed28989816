package ledger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tidelog/tidelog/internal/config"
)

func TestResolveGoalFromWeight(t *testing.T) {
	goal := config.GoalConfig{DailyGoalMl: 2500, GoalMlPerKg: 35}

	require.Equal(t, 2450, ResolveGoal(&Profile{WeightKg: 70}, goal))
	require.Equal(t, 2888, ResolveGoal(&Profile{WeightKg: 82.5}, goal))
}

func TestResolveGoalFallsBackToDefault(t *testing.T) {
	goal := config.GoalConfig{DailyGoalMl: 2500, GoalMlPerKg: 35}

	require.Equal(t, 2500, ResolveGoal(nil, goal))
	require.Equal(t, 2500, ResolveGoal(&Profile{}, goal))
}
