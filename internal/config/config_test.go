package config

import (
	"os"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.Port != "3000" {
		t.Fatalf("default port = %q, want 3000", cfg.Server.Port)
	}
	if cfg.Goal.DailyGoalMl != 2500 {
		t.Fatalf("default daily goal = %d, want 2500", cfg.Goal.DailyGoalMl)
	}
	if !cfg.Identity.StrictUserIDs {
		t.Fatalf("strict user ids should default to true")
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	os.Setenv("DAILY_GOAL_ML", "3000")
	os.Setenv("GOAL_ML_PER_KG", "30")
	os.Setenv("STRICT_USER_IDS", "false")
	defer func() {
		os.Unsetenv("DAILY_GOAL_ML")
		os.Unsetenv("GOAL_ML_PER_KG")
		os.Unsetenv("STRICT_USER_IDS")
	}()

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Goal.DailyGoalMl != 3000 || cfg.Goal.GoalMlPerKg != 30 {
		t.Fatalf("unexpected goal config: %+v", cfg.Goal)
	}
	if cfg.Identity.StrictUserIDs {
		t.Fatalf("STRICT_USER_IDS=false not honored")
	}
}

func TestLoadConfigRejectsBadBounds(t *testing.T) {
	os.Setenv("MIN_WEIGHT_KG", "500")
	defer os.Unsetenv("MIN_WEIGHT_KG")

	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected error for min weight above max")
	}
}
