package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration. It is built once at start-up and
// treated as immutable afterwards; components receive it by injection.
type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	Goal      GoalConfig
	Identity  IdentityConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type StoreConfig struct {
	// DataDir holds the ledger document; created on start-up when absent.
	DataDir  string
	FileName string
}

type GoalConfig struct {
	// DailyGoalMl is the global default goal for users without a weight.
	DailyGoalMl int
	// GoalMlPerKg personalizes the goal when a profile weight is present.
	GoalMlPerKg float64
	MinWeightKg float64
	MaxWeightKg float64
}

type IdentityConfig struct {
	// StrictUserIDs selects the identifier policy: reject invalid ids with a
	// client error (true) or coerce them into the allowed charset (false).
	StrictUserIDs bool
}

type RateLimitConfig struct {
	Enabled bool
	RPS     float64
	Burst   int
}

// LoadConfig loads configuration from environment variables and an optional .env file
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	viper.AutomaticEnv()

	viper.SetDefault("PORT", "3000")
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("DATA_DIR", "./data")
	viper.SetDefault("DATA_FILE", "intake.json")
	viper.SetDefault("DAILY_GOAL_ML", 2500)
	viper.SetDefault("GOAL_ML_PER_KG", 35.0)
	viper.SetDefault("MIN_WEIGHT_KG", 20.0)
	viper.SetDefault("MAX_WEIGHT_KG", 300.0)
	viper.SetDefault("STRICT_USER_IDS", true)
	viper.SetDefault("RATE_LIMIT_ENABLED", false)
	viper.SetDefault("RATE_LIMIT_RPS", 10.0)
	viper.SetDefault("RATE_LIMIT_BURST", 20)

	cfg := &Config{
		Server: ServerConfig{
			Port:         viper.GetString("PORT"),
			Host:         viper.GetString("HOST"),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Store: StoreConfig{
			DataDir:  viper.GetString("DATA_DIR"),
			FileName: viper.GetString("DATA_FILE"),
		},
		Goal: GoalConfig{
			DailyGoalMl: viper.GetInt("DAILY_GOAL_ML"),
			GoalMlPerKg: viper.GetFloat64("GOAL_ML_PER_KG"),
			MinWeightKg: viper.GetFloat64("MIN_WEIGHT_KG"),
			MaxWeightKg: viper.GetFloat64("MAX_WEIGHT_KG"),
		},
		Identity: IdentityConfig{
			StrictUserIDs: viper.GetBool("STRICT_USER_IDS"),
		},
		RateLimit: RateLimitConfig{
			Enabled: viper.GetBool("RATE_LIMIT_ENABLED"),
			RPS:     viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst:   viper.GetInt("RATE_LIMIT_BURST"),
		},
	}

	// Basic validation
	if cfg.Goal.DailyGoalMl <= 0 {
		return nil, fmt.Errorf("DAILY_GOAL_ML must be positive, got %d", cfg.Goal.DailyGoalMl)
	}
	if cfg.Goal.MinWeightKg <= 0 || cfg.Goal.MaxWeightKg <= cfg.Goal.MinWeightKg {
		return nil, fmt.Errorf("weight bounds invalid: min=%v max=%v", cfg.Goal.MinWeightKg, cfg.Goal.MaxWeightKg)
	}

	return cfg, nil
}
