// Package config provides YAML-based configuration loading and the
// score-driven difficulty model for the catcher game.
package config

import (
	"fmt"
	"time"
)

// CatchConfig contains all configuration for the catcher game.
type CatchConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Player     PlayerConfig     `yaml:"player"`
	Treats     TreatConfig      `yaml:"treats"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Cosmetics  []CosmeticConfig `yaml:"cosmetics"`
	Records    RecordsConfig    `yaml:"records"`
	Lifecycle  LifecycleConfig  `yaml:"lifecycle"`
}

// FieldConfig is the logical play field size.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines the catcher sprite.
type PlayerConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Speed  int `yaml:"speed"` // Horizontal units per tick
}

// TreatConfig defines the falling objects.
type TreatConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DifficultyConfig defines how fall speed and spawn cadence follow the score.
//
//	fallSpeed     = min(BaseSpeed + score/SpeedStep, MaxSpeed)
//	spawnInterval = max(MinInterval, BaseInterval - score*IntervalDecay)
type DifficultyConfig struct {
	Enabled       bool `yaml:"enabled"`
	BaseSpeed     int  `yaml:"base_speed"`
	SpeedStep     int  `yaml:"speed_step"` // Points per +1 fall speed
	MaxSpeed      int  `yaml:"max_speed"`
	BaseInterval  int  `yaml:"base_interval"` // Frames between spawns at score 0
	MinInterval   int  `yaml:"min_interval"`
	IntervalDecay int  `yaml:"interval_decay"` // Frames removed per point
}

// CosmeticConfig is a decoration unlocked once the score reaches Threshold.
type CosmeticConfig struct {
	Name      string `yaml:"name"`
	Threshold int    `yaml:"threshold"`
}

// Record policies.
const (
	PolicyBest        = "best"
	PolicyLeaderboard = "leaderboard"
)

// Leaderboard backends.
const (
	BackendLocal  = "local"
	BackendRemote = "remote"
)

// RecordsConfig selects how finished runs are persisted.
type RecordsConfig struct {
	Policy  string       `yaml:"policy"`  // "best" or "leaderboard"
	Backend string       `yaml:"backend"` // "local" or "remote" (leaderboard only)
	Limit   int          `yaml:"limit"`   // Leaderboard length
	Guest   string       `yaml:"guest"`   // Name used for empty identity input
	Remote  RemoteConfig `yaml:"remote"`
}

// RemoteConfig points at an HTTP record service that stores the whole
// leaderboard as one document.
type RemoteConfig struct {
	URL       string        `yaml:"url"`
	KeyHeader string        `yaml:"key_header"`
	KeyEnv    string        `yaml:"key_env"` // Environment variable holding the access key
	Timeout   time.Duration `yaml:"timeout"`
}

// LifecycleConfig controls the game-over to restart transition.
type LifecycleConfig struct {
	RestartDelay time.Duration `yaml:"restart_delay"`
}

// Validate reports the first setting that would make the simulation
// meaningless.
func (c CatchConfig) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("config: field size must be positive, got %dx%d", c.Field.Width, c.Field.Height)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("config: player size must be positive, got %dx%d", c.Player.Width, c.Player.Height)
	case c.Player.Width > c.Field.Width || c.Player.Height > c.Field.Height:
		return fmt.Errorf("config: player does not fit in the field")
	case c.Treats.Width <= 0 || c.Treats.Height <= 0:
		return fmt.Errorf("config: treat size must be positive, got %dx%d", c.Treats.Width, c.Treats.Height)
	case c.Treats.Width > c.Field.Width:
		return fmt.Errorf("config: treat is wider than the field")
	case c.Player.Speed < 0:
		return fmt.Errorf("config: player speed must not be negative")
	}

	d := c.Difficulty
	switch {
	case d.BaseSpeed <= 0:
		return fmt.Errorf("config: difficulty.base_speed must be positive")
	case d.MaxSpeed < d.BaseSpeed:
		return fmt.Errorf("config: difficulty.max_speed %d is below base_speed %d", d.MaxSpeed, d.BaseSpeed)
	case d.MinInterval < 0:
		return fmt.Errorf("config: difficulty.min_interval must not be negative")
	case d.BaseInterval < d.MinInterval:
		return fmt.Errorf("config: difficulty.base_interval %d is below min_interval %d", d.BaseInterval, d.MinInterval)
	case d.IntervalDecay < 0:
		return fmt.Errorf("config: difficulty.interval_decay must not be negative")
	}

	switch c.Records.Policy {
	case PolicyBest, PolicyLeaderboard:
	default:
		return fmt.Errorf("config: unknown records.policy %q", c.Records.Policy)
	}
	switch c.Records.Backend {
	case BackendLocal:
	case BackendRemote:
		if c.Records.Remote.URL == "" {
			return fmt.Errorf("config: records.remote.url is required for the remote backend")
		}
	default:
		return fmt.Errorf("config: unknown records.backend %q", c.Records.Backend)
	}

	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. Empty selects normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}
