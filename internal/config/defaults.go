package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/catch.yaml
var defaultCatchYAML []byte

// DefaultCatchConfig returns the built-in configuration. It mirrors
// defaults/catch.yaml and is used when even the embedded file fails to parse.
func DefaultCatchConfig() CatchConfig {
	return CatchConfig{
		Field: FieldConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Width:  100,
			Height: 80,
			Speed:  10,
		},
		Treats: TreatConfig{
			Width:  40,
			Height: 40,
		},
		Difficulty: DifficultyConfig{
			Enabled:       true,
			BaseSpeed:     3,
			SpeedStep:     5,
			MaxSpeed:      8,
			BaseInterval:  100,
			MinInterval:   50,
			IntervalDecay: 2,
		},
		Cosmetics: []CosmeticConfig{
			{Name: "hat", Threshold: 10},
			{Name: "bow", Threshold: 20},
		},
		Records: RecordsConfig{
			Policy:  PolicyLeaderboard,
			Backend: BackendLocal,
			Limit:   10,
			Guest:   "Guest",
			Remote: RemoteConfig{
				KeyHeader: "X-Master-Key",
				KeyEnv:    "CATCH_RECORD_KEY",
				Timeout:   5 * time.Second,
			},
		},
		Lifecycle: LifecycleConfig{
			RestartDelay: 2 * time.Second,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultCatchYAML
}
