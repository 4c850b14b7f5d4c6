package config

import "testing"

func TestDifficultyScenarios(t *testing.T) {
	d := NewDifficultyModel(DefaultCatchConfig().Difficulty)

	tests := []struct {
		name         string
		score        int
		wantSpeed    int
		wantInterval int
	}{
		{"start", 0, 3, 100},
		{"score 12", 12, 5, 76},
		{"score 40 clamps both", 40, 8, 50},
		{"first speed step", 5, 4, 90},
		{"just below step", 4, 3, 92},
		{"far past caps", 10000, 8, 50},
		{"negative treated as zero", -7, 3, 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			speed, interval := d.At(tc.score)
			if speed != tc.wantSpeed {
				t.Errorf("fallSpeed(%d) = %d, expected %d", tc.score, speed, tc.wantSpeed)
			}
			if interval != tc.wantInterval {
				t.Errorf("spawnInterval(%d) = %d, expected %d", tc.score, interval, tc.wantInterval)
			}
		})
	}
}

func TestDifficultyMonotonicAndBounded(t *testing.T) {
	cfg := DefaultCatchConfig().Difficulty
	d := NewDifficultyModel(cfg)

	prevSpeed, prevInterval := d.At(0)
	for s := 1; s <= 500; s++ {
		speed, interval := d.At(s)
		if speed < prevSpeed {
			t.Fatalf("fallSpeed decreased at score %d: %d -> %d", s, prevSpeed, speed)
		}
		if interval > prevInterval {
			t.Fatalf("spawnInterval increased at score %d: %d -> %d", s, prevInterval, interval)
		}
		if speed > cfg.MaxSpeed {
			t.Fatalf("fallSpeed(%d) = %d exceeds cap %d", s, speed, cfg.MaxSpeed)
		}
		if interval < cfg.MinInterval {
			t.Fatalf("spawnInterval(%d) = %d below floor %d", s, interval, cfg.MinInterval)
		}
		prevSpeed, prevInterval = speed, interval
	}
}

func TestDifficultyDisabled(t *testing.T) {
	cfg := DefaultCatchConfig().Difficulty
	cfg.Enabled = false
	d := NewDifficultyModel(cfg)

	for _, s := range []int{0, 12, 40, 1000} {
		speed, interval := d.At(s)
		if speed != cfg.BaseSpeed || interval != cfg.BaseInterval {
			t.Errorf("At(%d) = (%d, %d), expected fixed (%d, %d)", s, speed, interval, cfg.BaseSpeed, cfg.BaseInterval)
		}
	}
}
