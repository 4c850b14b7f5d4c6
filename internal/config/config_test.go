package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}

	want := DefaultCatchConfig()
	if cfg.Field != want.Field || cfg.Player != want.Player || cfg.Treats != want.Treats {
		t.Errorf("geometry differs: got %+v %+v %+v", cfg.Field, cfg.Player, cfg.Treats)
	}
	if cfg.Difficulty != want.Difficulty {
		t.Errorf("difficulty differs: got %+v, expected %+v", cfg.Difficulty, want.Difficulty)
	}
	if cfg.Records.Policy != want.Records.Policy || cfg.Records.Limit != want.Records.Limit {
		t.Errorf("records differ: got %+v", cfg.Records)
	}
	if cfg.Lifecycle.RestartDelay != 2*time.Second {
		t.Errorf("restart delay = %v, expected 2s", cfg.Lifecycle.RestartDelay)
	}
	if cfg.Records.Remote.Timeout != 5*time.Second {
		t.Errorf("remote timeout = %v, expected 5s", cfg.Records.Remote.Timeout)
	}
	if len(cfg.Cosmetics) != 2 || cfg.Cosmetics[0].Name != "hat" || cfg.Cosmetics[1].Threshold != 20 {
		t.Errorf("cosmetics = %+v", cfg.Cosmetics)
	}
}

func TestLoadCatchCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catch.yaml")
	data := []byte("player:\n  speed: 15\nrecords:\n  policy: best\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadCatch(path)
	if err != nil {
		t.Fatalf("LoadCatch() failed: %v", err)
	}

	if cfg.Player.Speed != 15 {
		t.Errorf("Player.Speed = %d, expected 15", cfg.Player.Speed)
	}
	if cfg.Player.Width != 100 {
		t.Errorf("unset keys should keep defaults, Player.Width = %d", cfg.Player.Width)
	}
	if cfg.Records.Policy != PolicyBest {
		t.Errorf("Records.Policy = %q, expected best", cfg.Records.Policy)
	}
}

func TestLoadCatchCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadCatch(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing explicit config should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("field: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCatch(bad); err == nil {
		t.Error("malformed explicit config should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("field:\n  width: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCatch(invalid); err == nil || !strings.Contains(err.Error(), "field size") {
		t.Errorf("invalid config should fail validation, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CatchConfig)
		ok     bool
	}{
		{"defaults", func(*CatchConfig) {}, true},
		{"player wider than field", func(c *CatchConfig) { c.Player.Width = 900 }, false},
		{"zero treat", func(c *CatchConfig) { c.Treats.Height = 0 }, false},
		{"max below base speed", func(c *CatchConfig) { c.Difficulty.MaxSpeed = 1 }, false},
		{"interval below floor", func(c *CatchConfig) { c.Difficulty.BaseInterval = 10 }, false},
		{"unknown policy", func(c *CatchConfig) { c.Records.Policy = "cloud" }, false},
		{"remote without url", func(c *CatchConfig) { c.Records.Backend = BackendRemote }, false},
		{"remote with url", func(c *CatchConfig) {
			c.Records.Backend = BackendRemote
			c.Records.Remote.URL = "https://example.com/b/1"
		}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultCatchConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.ok && err == nil {
				t.Error("Validate() = nil, expected an error")
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("empty preset = %q, %v; expected normal", p, err)
	}
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, err)
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("unknown preset should fail")
	}
}

func TestApplyCatchPreset(t *testing.T) {
	for _, preset := range []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed} {
		t.Run(string(preset), func(t *testing.T) {
			cfg := DefaultCatchConfig()
			ApplyCatchPreset(&cfg, preset)
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
			if preset == DifficultyFixed && cfg.Difficulty.Enabled {
				t.Error("fixed preset should disable progression")
			}
			if preset != DifficultyFixed && !cfg.Difficulty.Enabled {
				t.Error("non-fixed presets should enable progression")
			}
		})
	}

	cfg := DefaultCatchConfig()
	ApplyCatchPreset(&cfg, DifficultyNormal)
	if cfg.Difficulty != DefaultCatchConfig().Difficulty {
		t.Error("normal preset should keep the default difficulty")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	if got := ExpandPath("~/.catch/scores.db"); got != filepath.Join(home, ".catch", "scores.db") {
		t.Errorf("ExpandPath() = %q", got)
	}
	if got := ExpandPath("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("absolute paths should be unchanged, got %q", got)
	}
}
