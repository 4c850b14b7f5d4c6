package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/treat-catcher/internal/config"
)

// withFlags sets the record and config flags for one test.
func withFlags(t *testing.T, policy, remote, difficulty, cfgPath string) {
	t.Helper()
	oldPolicy, oldRemote, oldDifficulty, oldConfig := flagPolicy, flagRemote, flagDifficulty, flagConfig
	flagPolicy, flagRemote, flagDifficulty, flagConfig = policy, remote, difficulty, cfgPath
	t.Cleanup(func() {
		flagPolicy, flagRemote, flagDifficulty, flagConfig = oldPolicy, oldRemote, oldDifficulty, oldConfig
	})
}

func TestLoadConfigFlags(t *testing.T) {
	tests := []struct {
		name        string
		policy      string
		remote      string
		difficulty  string
		wantPolicy  string
		wantBackend string
		wantErr     bool
	}{
		{name: "defaults", wantPolicy: config.PolicyLeaderboard, wantBackend: config.BackendLocal},
		{name: "best", policy: "best", wantPolicy: config.PolicyBest, wantBackend: config.BackendLocal},
		{name: "remote", remote: "http://localhost:9/records", wantPolicy: config.PolicyLeaderboard, wantBackend: config.BackendRemote},
		{name: "unknown policy", policy: "highest", wantErr: true},
		{name: "unknown difficulty", difficulty: "insane", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// An empty config file keeps the embedded defaults and skips
			// any user config on the machine running the tests.
			path := filepath.Join(t.TempDir(), "catch.yaml")
			if err := os.WriteFile(path, []byte("{}\n"), 0o644); err != nil {
				t.Fatal(err)
			}
			withFlags(t, tt.policy, tt.remote, tt.difficulty, path)

			cfg, err := loadConfig()
			if tt.wantErr {
				if err == nil {
					t.Fatal("loadConfig() should fail")
				}
				return
			}
			if err != nil {
				t.Fatalf("loadConfig() error = %v", err)
			}
			if cfg.Records.Policy != tt.wantPolicy {
				t.Errorf("Policy = %q, want %q", cfg.Records.Policy, tt.wantPolicy)
			}
			if cfg.Records.Backend != tt.wantBackend {
				t.Errorf("Backend = %q, want %q", cfg.Records.Backend, tt.wantBackend)
			}
			if tt.remote != "" && cfg.Records.Remote.URL != tt.remote {
				t.Errorf("URL = %q, want %q", cfg.Records.Remote.URL, tt.remote)
			}
		})
	}
}

func TestLoadConfigDifficulty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catch.yaml")
	if err := os.WriteFile(path, []byte("{}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	withFlags(t, "", "", "fixed", path)

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Difficulty.Enabled {
		t.Error("fixed difficulty should disable progression")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	withFlags(t, "", "", "", filepath.Join(t.TempDir(), "missing.yaml"))
	if _, err := loadConfig(); err == nil {
		t.Error("an explicit config path that does not exist should fail")
	}
}

func TestPortOf(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{":23234", "23234"},
		{"0.0.0.0:2222", "2222"},
		{"[::1]:22", "22"},
		{"nonsense", "nonsense"},
	}
	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			if got := portOf(tt.addr); got != tt.want {
				t.Errorf("portOf(%q) = %q, want %q", tt.addr, got, tt.want)
			}
		})
	}
}
