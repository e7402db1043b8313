package config

import (
	"strings"
	"testing"
)

func TestDefaultGameConfig(t *testing.T) {
	cfg := DefaultGameConfig()

	if cfg.Spawn.Interval != 1.0 {
		t.Errorf("Spawn.Interval = %v, want 1.0", cfg.Spawn.Interval)
	}
	if cfg.Spawn.MinCrossDuration != 2.0 || cfg.Spawn.MaxCrossDuration != 4.0 {
		t.Errorf("cross duration = [%v, %v), want [2, 4)", cfg.Spawn.MinCrossDuration, cfg.Spawn.MaxCrossDuration)
	}
	if cfg.Projectile.Speed() != 500 {
		t.Errorf("Projectile.Speed() = %v, want 500", cfg.Projectile.Speed())
	}
	if cfg.WinScore != 20 {
		t.Errorf("WinScore = %d, want 20", cfg.WinScore)
	}
	if cfg.LoseOnEscape {
		t.Error("LoseOnEscape should default to false")
	}
	if cfg.GameOver.DisplayDuration != 3.0 || cfg.GameOver.TransitionDuration != 0.5 {
		t.Errorf("GameOver = %+v", cfg.GameOver)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestParseGameConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *GameConfig)
	}{
		{
			name: "partial config keeps defaults",
			yamlContent: `
winScore: 5
spawn:
  interval: 0.5
`,
			validate: func(t *testing.T, cfg *GameConfig) {
				if cfg.WinScore != 5 {
					t.Errorf("WinScore = %d, want 5", cfg.WinScore)
				}
				if cfg.Spawn.Interval != 0.5 {
					t.Errorf("Spawn.Interval = %v, want 0.5", cfg.Spawn.Interval)
				}
				if cfg.Spawn.MaxCrossDuration != 4.0 {
					t.Errorf("MaxCrossDuration should keep default, got %v", cfg.Spawn.MaxCrossDuration)
				}
				if cfg.Audio.HitSound != "SOUND_HIT" {
					t.Errorf("Audio.HitSound should keep default, got %q", cfg.Audio.HitSound)
				}
			},
		},
		{
			name: "full config",
			yamlContent: `
spawn:
  interval: 2
  minCrossDuration: 3
  maxCrossDuration: 6
projectile:
  distance: 1200
  duration: 3
winScore: 10
loseOnEscape: true
gameOver:
  displayDuration: 1
  transitionDuration: 0
audio:
  backgroundMusic: ""
  hitSound: SOUND_BOOM
  launchSound: ""
`,
			validate: func(t *testing.T, cfg *GameConfig) {
				if !cfg.LoseOnEscape {
					t.Error("LoseOnEscape should be true")
				}
				if cfg.Projectile.Speed() != 400 {
					t.Errorf("Speed() = %v, want 400", cfg.Projectile.Speed())
				}
				if cfg.Audio.BackgroundMusic != "" || cfg.Audio.HitSound != "SOUND_BOOM" {
					t.Errorf("Audio = %+v", cfg.Audio)
				}
			},
		},
		{
			name:        "inverted cross duration",
			yamlContent: "spawn:\n  minCrossDuration: 5\n  maxCrossDuration: 4\n",
			wantErr:     true,
			errContains: "cross duration range invalid",
		},
		{
			name:        "zero win score",
			yamlContent: "winScore: 0\n",
			wantErr:     true,
			errContains: "win score",
		},
		{
			name:        "malformed yaml",
			yamlContent: "spawn: [1, 2\n",
			wantErr:     true,
			errContains: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseGameConfig([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadGameConfigWithoutEmbeddedInit(t *testing.T) {
	if _, err := LoadGameConfig(GameConfigPath); err == nil {
		t.Error("expected error when embedded resources are not initialized")
	}
}
