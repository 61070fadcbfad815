package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseGameConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *GameConfig)
	}{
		{
			name: "full config",
			yamlContent: `
windowScale: 3
startingLives: 5
playerSpeed: 100
playerFireCooldown: 0.3
enemyPathSpeed: 3
animationBeat: 0.4
textFlashInterval: 0.2
phases:
  intro: 1
  stageBanner: 0.5
  ready: 0.5
  stageAdvance: 0.5
  gameOver: 2
`,
			validate: func(t *testing.T, cfg *GameConfig) {
				if cfg.WindowScale != 3 {
					t.Errorf("WindowScale = %d, want 3", cfg.WindowScale)
				}
				if cfg.StartingLives != 5 {
					t.Errorf("StartingLives = %d, want 5", cfg.StartingLives)
				}
				if cfg.EnemyPathSpeed != 3 {
					t.Errorf("EnemyPathSpeed = %v, want 3", cfg.EnemyPathSpeed)
				}
				if cfg.Phases.Intro != 1 {
					t.Errorf("Phases.Intro = %v, want 1", cfg.Phases.Intro)
				}
			},
		},
		{
			name:        "partial config keeps defaults",
			yamlContent: "startingLives: 2\n",
			validate: func(t *testing.T, cfg *GameConfig) {
				if cfg.StartingLives != 2 {
					t.Errorf("StartingLives = %d, want 2", cfg.StartingLives)
				}
				if cfg.Phases.Intro != IntroDuration {
					t.Errorf("Phases.Intro = %v, want default %v", cfg.Phases.Intro, IntroDuration)
				}
				if cfg.EnemyPathSpeed != EnemyPathSpeed {
					t.Errorf("EnemyPathSpeed = %v, want default %v", cfg.EnemyPathSpeed, EnemyPathSpeed)
				}
			},
		},
		{
			name:        "empty document",
			yamlContent: "",
			validate: func(t *testing.T, cfg *GameConfig) {
				if cfg.StartingLives != StartingLives {
					t.Errorf("StartingLives = %d, want %d", cfg.StartingLives, StartingLives)
				}
			},
		},
		{
			name:        "zero lives",
			yamlContent: "startingLives: 0\n",
			wantErr:     true,
			errContains: "startingLives",
		},
		{
			name:        "negative path speed",
			yamlContent: "enemyPathSpeed: -1\n",
			wantErr:     true,
			errContains: "enemyPathSpeed",
		},
		{
			name:        "window scale too large",
			yamlContent: "windowScale: 20\n",
			wantErr:     true,
			errContains: "windowScale",
		},
		{
			name:        "zero ready duration",
			yamlContent: "phases:\n  ready: 0\n",
			wantErr:     true,
			errContains: "phases.ready",
		},
		{
			name:        "malformed yaml",
			yamlContent: "phases: [1, 2\n",
			wantErr:     true,
			errContains: "parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseGameConfig([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
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

func TestLoadGameConfigFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "galaga.yaml")
	if err := os.WriteFile(path, []byte("startingLives: 4\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadGameConfig(path)
	if err != nil {
		t.Fatalf("LoadGameConfig() error: %v", err)
	}
	if cfg.StartingLives != 4 {
		t.Errorf("StartingLives = %d, want 4", cfg.StartingLives)
	}
}

func TestLoadGameConfigMissingFile(t *testing.T) {
	_, err := LoadGameConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestCellPosition(t *testing.T) {
	x, y := CellPosition(0, 5)
	if x != FormationBaseX || y != FormationBaseY {
		t.Errorf("CellPosition(0,5) = (%v,%v), want (%v,%v)", x, y, float64(FormationBaseX), FormationBaseY)
	}
	x0, _ := CellPosition(2, 0)
	x9, _ := CellPosition(2, 9)
	if x9-x0 != 9*FormationColSpacing {
		t.Errorf("column span = %v, want %v", x9-x0, 9*FormationColSpacing)
	}
}
