package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultShooterConfig(t *testing.T) {
	cfg := DefaultShooterConfig()

	if cfg.World.Width != 800 || cfg.World.Height != 600 {
		t.Errorf("World = %vx%v, expected 800x600", cfg.World.Width, cfg.World.Height)
	}
	if cfg.Gameplay.Lives != 3 {
		t.Errorf("Lives = %d, expected 3", cfg.Gameplay.Lives)
	}
	if !cfg.Gameplay.Progression {
		t.Error("Progression should be enabled by default")
	}
	if cfg.Player.ShootCooldown != 250 {
		t.Errorf("ShootCooldown = %v, expected 250", cfg.Player.ShootCooldown)
	}
	if cfg.Enemies.Heavy.Health <= cfg.Enemies.Basic.Health {
		t.Error("Heavy enemy should have more health than basic")
	}
	if cfg.Enemies.Fast.Speed <= cfg.Enemies.Basic.Speed {
		t.Error("Fast enemy should be faster than basic")
	}
}

func TestLoadShooterEmbeddedDefault(t *testing.T) {
	// With no custom path and no local configs dir, the embedded YAML
	// should produce the same numbers as the hardcoded defaults.
	tmpDir := t.TempDir()
	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("Chdir failed: %v", err)
	}
	defer os.Chdir(oldWd)
	t.Setenv("HOME", tmpDir)

	cfg, err := LoadShooter("")
	if err != nil {
		t.Fatalf("LoadShooter failed: %v", err)
	}

	def := DefaultShooterConfig()
	if cfg.World.Width != def.World.Width {
		t.Errorf("World width = %v, expected %v", cfg.World.Width, def.World.Width)
	}
	if cfg.Gameplay.Lives != def.Gameplay.Lives {
		t.Errorf("Lives = %d, expected %d", cfg.Gameplay.Lives, def.Gameplay.Lives)
	}
	if cfg.Spawning.EnemyInterval != def.Spawning.EnemyInterval {
		t.Errorf("EnemyInterval = %v, expected %v", cfg.Spawning.EnemyInterval, def.Spawning.EnemyInterval)
	}
}

func TestLoadShooterCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "custom.yaml")

	yaml := `
world:
  width: 400
  height: 300
gameplay:
  lives: 7
`
	if err := os.WriteFile(cfgPath, []byte(yaml), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadShooter(cfgPath)
	if err != nil {
		t.Fatalf("LoadShooter failed: %v", err)
	}

	if cfg.World.Width != 400 || cfg.World.Height != 300 {
		t.Errorf("World = %vx%v, expected 400x300", cfg.World.Width, cfg.World.Height)
	}
	if cfg.Gameplay.Lives != 7 {
		t.Errorf("Lives = %d, expected 7", cfg.Gameplay.Lives)
	}
}

func TestLoadShooterMissingCustomPath(t *testing.T) {
	_, err := LoadShooter("/nonexistent/path/shooter.yaml")
	if err == nil {
		t.Error("LoadShooter should fail for a missing explicit path")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		name   string
		preset DifficultyPreset
		check  func(t *testing.T, cfg ShooterConfig)
	}{
		{
			name:   "easy gives more lives and slower waves",
			preset: DifficultyEasy,
			check: func(t *testing.T, cfg ShooterConfig) {
				if cfg.Gameplay.Lives != 5 {
					t.Errorf("Lives = %d, expected 5", cfg.Gameplay.Lives)
				}
				if cfg.Spawning.EnemyInterval <= 2000 {
					t.Errorf("EnemyInterval = %v, expected > 2000", cfg.Spawning.EnemyInterval)
				}
			},
		},
		{
			name:   "hard gives fewer lives and faster waves",
			preset: DifficultyHard,
			check: func(t *testing.T, cfg ShooterConfig) {
				if cfg.Gameplay.Lives != 2 {
					t.Errorf("Lives = %d, expected 2", cfg.Gameplay.Lives)
				}
				if cfg.Spawning.EnemyInterval >= 2000 {
					t.Errorf("EnemyInterval = %v, expected < 2000", cfg.Spawning.EnemyInterval)
				}
			},
		},
		{
			name:   "fixed disables progression",
			preset: DifficultyFixed,
			check: func(t *testing.T, cfg ShooterConfig) {
				if cfg.Gameplay.Progression {
					t.Error("Progression should be disabled")
				}
			},
		},
		{
			name:   "normal leaves defaults untouched",
			preset: DifficultyNormal,
			check: func(t *testing.T, cfg ShooterConfig) {
				def := DefaultShooterConfig()
				if cfg.Gameplay.Lives != def.Gameplay.Lives {
					t.Errorf("Lives = %d, expected %d", cfg.Gameplay.Lives, def.Gameplay.Lives)
				}
				if cfg.Spawning.EnemyInterval != def.Spawning.EnemyInterval {
					t.Errorf("EnemyInterval changed for normal preset")
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultShooterConfig()
			ApplyPreset(&cfg, tc.preset)
			tc.check(t, cfg)
		})
	}
}
