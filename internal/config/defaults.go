package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the default shooter configuration.
// The numbers mirror defaults/shooter.yaml so the game works even if the
// embedded file fails to parse.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Width:         40,
			Height:        30,
			Speed:         300,
			BottomOffset:  50,
			Health:        100,
			ShootCooldown: 250,
			RapidCooldown: 100,
		},
		Projectiles: ProjectileConfig{
			PlayerSpeed:   500,
			PlayerDamage:  25,
			EnemySpeed:    300,
			EnemyDamage:   20,
			Width:         4,
			Height:        12,
			BoundsPadding: 10,
			SpreadSpeed:   120,
		},
		Enemies: EnemiesConfig{
			Basic: EnemyProfile{Health: 50, Points: 100, Width: 30, Height: 30, Speed: 60},
			Fast:  EnemyProfile{Health: 25, Points: 150, Width: 22, Height: 22, Speed: 140},
			Heavy: EnemyProfile{Health: 75, Points: 200, Width: 48, Height: 42, Speed: 35},

			DriftMax:        25,
			FireChance:      0.005,
			CooldownMin:     1000,
			CooldownMax:     3000,
			InitialCooldown: 2000,
		},
		PowerUps: PowerUpConfig{
			Duration:      8000,
			SpawnInterval: 15000,
			FallSpeed:     80,
			Width:         24,
			Height:        24,
			BobAmplitude:  0.5,
			BobFrequency:  0.1,
		},
		Spawning: SpawningConfig{
			EnemyInterval: 2000,
			EdgeMargin:    40,
		},
		Particles: ParticlesConfig{
			LifeMin:     500,
			LifeMax:     1000,
			Speed:       120,
			Impact:      5,
			Destruction: 10,
			PlayerHit:   8,
			Pickup:      8,
			Crash:       12,
		},
		Gameplay: GameplayConfig{
			Lives:       3,
			LevelScore:  1000,
			SpeedStep:   0.2,
			Progression: true,
		},
	}
}
