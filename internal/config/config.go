// Package config provides YAML-based game configuration loading and
// difficulty presets for the shooter.
package config

// ShooterConfig contains all tunable parameters for the shooter simulation.
type ShooterConfig struct {
	World       WorldConfig       `yaml:"world"`
	Player      PlayerConfig      `yaml:"player"`
	Projectiles ProjectileConfig  `yaml:"projectiles"`
	Enemies     EnemiesConfig     `yaml:"enemies"`
	PowerUps    PowerUpConfig     `yaml:"powerups"`
	Spawning    SpawningConfig    `yaml:"spawning"`
	Particles   ParticlesConfig   `yaml:"particles"`
	Gameplay    GameplayConfig    `yaml:"gameplay"`
}

// WorldConfig defines the virtual playfield dimensions in world pixels.
// The simulation runs in this space; the platform scales it to terminal cells.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines player parameters.
type PlayerConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Speed         float64 `yaml:"speed"`           // Horizontal speed in px/s
	BottomOffset  float64 `yaml:"bottom_offset"`   // Distance of player center from bottom edge
	Health        int     `yaml:"health"`          // Reserved; gameplay uses lives
	ShootCooldown float64 `yaml:"shoot_cooldown"`  // ms between shots
	RapidCooldown float64 `yaml:"rapid_cooldown"`  // ms between shots under rapidFire
}

// ProjectileConfig defines projectile parameters for both owners.
type ProjectileConfig struct {
	PlayerSpeed   float64 `yaml:"player_speed"`  // px/s, fired upward
	PlayerDamage  int     `yaml:"player_damage"`
	EnemySpeed    float64 `yaml:"enemy_speed"` // px/s, fired downward
	EnemyDamage   int     `yaml:"enemy_damage"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	BoundsPadding float64 `yaml:"bounds_padding"` // Off-screen margin before despawn
	SpreadSpeed   float64 `yaml:"spread_speed"`   // Horizontal px/s of multiShot side shots
}

// EnemyProfile defines one enemy variant.
type EnemyProfile struct {
	Health int     `yaml:"health"`
	Points int     `yaml:"points"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // Descent speed in px/s before gameSpeed scaling
}

// EnemiesConfig defines the enemy variants and their firing behavior.
type EnemiesConfig struct {
	Basic EnemyProfile `yaml:"basic"`
	Fast  EnemyProfile `yaml:"fast"`
	Heavy EnemyProfile `yaml:"heavy"`

	DriftMax        float64 `yaml:"drift_max"`         // Max abs horizontal drift in px/s
	FireChance      float64 `yaml:"fire_chance"`       // Per-tick fire probability once cooled down
	CooldownMin     float64 `yaml:"cooldown_min"`      // ms, lower bound of post-shot cooldown
	CooldownMax     float64 `yaml:"cooldown_max"`      // ms, upper bound (exclusive)
	InitialCooldown float64 `yaml:"initial_cooldown"`  // ms, upper bound of spawn cooldown (exclusive)
}

// PowerUpConfig defines power-up parameters.
type PowerUpConfig struct {
	Duration      float64 `yaml:"duration"`       // ms on screen and of effect
	SpawnInterval float64 `yaml:"spawn_interval"` // ms between spawns, not scaled by gameSpeed
	FallSpeed     float64 `yaml:"fall_speed"`     // px/s
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	BobAmplitude  float64 `yaml:"bob_amplitude"` // px per frame of sinusoidal bob
	BobFrequency  float64 `yaml:"bob_frequency"` // radians per frame
}

// SpawningConfig defines enemy spawn timing.
type SpawningConfig struct {
	EnemyInterval float64 `yaml:"enemy_interval"` // ms between enemy spawns, divided by gameSpeed
	EdgeMargin    float64 `yaml:"edge_margin"`    // Horizontal margin kept free at spawn
}

// ParticlesConfig defines cosmetic particle behavior.
type ParticlesConfig struct {
	LifeMin     float64 `yaml:"life_min"` // ms
	LifeMax     float64 `yaml:"life_max"` // ms (exclusive)
	Speed       float64 `yaml:"speed"`    // Max abs velocity per axis in px/s
	Impact      int     `yaml:"impact"`      // Burst size on projectile hit
	Destruction int     `yaml:"destruction"` // Burst size on enemy destroyed
	PlayerHit   int     `yaml:"player_hit"`  // Burst size on player hit by projectile
	Pickup      int     `yaml:"pickup"`      // Burst size on power-up pickup
	Crash       int     `yaml:"crash"`       // Burst size on player/enemy body collision
}

// GameplayConfig defines session rules and difficulty progression.
type GameplayConfig struct {
	Lives       int     `yaml:"lives"`
	LevelScore  int     `yaml:"level_score"`  // Score per difficulty level
	SpeedStep   float64 `yaml:"speed_step"`   // gameSpeed increase per level
	Progression bool    `yaml:"progression"`  // When false, gameSpeed stays at 1
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *ShooterConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Spawning.EnemyInterval = 2600
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Spawning.EnemyInterval = 1500
	case DifficultyFixed:
		cfg.Gameplay.Progression = false
	}
}
