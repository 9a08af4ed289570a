package game

import (
	"math"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Snapshot is a copy of the observable simulation state at one tick. It
// decouples inspection from the live entity store and backs the
// determinism tests via Hash.
type Snapshot struct {
	Frame     uint64
	Score     int
	Lives     int
	Level     int
	GameSpeed float64
	State     string

	Player      PlayerSnapshot
	Enemies     []EnemySnapshot
	Projectiles []ProjectileSnapshot
	PowerUps    []PowerUpSnapshot
	Particles   []ParticleSnapshot
}

type PlayerSnapshot struct {
	Pos      core.Vec2
	Size     core.Vec2
	Cooldown float64
	Effects  []PowerUpStatus
}

type EnemySnapshot struct {
	Kind   EnemyKind
	Pos    core.Vec2
	Size   core.Vec2
	Health int
}

type ProjectileSnapshot struct {
	Owner Owner
	Pos   core.Vec2
	Size  core.Vec2
}

type PowerUpSnapshot struct {
	Kind      PowerUpKind
	Pos       core.Vec2
	Remaining float64
}

type ParticleSnapshot struct {
	Pos   core.Vec2
	Fade  float64
	Color core.Color
}

// Snapshot captures the current state. Inactive entities are excluded;
// when called between ticks (the supported usage) none exist anyway.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Frame:     g.frameCount,
		Score:     g.score,
		Lives:     g.lives,
		Level:     g.level,
		GameSpeed: g.gameSpeed,
		State:     g.state,
		Player: PlayerSnapshot{
			Pos:      g.player.Pos,
			Size:     g.player.Size,
			Cooldown: g.player.ShootCooldown,
			Effects:  g.player.PowerUps.Statuses(),
		},
	}
	for _, e := range g.enemies {
		if !e.Active {
			continue
		}
		s.Enemies = append(s.Enemies, EnemySnapshot{
			Kind: e.Kind, Pos: e.Pos, Size: e.Size, Health: e.Health,
		})
	}
	for _, p := range g.projectiles {
		if !p.Active {
			continue
		}
		s.Projectiles = append(s.Projectiles, ProjectileSnapshot{
			Owner: p.Owner, Pos: p.Pos, Size: p.Size,
		})
	}
	for _, p := range g.powerUps {
		if !p.Active {
			continue
		}
		s.PowerUps = append(s.PowerUps, PowerUpSnapshot{
			Kind: p.Kind, Pos: p.Pos, Remaining: p.Remaining,
		})
	}
	for _, p := range g.particles {
		if !p.Active {
			continue
		}
		s.Particles = append(s.Particles, ParticleSnapshot{
			Pos: p.Pos, Fade: p.Fade(), Color: p.Color,
		})
	}
	return s
}

// Hash folds the snapshot into a single FNV-1a style value. Two runs with
// the same seed, config, and input/timestamp sequence produce equal hashes
// on every tick.
func (s Snapshot) Hash() uint64 {
	h := uint64(14695981039346656037)
	mix := func(v uint64) {
		h ^= v
		h *= 1099511628211
	}
	mixF := func(f float64) { mix(math.Float64bits(f)) }

	mix(s.Frame)
	mix(uint64(s.Score))
	mix(uint64(int64(s.Lives)))
	mix(uint64(s.Level))
	mixF(s.GameSpeed)
	for _, c := range s.State {
		mix(uint64(c))
	}

	mixF(s.Player.Pos.X)
	mixF(s.Player.Pos.Y)
	mixF(s.Player.Cooldown)
	for _, e := range s.Player.Effects {
		mix(uint64(e.Kind))
		mixF(e.Seconds)
	}
	for _, e := range s.Enemies {
		mix(uint64(e.Kind))
		mixF(e.Pos.X)
		mixF(e.Pos.Y)
		mix(uint64(int64(e.Health)))
	}
	for _, p := range s.Projectiles {
		mix(uint64(p.Owner))
		mixF(p.Pos.X)
		mixF(p.Pos.Y)
	}
	for _, p := range s.PowerUps {
		mix(uint64(p.Kind))
		mixF(p.Pos.X)
		mixF(p.Pos.Y)
		mixF(p.Remaining)
	}
	for _, p := range s.Particles {
		mixF(p.Pos.X)
		mixF(p.Pos.Y)
		mixF(p.Fade)
	}
	return h
}
