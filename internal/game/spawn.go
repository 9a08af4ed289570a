package game

import (
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// updateSpawning drives the two countdown timers. The enemy interval is
// divided by gameSpeed so higher levels spawn faster; the power-up
// interval is fixed. Both timers reset on expiry regardless of what else
// happens in the tick.
func (g *Game) updateSpawning(dt float64) {
	g.enemyTimer -= dt
	if g.enemyTimer <= 0 {
		g.spawnEnemy()
		g.enemyTimer = g.cfg.Spawning.EnemyInterval / g.gameSpeed
	}

	g.powerUpTimer -= dt
	if g.powerUpTimer <= 0 {
		g.spawnPowerUp()
		g.powerUpTimer = g.cfg.PowerUps.SpawnInterval
	}
}

func (g *Game) enemyProfile(kind EnemyKind) config.EnemyProfile {
	switch kind {
	case EnemyFast:
		return g.cfg.Enemies.Fast
	case EnemyHeavy:
		return g.cfg.Enemies.Heavy
	default:
		return g.cfg.Enemies.Basic
	}
}

// spawnEnemy creates one enemy of a uniformly random kind just above the
// top edge, with a random horizontal position inside the edge margins, a
// random drift, and a random initial shoot cooldown so fresh enemies do
// not all fire at once.
func (g *Game) spawnEnemy() {
	kind := EnemyKind(g.rng.Intn(int(enemyKindCount)))
	profile := g.enemyProfile(kind)
	ec := g.cfg.Enemies

	margin := g.cfg.Spawning.EdgeMargin
	x := margin + g.rng.Float64()*(g.cfg.World.Width-2*margin)
	drift := (g.rng.Float64()*2 - 1) * ec.DriftMax

	g.enemies = append(g.enemies, &Enemy{
		GameObject: GameObject{
			Pos:    core.Vec2{X: x, Y: -profile.Height / 2},
			Vel:    core.Vec2{X: drift, Y: profile.Speed},
			Size:   core.Vec2{X: profile.Width, Y: profile.Height},
			Active: true,
		},
		Kind:          kind,
		Health:        profile.Health,
		Points:        profile.Points,
		ShootCooldown: g.rng.Float64() * ec.InitialCooldown,
	})
}

// spawnPowerUp creates one power-up of a uniformly random kind just above
// the top edge. Its lifetime starts counting immediately.
func (g *Game) spawnPowerUp() {
	kind := PowerUpKind(g.rng.Intn(int(powerUpKindCount)))
	pc := g.cfg.PowerUps

	margin := g.cfg.Spawning.EdgeMargin
	x := margin + g.rng.Float64()*(g.cfg.World.Width-2*margin)

	g.powerUps = append(g.powerUps, &PowerUp{
		GameObject: GameObject{
			Pos:    core.Vec2{X: x, Y: -pc.Height / 2},
			Vel:    core.Vec2{Y: pc.FallSpeed},
			Size:   core.Vec2{X: pc.Width, Y: pc.Height},
			Active: true,
		},
		Kind:      kind,
		Remaining: pc.Duration,
	})
}
