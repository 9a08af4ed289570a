package game

import (
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// resolveCollisions runs the four collision passes in their fixed order:
// player projectiles vs enemies, enemy projectiles vs player, enemy bodies
// vs player, power-ups vs player. Overlap is strict on every axis, so
// exactly-touching edges never collide. Passes only mark entities
// inactive; compaction happens afterwards in cleanup.
func (g *Game) resolveCollisions() {
	g.collidePlayerShots()
	g.collideEnemyShots()
	g.collideEnemyBodies()
	g.collidePickups()
}

// collidePlayerShots applies player projectile damage to enemies. Each
// projectile is consumed by its first overlapping enemy in store order and
// cannot damage a second one in the same tick.
func (g *Game) collidePlayerShots() {
	for _, p := range g.projectiles {
		if !p.Active || p.Owner != OwnerPlayer {
			continue
		}
		for _, e := range g.enemies {
			if !e.Active {
				continue
			}
			if !p.Bounds().Intersects(e.Bounds()) {
				continue
			}
			p.Active = false
			e.Health -= p.Damage
			g.spawnParticles(e.Pos, g.cfg.Particles.Impact, core.ColorOrange)
			if e.Health <= 0 {
				e.Active = false
				g.addScore(e.Points)
				g.spawnParticles(e.Pos, g.cfg.Particles.Destruction, core.ColorBrightRed)
			}
			break
		}
	}
}

// collideEnemyShots applies enemy projectile hits to the player. The
// projectile is consumed even when a shield absorbs the hit.
func (g *Game) collideEnemyShots() {
	playerBox := g.player.Bounds()
	for _, p := range g.projectiles {
		if !p.Active || p.Owner != OwnerEnemy {
			continue
		}
		if !p.Bounds().Intersects(playerBox) {
			continue
		}
		p.Active = false
		if g.player.PowerUps.Active(PowerShield) {
			continue
		}
		g.spawnParticles(g.player.Pos, g.cfg.Particles.PlayerHit, core.ColorBrightYellow)
		g.loseLife()
	}
}

// collideEnemyBodies handles ram collisions. The enemy is destroyed on
// contact without awarding points; the shield protects the player but does
// not save the enemy. The crash burst belongs to the unshielded branch,
// alongside the life loss.
func (g *Game) collideEnemyBodies() {
	playerBox := g.player.Bounds()
	for _, e := range g.enemies {
		if !e.Active {
			continue
		}
		if !e.Bounds().Intersects(playerBox) {
			continue
		}
		e.Active = false
		if g.player.PowerUps.Active(PowerShield) {
			continue
		}
		g.spawnParticles(e.Pos, g.cfg.Particles.Crash, core.ColorBrightRed)
		g.loseLife()
	}
}

// collidePickups transfers overlapped power-ups into the player's effect
// timers. The transferred duration is the power-up's remaining lifetime,
// and a pickup of an already-active kind overwrites the timer rather than
// stacking.
func (g *Game) collidePickups() {
	playerBox := g.player.Bounds()
	for _, p := range g.powerUps {
		if !p.Active {
			continue
		}
		if !p.Bounds().Intersects(playerBox) {
			continue
		}
		p.Active = false
		g.player.PowerUps.Activate(p.Kind, p.Remaining)
		g.spawnParticles(p.Pos, g.cfg.Particles.Pickup, core.ColorBrightGreen)
	}
}
