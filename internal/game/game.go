package game

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Session states. Paused and GameOver freeze the pipeline; Update keeps
// tracking timestamps so resuming does not integrate the pause as one huge
// delta.
const (
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateGameOver = "gameover"
)

// Game is the simulation root. It owns the entity store, the session
// counters, and the spawn timers, and advances everything through a fixed
// per-tick pipeline: player, enemies, projectiles, power-ups, particles,
// spawning, collisions, difficulty, cleanup.
//
// The zero value is not usable; construct with New and call Reset before
// the first Update. Game is not safe for concurrent use: the driver must
// serialize Update, SetInput, Render, and Reset on one goroutine.
type Game struct {
	cfg      config.ShooterConfig
	runtime  core.RuntimeConfig
	rng      *rand.Rand
	listener Listener

	player      *Player
	enemies     []*Enemy
	projectiles []*Projectile
	powerUps    []*PowerUp
	particles   []*Particle

	input core.InputState

	score     int
	lives     int
	level     int
	gameSpeed float64
	state     string

	frameCount    uint64
	lastTimestamp float64
	hasTimestamp  bool
	elapsedMs     float64
	gameOverFired bool

	enemyTimer   float64
	powerUpTimer float64
}

// New creates a game with the given tuning config and listener. Passing a
// nil listener installs NopListener. The game starts in the game-over
// state; Reset begins the first session.
func New(cfg config.ShooterConfig, listener Listener) *Game {
	if listener == nil {
		listener = NopListener{}
	}
	g := &Game{
		cfg:       cfg,
		listener:  listener,
		input:     core.NewInputState(),
		state:     StateGameOver,
		level:     1,
		gameSpeed: 1,
	}
	g.player = &Player{}
	return g
}

// SetListener replaces the notification sink. Passing nil installs
// NopListener.
func (g *Game) SetListener(l Listener) {
	if l == nil {
		l = NopListener{}
	}
	g.listener = l
}

// Reset starts a fresh session: counters to their initial values, entity
// store emptied, player recentered, timers and RNG reseeded from the
// runtime config. All change listeners fire once with the initial values
// so the presentation layer never shows stale numbers.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.runtime = rt
	seed := rt.Seed
	if seed == 0 {
		seed = 1
	}
	g.rng = rand.New(rand.NewSource(seed))

	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.level = 1
	g.gameSpeed = 1
	g.state = StatePlaying
	g.frameCount = 0
	g.hasTimestamp = false
	g.elapsedMs = 0
	g.gameOverFired = false

	pc := g.cfg.Player
	g.player.Pos = core.Vec2{
		X: g.cfg.World.Width / 2,
		Y: g.cfg.World.Height - pc.BottomOffset,
	}
	g.player.Vel = core.Vec2{}
	g.player.Size = core.Vec2{X: pc.Width, Y: pc.Height}
	g.player.Active = true
	g.player.Health = pc.Health
	g.player.ShootCooldown = 0
	g.player.PowerUps.Clear()

	g.enemies = g.enemies[:0]
	g.projectiles = g.projectiles[:0]
	g.powerUps = g.powerUps[:0]
	g.particles = g.particles[:0]

	g.input.Clear()

	// The enemy timer starts expired so the first tick spawns a wave
	// opener; power-ups wait out a full interval.
	g.enemyTimer = 0
	g.powerUpTimer = g.cfg.PowerUps.SpawnInterval

	g.listener.ScoreChanged(g.score)
	g.listener.LivesChanged(g.lives)
	g.listener.LevelChanged(g.level)
	g.listener.PowerUpsChanged(nil)
}

// SetInput records a press or release for an action. Input is
// level-triggered: the action stays in effect until released.
func (g *Game) SetInput(a core.Action, pressed bool) {
	g.input.Set(a, pressed)
}

// TogglePause flips between playing and paused. No-op after game over.
func (g *Game) TogglePause() {
	switch g.state {
	case StatePlaying:
		g.state = StatePaused
	case StatePaused:
		g.state = StatePlaying
	}
}

// State reports the session counters for the presentation layer.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		Level:    g.level,
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
	}
}

// ElapsedMs reports how long the current session has been simulated,
// excluding paused time.
func (g *Game) ElapsedMs() float64 { return g.elapsedMs }

// Update advances the simulation to the given timestamp, in milliseconds.
// The first call after Reset establishes the time base and simulates a
// zero-length tick; a timestamp earlier than the previous one clamps the
// delta to zero rather than running time backwards.
//
// Pipeline order is fixed. Movement phases see the entity set chosen by
// the previous tick's collisions, and collisions see fully updated
// positions, so reordering would change observable outcomes.
func (g *Game) Update(timestampMs float64) {
	dt := 0.0
	if g.hasTimestamp {
		dt = timestampMs - g.lastTimestamp
		if dt < 0 {
			dt = 0
		}
	}
	g.lastTimestamp = timestampMs
	g.hasTimestamp = true

	if g.state != StatePlaying {
		return
	}

	g.frameCount++
	g.elapsedMs += dt

	g.updatePlayer(dt)
	g.updateEnemies(dt)
	g.updateProjectiles(dt)
	g.updatePowerUps(dt)
	g.updateParticles(dt)
	g.updateSpawning(dt)
	g.resolveCollisions()
	g.updateDifficulty()
	g.cleanup()
}

func (g *Game) updatePlayer(dt float64) {
	p := g.player
	cfg := g.cfg.Player

	vx := 0.0
	if g.input.Held(core.ActionLeft) {
		vx -= cfg.Speed
	}
	if g.input.Held(core.ActionRight) {
		vx += cfg.Speed
	}
	p.Vel = core.Vec2{X: vx}
	p.Integrate(dt)

	half := p.Size.X / 2
	p.Pos.X = core.ClampF(p.Pos.X, half, g.cfg.World.Width-half)

	p.ShootCooldown -= dt
	if p.ShootCooldown < 0 {
		p.ShootCooldown = 0
	}
	if g.input.Held(core.ActionShoot) && p.ShootCooldown <= 0 {
		g.firePlayer()
		if p.PowerUps.Active(PowerRapidFire) {
			p.ShootCooldown = cfg.RapidCooldown
		} else {
			p.ShootCooldown = cfg.ShootCooldown
		}
	}

	p.PowerUps.Tick(dt)
	g.listener.PowerUpsChanged(p.PowerUps.Statuses())
}

// firePlayer spawns one projectile from the player's nose, or three when
// multiShot is active: one straight and two with opposite horizontal
// spread.
func (g *Game) firePlayer() {
	pc := g.cfg.Projectiles
	origin := core.Vec2{
		X: g.player.Pos.X,
		Y: g.player.Pos.Y - g.player.Size.Y/2,
	}
	spreads := []float64{0}
	if g.player.PowerUps.Active(PowerMultiShot) {
		spreads = []float64{0, -pc.SpreadSpeed, pc.SpreadSpeed}
	}
	for _, sx := range spreads {
		g.projectiles = append(g.projectiles, &Projectile{
			GameObject: GameObject{
				Pos:    origin,
				Vel:    core.Vec2{X: sx, Y: -pc.PlayerSpeed},
				Size:   core.Vec2{X: pc.Width, Y: pc.Height},
				Active: true,
			},
			Owner:  OwnerPlayer,
			Damage: pc.PlayerDamage,
		})
	}
}

func (g *Game) updateEnemies(dt float64) {
	ec := g.cfg.Enemies
	for _, e := range g.enemies {
		if !e.Active {
			continue
		}
		e.IntegrateScaled(dt, g.gameSpeed)

		if e.Pos.Y-e.Size.Y/2 > g.cfg.World.Height {
			e.Active = false
			continue
		}

		e.ShootCooldown -= dt
		if e.ShootCooldown < 0 {
			e.ShootCooldown = 0
		}
		if e.ShootCooldown <= 0 && g.rng.Float64() < ec.FireChance {
			g.fireEnemy(e)
			e.ShootCooldown = ec.CooldownMin + g.rng.Float64()*(ec.CooldownMax-ec.CooldownMin)
		}
	}
}

func (g *Game) fireEnemy(e *Enemy) {
	pc := g.cfg.Projectiles
	g.projectiles = append(g.projectiles, &Projectile{
		GameObject: GameObject{
			Pos:    core.Vec2{X: e.Pos.X, Y: e.Pos.Y + e.Size.Y/2},
			Vel:    core.Vec2{Y: pc.EnemySpeed},
			Size:   core.Vec2{X: pc.Width, Y: pc.Height},
			Active: true,
		},
		Owner:  OwnerEnemy,
		Damage: pc.EnemyDamage,
	})
}

func (g *Game) updateProjectiles(dt float64) {
	pad := g.cfg.Projectiles.BoundsPadding
	w, h := g.cfg.World.Width, g.cfg.World.Height
	for _, p := range g.projectiles {
		if !p.Active {
			continue
		}
		p.Integrate(dt)
		if p.Pos.X < -pad || p.Pos.X > w+pad || p.Pos.Y < -pad || p.Pos.Y > h+pad {
			p.Active = false
		}
	}
}

func (g *Game) updatePowerUps(dt float64) {
	pc := g.cfg.PowerUps
	// The bob offset depends on the frame counter, not on elapsed time, so
	// its visual frequency follows the driver's tick rate.
	bob := math.Sin(float64(g.frameCount)*pc.BobFrequency) * pc.BobAmplitude
	for _, p := range g.powerUps {
		if !p.Active {
			continue
		}
		p.Integrate(dt)
		p.Pos.Y += bob

		p.Remaining -= dt
		if p.Remaining <= 0 {
			p.Active = false
		}
	}
}

func (g *Game) updateParticles(dt float64) {
	for _, p := range g.particles {
		if !p.Active {
			continue
		}
		p.Integrate(dt)
		p.Life -= dt
		if p.Life <= 0 {
			p.Active = false
		}
	}
}

func (g *Game) updateDifficulty() {
	if !g.cfg.Gameplay.Progression {
		return
	}
	newLevel := g.score/g.cfg.Gameplay.LevelScore + 1
	if newLevel != g.level {
		g.level = newLevel
		g.gameSpeed = 1 + float64(g.level-1)*g.cfg.Gameplay.SpeedStep
		g.listener.LevelChanged(g.level)
	}
}

// cleanup compacts every entity slice down to its active members,
// preserving order. This is the only place entities are removed, so
// indices stay stable across all earlier pipeline phases.
func (g *Game) cleanup() {
	enemies := g.enemies[:0]
	for _, e := range g.enemies {
		if e.Active {
			enemies = append(enemies, e)
		}
	}
	g.enemies = enemies

	projectiles := g.projectiles[:0]
	for _, p := range g.projectiles {
		if p.Active {
			projectiles = append(projectiles, p)
		}
	}
	g.projectiles = projectiles

	powerUps := g.powerUps[:0]
	for _, p := range g.powerUps {
		if p.Active {
			powerUps = append(powerUps, p)
		}
	}
	g.powerUps = powerUps

	particles := g.particles[:0]
	for _, p := range g.particles {
		if p.Active {
			particles = append(particles, p)
		}
	}
	g.particles = particles
}

func (g *Game) addScore(points int) {
	g.score += points
	g.listener.ScoreChanged(g.score)
}

func (g *Game) loseLife() {
	if g.state == StateGameOver {
		return
	}
	g.lives--
	g.listener.LivesChanged(g.lives)
	if g.lives <= 0 && !g.gameOverFired {
		g.state = StateGameOver
		g.gameOverFired = true
		g.listener.GameOver(g.score)
	}
}

func (g *Game) spawnParticles(at core.Vec2, count int, color core.Color) {
	pc := g.cfg.Particles
	for i := 0; i < count; i++ {
		life := pc.LifeMin + g.rng.Float64()*(pc.LifeMax-pc.LifeMin)
		angle := g.rng.Float64() * 2 * math.Pi
		speed := g.rng.Float64() * pc.Speed
		g.particles = append(g.particles, &Particle{
			GameObject: GameObject{
				Pos:    at,
				Vel:    core.Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
				Size:   core.Vec2{X: 2, Y: 2},
				Active: true,
			},
			Life:    life,
			MaxLife: life,
			Color:   color,
		})
	}
}
