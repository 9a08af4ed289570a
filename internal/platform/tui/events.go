package tui

import (
	"github.com/vovakirdan/tui-shooter/internal/game"
	"github.com/vovakirdan/tui-shooter/internal/platform/sound"
)

// Bridge adapts simulation notifications into sound cues and caches
// the latest values for the model. It is shared by pointer across Bubble
// Tea model copies, and the game invokes it synchronously from Update, so
// no locking is needed.
type Bridge struct {
	snd *sound.Player

	score, lives, level int
	effects             []game.PowerUpStatus
	gameOver            bool
	finalScore          int
	baselined           bool
}

// NewBridge creates a bridge that plays cues through snd. A nil player is
// fine; cues are dropped.
func NewBridge(snd *sound.Player) *Bridge {
	return &Bridge{snd: snd}
}

// rearm prepares the bridge for a fresh session. The next round of
// notifications re-baselines the counters instead of triggering cues.
func (b *Bridge) rearm() {
	b.baselined = false
	b.gameOver = false
	b.finalScore = 0
	b.effects = nil
}

func (b *Bridge) ScoreChanged(score int) {
	if b.baselined && score > b.score {
		b.snd.Play(sound.CueExplosion)
	}
	b.score = score
}

func (b *Bridge) LivesChanged(lives int) {
	if b.baselined && lives < b.lives {
		b.snd.Play(sound.CueHit)
	}
	b.lives = lives
}

func (b *Bridge) LevelChanged(level int) {
	if b.baselined && level > b.level {
		b.snd.Play(sound.CueLevelUp)
	}
	b.level = level
}

func (b *Bridge) PowerUpsChanged(active []game.PowerUpStatus) {
	if b.baselined {
		for _, st := range active {
			if !hasEffect(b.effects, st.Kind) {
				b.snd.Play(sound.CuePickup)
			}
		}
	}
	b.effects = active
	// The power-up list fires every tick, so after the first batch of
	// reset notifications the counters are current.
	b.baselined = true
}

func (b *Bridge) GameOver(finalScore int) {
	b.gameOver = true
	b.finalScore = finalScore
	b.snd.Play(sound.CueGameOver)
}

func hasEffect(effects []game.PowerUpStatus, kind game.PowerUpKind) bool {
	for _, e := range effects {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
