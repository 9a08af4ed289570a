package game

import (
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Particle is purely cosmetic debris spawned in bursts by damage,
// destruction, and pickup events.
type Particle struct {
	GameObject
	Life    float64 // ms remaining
	MaxLife float64
	Color   core.Color
}

// Fade returns the life ratio in [0, 1] used for fade-out rendering.
func (p *Particle) Fade() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return core.ClampF(p.Life/p.MaxLife, 0, 1)
}
