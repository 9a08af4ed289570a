package game

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Glyphs per entity class. Sizes in world pixels are projected to cell
// rectangles, so wide entities like the heavy enemy occupy several cells.
const (
	glyphPlayer     = '▲'
	glyphBasic      = '▼'
	glyphFast       = '▾'
	glyphHeavy      = '█'
	glyphPlayerShot = '│'
	glyphEnemyShot  = '║'
)

// Render draws the world and HUD into the screen buffer. Row 0 carries the
// session counters, row 1 the active power-up effects; the playfield is
// scaled into the remaining rows. Pause and game-over states draw a
// centered overlay on top.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()
	if w < 10 || h < 6 {
		return
	}

	g.renderHUD(dst)

	fieldTop := 2
	fieldH := h - fieldTop
	proj := projection{
		worldW: g.cfg.World.Width,
		worldH: g.cfg.World.Height,
		cellsW: w,
		cellsH: fieldH,
		offY:   fieldTop,
	}

	for _, p := range g.particles {
		if !p.Active {
			continue
		}
		x, y := proj.point(p.Pos)
		dst.SetCell(x, y, particleGlyph(p.Fade()), p.Color)
	}

	for _, p := range g.powerUps {
		if !p.Active {
			continue
		}
		x, y := proj.point(p.Pos)
		dst.SetCell(x, y, powerUpGlyph(p.Kind), powerUpColor(p.Kind))
	}

	for _, e := range g.enemies {
		if !e.Active {
			continue
		}
		glyph, color := enemyStyle(e.Kind)
		proj.fill(dst, e.Bounds(), glyph, color)
	}

	for _, p := range g.projectiles {
		if !p.Active {
			continue
		}
		x, y := proj.point(p.Pos)
		if p.Owner == OwnerPlayer {
			dst.SetCell(x, y, glyphPlayerShot, core.ColorBrightYellow)
		} else {
			dst.SetCell(x, y, glyphEnemyShot, core.ColorBrightRed)
		}
	}

	playerColor := core.ColorBrightCyan
	if g.player.PowerUps.Active(PowerShield) {
		playerColor = core.ColorBrightBlue
	}
	proj.fill(dst, g.player.Bounds(), glyphPlayer, playerColor)

	switch g.state {
	case StatePaused:
		g.renderOverlay(dst, "PAUSED", "press p to resume")
	case StateGameOver:
		g.renderOverlay(dst, "GAME OVER",
			fmt.Sprintf("final score %d", g.score), "press r to restart")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	w := dst.Width()
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", g.score), core.ColorBrightYellow)
	mid := fmt.Sprintf("Level: %d", g.level)
	dst.DrawTextColored((w-len(mid))/2, 0, mid, core.ColorBrightCyan)
	lives := fmt.Sprintf("Lives: %s", strings.Repeat("♥", core.Max(g.lives, 0)))
	dst.DrawTextColored(w-len([]rune(lives))-1, 0, lives, core.ColorBrightRed)

	var effects []string
	for _, st := range g.player.PowerUps.Statuses() {
		effects = append(effects, fmt.Sprintf("%s %.1fs", st.Kind, st.Seconds))
	}
	if len(effects) > 0 {
		dst.DrawTextColored(1, 1, strings.Join(effects, "  "), core.ColorBrightGreen)
	}
}

func (g *Game) renderOverlay(dst *core.Screen, lines ...string) {
	w, h := dst.Width(), dst.Height()
	boxW := 0
	for _, l := range lines {
		if n := len([]rune(l)) + 6; n > boxW {
			boxW = n
		}
	}
	boxH := len(lines) + 4
	x := (w - boxW) / 2
	y := (h - boxH) / 2
	dst.FillRect(x, y, boxW, boxH, ' ')
	dst.DrawBox(x, y, boxW, boxH)
	for i, l := range lines {
		dst.DrawTextCentered(y+2+i, l)
	}
}

// projection maps world pixel coordinates onto a cell rectangle.
type projection struct {
	worldW, worldH float64
	cellsW, cellsH int
	offY           int
}

func (p projection) point(v core.Vec2) (int, int) {
	x := int(v.X / p.worldW * float64(p.cellsW))
	y := int(v.Y/p.worldH*float64(p.cellsH)) + p.offY
	return x, y
}

// fill paints the cell extent of a world rectangle, at least one cell.
func (p projection) fill(dst *core.Screen, r core.Rect, glyph rune, color core.Color) {
	x0 := int(r.Left() / p.worldW * float64(p.cellsW))
	x1 := int(r.Right() / p.worldW * float64(p.cellsW))
	y0 := int(r.Top()/p.worldH*float64(p.cellsH)) + p.offY
	y1 := int(r.Bottom()/p.worldH*float64(p.cellsH)) + p.offY
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dst.SetCell(x, y, glyph, color)
		}
	}
}

// particleGlyph shrinks as the particle fades out.
func particleGlyph(fade float64) rune {
	switch {
	case fade > 0.66:
		return '*'
	case fade > 0.33:
		return '+'
	default:
		return '·'
	}
}

func enemyStyle(kind EnemyKind) (rune, core.Color) {
	switch kind {
	case EnemyFast:
		return glyphFast, core.ColorBrightMagenta
	case EnemyHeavy:
		return glyphHeavy, core.ColorRed
	default:
		return glyphBasic, core.ColorBrightRed
	}
}

func powerUpGlyph(kind PowerUpKind) rune {
	switch kind {
	case PowerRapidFire:
		return 'R'
	case PowerShield:
		return 'S'
	case PowerMultiShot:
		return 'M'
	default:
		return '?'
	}
}

func powerUpColor(kind PowerUpKind) core.Color {
	switch kind {
	case PowerRapidFire:
		return core.ColorBrightYellow
	case PowerShield:
		return core.ColorBrightCyan
	case PowerMultiShot:
		return core.ColorBrightMagenta
	default:
		return core.ColorWhite
	}
}
