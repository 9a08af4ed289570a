package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/game"
	"github.com/vovakirdan/tui-shooter/internal/platform/sound"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

// Terminals report key presses but never releases, so a held key arrives
// as an initial press followed by auto-repeat events. The model treats an
// action as held until no repeat has been seen for holdWindow, then
// releases it in the simulation.
const holdWindow = 250 * time.Millisecond

// Model is the Bubble Tea model that drives one shooter session.
type Model struct {
	game   *game.Game
	events *Bridge
	screen *core.Screen
	store  *storage.Store
	config core.RuntimeConfig
	keys   *KeyMapper

	held map[core.Action]time.Time

	gameState  core.GameState
	quitting   bool
	scoreSaved bool
}

// NewModel creates a model around an already constructed game. The game
// must have been created with the bridge installed as its listener.
func NewModel(g *game.Game, bridge *Bridge, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:   g,
		events: bridge,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		config: cfg,
		keys:   NewKeyMapper(),
		held:   make(map[core.Action]time.Time),
	}
}

// Init starts the first session and the tick loop.
func (m Model) Init() tea.Cmd {
	m.events.rearm()
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The simulation runs in world space, so a resize only rescales
		// the view. No session reset needed.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionPause:
		m.game.TogglePause()

	case core.ActionRestart:
		if m.gameState.GameOver {
			m.restart()
		}

	case core.ActionLeft, core.ActionRight, core.ActionShoot:
		if action == core.ActionShoot {
			if _, already := m.held[action]; !already {
				m.events.snd.Play(sound.CueShoot)
			}
		}
		m.game.SetInput(action, true)
		m.held[action] = time.Now()
	}

	return m, nil
}

// restart begins a new session with a fresh time-based seed.
func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.events.rearm()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.scoreSaved = false
	for a := range m.held {
		delete(m.held, a)
	}
}

// handleTick advances the simulation to the tick's wall-clock time.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	// Release actions whose key repeat has gone quiet
	for action, last := range m.held {
		if now.Sub(last) > holdWindow {
			m.game.SetInput(action, false)
			delete(m.held, action)
		}
	}

	m.game.Update(float64(now.UnixNano()) / 1e6)
	m.gameState = m.game.State()

	// Save the run on game over (once)
	if m.gameState.GameOver && !m.scoreSaved && m.gameState.Score > 0 {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveRun(
				m.gameState.Score,
				m.gameState.Level,
				int(m.game.ElapsedMs()/1000),
			)
		}
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts a local shooter session and blocks until the user quits.
func Run(g *game.Game, bridge *Bridge, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(g, bridge, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
