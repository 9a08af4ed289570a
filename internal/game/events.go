package game

// PowerUpStatus reports one active player effect to the presentation layer.
type PowerUpStatus struct {
	Kind    PowerUpKind
	Seconds float64 // Remaining effect time in seconds
}

// Listener receives state-change notifications from the simulation.
// Score, lives, and level fire only when the value changes; the power-up
// list fires every tick. GameOver fires at most once per session, until
// the next Reset. All callbacks run synchronously inside Update, before
// the tick returns.
type Listener interface {
	ScoreChanged(score int)
	LivesChanged(lives int)
	LevelChanged(level int)
	PowerUpsChanged(active []PowerUpStatus)
	GameOver(finalScore int)
}

// NopListener discards all notifications. It keeps the simulation runnable
// headless, e.g. in tests that only inspect snapshots.
type NopListener struct{}

func (NopListener) ScoreChanged(int)                {}
func (NopListener) LivesChanged(int)                {}
func (NopListener) LevelChanged(int)                {}
func (NopListener) PowerUpsChanged([]PowerUpStatus) {}
func (NopListener) GameOver(int)                    {}
