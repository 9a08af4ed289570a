package game

// PowerUp falls from the top of the playfield with a small frame-bound
// sinusoidal bob. Remaining counts down whether or not the power-up is
// collected; a pickup transfers whatever is left into the player's timers,
// so a near-expired power-up yields little effect.
type PowerUp struct {
	GameObject
	Kind      PowerUpKind
	Remaining float64 // ms of on-screen life and of effect on pickup
}
