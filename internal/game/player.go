package game

// PowerUpKind identifies a power-up variant. The set is closed, which lets
// the player's timer table enumerate it exhaustively.
type PowerUpKind int

const (
	PowerRapidFire PowerUpKind = iota
	PowerShield
	PowerMultiShot
	powerUpKindCount // Sentinel for counting kinds
)

// String returns the wire/display name of the kind.
func (k PowerUpKind) String() string {
	switch k {
	case PowerRapidFire:
		return "rapidFire"
	case PowerShield:
		return "shield"
	case PowerMultiShot:
		return "multiShot"
	default:
		return "?"
	}
}

// PowerUpTimers tracks the remaining effect duration per kind, in
// milliseconds. A non-positive entry means the effect is inactive. The
// kind set is closed, so a fixed array replaces a dynamic map.
type PowerUpTimers struct {
	remaining [powerUpKindCount]float64
}

// Activate sets the remaining duration for a kind, overwriting any prior
// value. Pickups transfer the power-up's current remaining time, not a
// fixed refill.
func (t *PowerUpTimers) Activate(kind PowerUpKind, durationMs float64) {
	t.remaining[kind] = durationMs
}

// Active returns true if the kind currently has time remaining.
func (t *PowerUpTimers) Active(kind PowerUpKind) bool {
	return t.remaining[kind] > 0
}

// Remaining returns the milliseconds left for a kind, or 0 if inactive.
func (t *PowerUpTimers) Remaining(kind PowerUpKind) float64 {
	if t.remaining[kind] <= 0 {
		return 0
	}
	return t.remaining[kind]
}

// Tick decrements every active timer by dt milliseconds and prunes entries
// that reach zero.
func (t *PowerUpTimers) Tick(dtMs float64) {
	if dtMs <= 0 {
		return
	}
	for k := range t.remaining {
		if t.remaining[k] <= 0 {
			continue
		}
		t.remaining[k] -= dtMs
		if t.remaining[k] < 0 {
			t.remaining[k] = 0
		}
	}
}

// Clear deactivates all effects.
func (t *PowerUpTimers) Clear() {
	for k := range t.remaining {
		t.remaining[k] = 0
	}
}

// Statuses returns the active effects as (kind, seconds remaining) pairs,
// in kind order. Returns nil when nothing is active.
func (t *PowerUpTimers) Statuses() []PowerUpStatus {
	var out []PowerUpStatus
	for k := range t.remaining {
		if t.remaining[k] > 0 {
			out = append(out, PowerUpStatus{
				Kind:    PowerUpKind(k),
				Seconds: t.remaining[k] / 1000,
			})
		}
	}
	return out
}

// Player is the single persistent entity. It is created once per game and
// reset in place; it is never deactivated.
type Player struct {
	GameObject
	Health        int // Reserved; session survival is tracked by lives
	ShootCooldown float64
	PowerUps      PowerUpTimers
}
