package game

// EnemyKind identifies an enemy variant.
type EnemyKind int

const (
	EnemyBasic EnemyKind = iota
	EnemyFast
	EnemyHeavy
	enemyKindCount // Sentinel for counting kinds
)

// String returns the display name of the kind.
func (k EnemyKind) String() string {
	switch k {
	case EnemyBasic:
		return "basic"
	case EnemyFast:
		return "fast"
	case EnemyHeavy:
		return "heavy"
	default:
		return "?"
	}
}

// Enemy descends from the top of the playfield with a randomized horizontal
// drift. It is deactivated when destroyed, when it leaves the bottom bound,
// or on body contact with the player.
type Enemy struct {
	GameObject
	Kind          EnemyKind
	Health        int
	Points        int
	ShootCooldown float64 // ms until the enemy may roll to fire again
}
