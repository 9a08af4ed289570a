package game

// Owner identifies who fired a projectile, which decides its collision
// targets and visual treatment.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

// String returns the display name of the owner.
func (o Owner) String() string {
	if o == OwnerEnemy {
		return "enemy"
	}
	return "player"
}

// Projectile travels in a straight line until it leaves the padded screen
// rectangle or hits a target.
type Projectile struct {
	GameObject
	Owner  Owner
	Damage int
}
