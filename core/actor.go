package core

// Health tracks hit points and armour of a character
type Health struct {
	HP     float64
	Armour float64
}

// NewHealth returns full health with the given armour
func NewHealth(armour float64) Health {
	return Health{HP: 100, Armour: armour}
}

// WeaponDamage applies amount of damage; armour absorbs at most the
// non-penetrating share amount*(1-penetration), the rest reaches HP
func (h *Health) WeaponDamage(amount, penetration float64) {
	if amount <= 0 {
		return
	}
	penetration = clamp01(penetration)
	absorbed := min(amount*(1-penetration), h.Armour)
	h.Armour -= absorbed
	h.HP -= amount - absorbed
}

// IsDead reports whether HP is depleted
func (h *Health) IsDead() bool {
	return h.HP <= 0
}

// Actor is a character reference: the player or an enemy
type Actor struct {
	Obj    Object
	Health Health
}

// Sprite identifiers for actors
const (
	SpritePlayer = "common/player"
	SpriteEnemy  = "common/enemy"
)
