package entities

// DefaultMaxHP is the health every new character starts with
const DefaultMaxHP = 20

// Character is a hero in the party. Insertion order is turn order.
type Character struct {
	PlayerID  string `json:"playerId"`
	Name      string `json:"name"`
	Class     string `json:"class"`
	Backstory string `json:"backstory"`
	HP        int    `json:"hp"`
	MaxHP     int    `json:"maxHp"`
}

// NewCharacter creates a character at full health
func NewCharacter(playerID, name, class, backstory string) Character {
	return Character{
		PlayerID:  playerID,
		Name:      name,
		Class:     class,
		Backstory: backstory,
		HP:        DefaultMaxHP,
		MaxHP:     DefaultMaxHP,
	}
}

// ApplyHealthChange adds change to HP, clamped to [0, MaxHP]
func (c *Character) ApplyHealthChange(change int) {
	hp := c.HP + change
	if hp > c.MaxHP {
		hp = c.MaxHP
	}
	if hp < 0 {
		hp = 0
	}
	c.HP = hp
}

// Downed reports whether the character has no health left.
// Downed characters stay in the party and keep their turn slot.
func (c Character) Downed() bool {
	return c.HP <= 0
}
