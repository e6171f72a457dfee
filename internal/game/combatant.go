// Package game implements the combat core: the combatant stat model, the
// pure action resolver, and the turn-based combat loop. The story layer
// and the terminal front end sit on top of it.
package game

import "emberstone/internal/item"

// Stats are a combatant's fixed attributes.
type Stats struct {
	Strength int
	Agility  int
	Magic    int
}

// Combatant is anything that can stand in a fight: it has a display
// label, takes damage, and is alive while its health is above zero.
type Combatant interface {
	Label() string
	TakeDamage(n int)
	Alive() bool
}

// Player is the character created once per session. It persists across
// encounters; combat and inventory actions mutate it in place.
type Player struct {
	Name  string
	Class Class
	Stats Stats

	HP, MaxHP int
	MP, MaxMP int

	// Defending is reset at the start of each of the player's turns and
	// consumed by the next incoming enemy attack.
	Defending bool

	Inventory item.Inventory
}

func (p *Player) Label() string { return p.Name }

func (p *Player) Alive() bool { return p.HP > 0 }

// TakeDamage reduces health, never below zero.
func (p *Player) TakeDamage(n int) {
	p.HP -= n
	if p.HP < 0 {
		p.HP = 0
	}
}

// Heal restores up to n health, clamped at MaxHP, and returns the points
// actually gained.
func (p *Player) Heal(n int) int {
	gained := n
	if p.HP+gained > p.MaxHP {
		gained = p.MaxHP - p.HP
	}
	p.HP += gained
	return gained
}

// RestoreMana restores up to n mana, clamped at MaxMP, and returns the
// points actually gained.
func (p *Player) RestoreMana(n int) int {
	gained := n
	if p.MP+gained > p.MaxMP {
		gained = p.MaxMP - p.MP
	}
	p.MP += gained
	return gained
}

// DrainMana removes up to n mana, never below zero.
func (p *Player) DrainMana(n int) {
	p.MP -= n
	if p.MP < 0 {
		p.MP = 0
	}
}

// RaiseMaxHP permanently raises the health cap and heals by the same
// amount (story blessings).
func (p *Player) RaiseMaxHP(n int) {
	p.MaxHP += n
	p.HP += n
	if p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}
}

// Attribute returns the value of a named attribute.
func (p *Player) Attribute(a item.Attribute) int {
	switch a {
	case item.AttrStrength:
		return p.Stats.Strength
	case item.AttrAgility:
		return p.Stats.Agility
	case item.AttrMagic:
		return p.Stats.Magic
	default:
		return 0
	}
}

// Enemy is created fresh for a single encounter and discarded when the
// encounter ends, whatever the outcome.
type Enemy struct {
	Name        string
	Description string
	Stats       Stats
	HP, MaxHP   int
}

func (e *Enemy) Label() string { return e.Name }

func (e *Enemy) Alive() bool { return e.HP > 0 }

// TakeDamage reduces health, never below zero.
func (e *Enemy) TakeDamage(n int) {
	e.HP -= n
	if e.HP < 0 {
		e.HP = 0
	}
}
