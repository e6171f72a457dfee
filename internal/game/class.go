package game

import (
	"fmt"

	"emberstone/internal/item"
)

// Class is the player's calling, chosen once at character creation.
type Class int

const (
	ClassGuardian Class = iota
	ClassMage
	ClassShadow
)

func (c Class) String() string {
	switch c {
	case ClassGuardian:
		return "Guardian"
	case ClassMage:
		return "Mage"
	case ClassShadow:
		return "Shadow"
	default:
		return "unknown"
	}
}

// ParseClass converts a content-file class tag (case as written in
// content: "Guardian", "Mage", "Shadow").
func ParseClass(s string) (Class, error) {
	switch s {
	case "Guardian":
		return ClassGuardian, nil
	case "Mage":
		return ClassMage, nil
	case "Shadow":
		return ClassShadow, nil
	default:
		return 0, fmt.Errorf("unknown class %q", s)
	}
}

// Classes lists every playable class in menu order.
func Classes() []Class {
	return []Class{ClassGuardian, ClassMage, ClassShadow}
}

// classSpec is one row of the fixed class table: base attributes, vital
// caps, the starter weapon item id, and the class special move.
type classSpec struct {
	stats        Stats
	maxHP, maxMP int
	weapon       string
	blurb        string

	specialName  string
	specialAttr  item.Attribute
	specialLo    int
	specialHi    int
	specialFlair string
}

var classTable = map[Class]classSpec{
	ClassGuardian: {
		stats:        Stats{Strength: 15, Agility: 8, Magic: 5},
		maxHP:        120,
		maxMP:        30,
		weapon:       "soldiers_sword",
		blurb:        "A wielder of steel and shield, high in strength and health.",
		specialName:  "Shield Bash",
		specialAttr:  item.AttrStrength,
		specialLo:    5,
		specialHi:    10,
		specialFlair: "It's a powerful blow, staggering the %s.",
	},
	ClassMage: {
		stats:        Stats{Strength: 6, Agility: 10, Magic: 18},
		maxHP:        80,
		maxMP:        80,
		weapon:       "apprentice_staff",
		blurb:        "A master of the arcane arts, high in magic and mana.",
		specialName:  "Fireball",
		specialAttr:  item.AttrMagic,
		specialLo:    8,
		specialHi:    15,
		specialFlair: "The flame erupts over the %s.",
	},
	ClassShadow: {
		stats:        Stats{Strength: 10, Agility: 16, Magic: 10},
		maxHP:        90,
		maxMP:        50,
		weapon:       "twin_daggers",
		blurb:        "A rogue of swift action, high in agility and critical strikes.",
		specialName:  "Shadow Strike",
		specialAttr:  item.AttrAgility,
		specialLo:    6,
		specialHi:    12,
		specialFlair: "You strike from an unexpected angle.",
	},
}

// Blurb returns the one-line class description shown at creation.
func (c Class) Blurb() string { return classTable[c].blurb }

// NewPlayer builds a player from the class table: base attributes and
// vital caps, the class weapon, and two starter Health Potions. The
// weapon's attribute-boost effect is stored on the item and deliberately
// not applied to the player's stats (no equip system).
func NewPlayer(name string, class Class, reg *item.Registry) (*Player, error) {
	spec, ok := classTable[class]
	if !ok {
		return nil, fmt.Errorf("unknown class %d", class)
	}

	p := &Player{
		Name:  name,
		Class: class,
		Stats: spec.stats,
		HP:    spec.maxHP,
		MaxHP: spec.maxHP,
		MP:    spec.maxMP,
		MaxMP: spec.maxMP,
	}

	weapon, err := reg.Get(spec.weapon)
	if err != nil {
		return nil, fmt.Errorf("class %s starter weapon: %w", class, err)
	}
	p.Inventory.Add(weapon)

	for i := 0; i < 2; i++ {
		potion, err := reg.Get("health_potion")
		if err != nil {
			return nil, fmt.Errorf("starter potion: %w", err)
		}
		p.Inventory.Add(potion)
	}
	return p, nil
}
