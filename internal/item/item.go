// Package item defines the items a player can carry and the inventory
// that holds them. Item effects are a tagged variant, not loose tuples:
// an effect always has a kind, a magnitude, and (for boosts) an attribute.
package item

import "fmt"

// Category classifies an item. Only potions are consumable.
type Category int

const (
	CategoryWeapon Category = iota
	CategoryPotion
	CategoryArtifact
)

func (c Category) String() string {
	switch c {
	case CategoryWeapon:
		return "weapon"
	case CategoryPotion:
		return "potion"
	case CategoryArtifact:
		return "artifact"
	default:
		return "unknown"
	}
}

// ParseCategory converts a content-file category tag.
func ParseCategory(s string) (Category, error) {
	switch s {
	case "weapon":
		return CategoryWeapon, nil
	case "potion":
		return CategoryPotion, nil
	case "artifact":
		return CategoryArtifact, nil
	default:
		return 0, fmt.Errorf("unknown item category %q", s)
	}
}

// EffectKind discriminates what an item effect does.
type EffectKind int

const (
	EffectHeal EffectKind = iota
	EffectRestoreMana
	EffectAttributeBoost
)

func (k EffectKind) String() string {
	switch k {
	case EffectHeal:
		return "heal"
	case EffectRestoreMana:
		return "restore_mana"
	case EffectAttributeBoost:
		return "attribute_boost"
	default:
		return "unknown"
	}
}

// ParseEffectKind converts a content-file effect tag.
func ParseEffectKind(s string) (EffectKind, error) {
	switch s {
	case "heal":
		return EffectHeal, nil
	case "restore_mana":
		return EffectRestoreMana, nil
	case "attribute_boost":
		return EffectAttributeBoost, nil
	default:
		return 0, fmt.Errorf("unknown effect kind %q", s)
	}
}

// Attribute names a combatant attribute an effect can target.
type Attribute int

const (
	AttrStrength Attribute = iota
	AttrAgility
	AttrMagic
)

func (a Attribute) String() string {
	switch a {
	case AttrStrength:
		return "strength"
	case AttrAgility:
		return "agility"
	case AttrMagic:
		return "magic"
	default:
		return "unknown"
	}
}

// ParseAttribute converts a content-file attribute tag.
func ParseAttribute(s string) (Attribute, error) {
	switch s {
	case "strength":
		return AttrStrength, nil
	case "agility":
		return AttrAgility, nil
	case "magic":
		return AttrMagic, nil
	default:
		return 0, fmt.Errorf("unknown attribute %q", s)
	}
}

// Effect is the tagged effect variant carried by an item. Attribute is
// meaningful only when Kind is EffectAttributeBoost.
type Effect struct {
	Kind      EffectKind
	Magnitude int
	Attribute Attribute
}

// Item is an immutable value owned by exactly one inventory at a time.
// Consuming a potion destroys it.
type Item struct {
	Name        string
	Description string
	Category    Category
	Effect      *Effect
}
