package game

import (
	"errors"

	"emberstone/internal/rng"
)

// Combat tuning constants.
const (
	critPerAgility  = 0.015 // crit chance per point of agility
	dodgePerAgility = 0.01  // dodge chance per point of defender agility
	critMultiplier  = 1.8

	SpecialManaCost = 15

	fleeFailChance = 0.33
)

// ErrInsufficientMana signals a special move attempted without the mana
// to pay for it. No state changes.
var ErrInsufficientMana = errors.New("not enough mana")

// AttackReport describes one resolved attack for the front end to
// narrate. Exactly one of Crit/Dodged/Defended can be set.
type AttackReport struct {
	Damage   int
	Crit     bool
	Dodged   bool
	Defended bool
}

// PlayerAttack resolves the player's basic attack against an enemy:
// strength plus a -2..5 roll, with an agility-scaled critical chance
// multiplying the base by 1.8 (truncated). Damage never drops below 1.
func PlayerAttack(p *Player, e *Enemy, r rng.Roller) AttackReport {
	base := p.Stats.Strength + r.Between(-2, 5)
	crit := r.Float64() < float64(p.Stats.Agility)*critPerAgility

	damage := base
	if crit {
		damage = int(float64(base) * critMultiplier)
	}
	if damage < 1 {
		damage = 1
	}
	e.TakeDamage(damage)
	return AttackReport{Damage: damage, Crit: crit}
}

// EnemyAttack resolves the enemy's attack against the player. A defending
// player takes a halved 1..4 roll and cannot dodge; otherwise the player
// may dodge on an agility-scaled chance, else takes strength plus 1..6.
func EnemyAttack(e *Enemy, p *Player, r rng.Roller) AttackReport {
	if p.Defending {
		damage := (e.Stats.Strength + r.Between(1, 4)) / 2
		p.TakeDamage(damage)
		return AttackReport{Damage: damage, Defended: true}
	}
	if r.Float64() < float64(p.Stats.Agility)*dodgePerAgility {
		return AttackReport{Dodged: true}
	}
	damage := e.Stats.Strength + r.Between(1, 6)
	p.TakeDamage(damage)
	return AttackReport{Damage: damage}
}

// SpecialReport describes a resolved special move.
type SpecialReport struct {
	Name   string
	Flair  string
	Damage int
}

// SpecialMove resolves the player's class special: it costs
// SpecialManaCost mana and applies the class damage formula directly,
// with no dodge or defend interaction. With insufficient mana it fails
// with ErrInsufficientMana and changes nothing.
func SpecialMove(p *Player, e *Enemy, r rng.Roller) (SpecialReport, error) {
	if p.MP < SpecialManaCost {
		return SpecialReport{}, ErrInsufficientMana
	}
	spec := classTable[p.Class]

	p.MP -= SpecialManaCost
	damage := p.Attribute(spec.specialAttr) + r.Between(spec.specialLo, spec.specialHi)
	e.TakeDamage(damage)
	return SpecialReport{Name: spec.specialName, Flair: spec.specialFlair, Damage: damage}, nil
}

// AttemptFlee reports whether a flee attempt succeeds (~67%).
func AttemptFlee(r rng.Roller) bool {
	return r.Float64() > fleeFailChance
}
