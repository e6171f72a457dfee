package game

import (
	"fmt"
	"strings"

	"emberstone/internal/rng"
)

// Outcome is the terminal result of an encounter.
type Outcome int

const (
	OutcomeVictory Outcome = iota
	OutcomeDefeat
	OutcomeFled
)

func (o Outcome) String() string {
	switch o {
	case OutcomeVictory:
		return "victory"
	case OutcomeDefeat:
		return "defeat"
	case OutcomeFled:
		return "fled"
	default:
		return "unknown"
	}
}

// Action is one of the player's combat commands.
type Action int

const (
	ActionAttack Action = iota
	ActionSpecial
	ActionDefend
	ActionItem
	ActionFlee
)

// ParseAction converts a typed combat command, case-insensitive and
// whitespace-trimmed.
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "attack":
		return ActionAttack, nil
	case "special":
		return ActionSpecial, nil
	case "defend":
		return ActionDefend, nil
	case "item":
		return ActionItem, nil
	case "flee":
		return ActionFlee, nil
	default:
		return 0, fmt.Errorf("invalid command %q", s)
	}
}

// Driver supplies the player's decisions to the combat loop and receives
// the events to narrate. The terminal front end implements it against
// stdin/stdout; tests implement it with scripted actions.
type Driver interface {
	// ChooseAction asks for the player's next combat action. An error
	// means the input source is gone and the encounter must abort.
	ChooseAction(p *Player, e *Enemy) (Action, error)
	// OpenInventory runs the nested inventory interaction. It may
	// consume zero or one items and never ends the turn.
	OpenInventory(p *Player) error

	OnPlayerAttack(p *Player, e *Enemy, rep AttackReport)
	OnSpecialMove(p *Player, e *Enemy, rep SpecialReport)
	OnSpecialFailed(p *Player)
	OnDefend(p *Player)
	OnFlee(p *Player, ok bool)
	OnEnemyAttack(e *Enemy, p *Player, rep AttackReport)
}

// combat loop states. Victory, defeat, and fled are terminal: the loop
// returns as soon as it enters one and never re-enters them.
type combatState int

const (
	statePlayerTurn combatState = iota
	stateEnemyTurn
	stateVictory
	stateDefeat
	stateFled
)

// Resolve runs one encounter to its terminal state. The caller owns both
// combatants for the duration; the enemy is discarded afterwards
// whatever the outcome. A player already at zero health loses without an
// enemy turn, matching the loop's entry condition.
func Resolve(p *Player, e *Enemy, r rng.Roller, d Driver) (Outcome, error) {
	st := statePlayerTurn
	for {
		switch st {
		case statePlayerTurn:
			if !p.Alive() {
				st = stateDefeat
				continue
			}
			next, err := playerTurn(p, e, r, d)
			if err != nil {
				return 0, err
			}
			st = next

		case stateEnemyTurn:
			d.OnEnemyAttack(e, p, EnemyAttack(e, p, r))
			if !p.Alive() {
				st = stateDefeat
			} else {
				st = statePlayerTurn
			}

		case stateVictory:
			return OutcomeVictory, nil
		case stateDefeat:
			return OutcomeDefeat, nil
		case stateFled:
			return OutcomeFled, nil
		}
	}
}

// playerTurn runs one full player turn: the defend stance resets, then
// the player is prompted until a turn-ending action resolves. Item use
// and a failed special re-prompt without ending the turn.
func playerTurn(p *Player, e *Enemy, r rng.Roller, d Driver) (combatState, error) {
	p.Defending = false

	for ended := false; !ended; {
		action, err := d.ChooseAction(p, e)
		if err != nil {
			return 0, err
		}
		switch action {
		case ActionAttack:
			d.OnPlayerAttack(p, e, PlayerAttack(p, e, r))
			ended = true

		case ActionSpecial:
			rep, err := SpecialMove(p, e, r)
			if err != nil {
				d.OnSpecialFailed(p)
				continue
			}
			d.OnSpecialMove(p, e, rep)
			ended = true

		case ActionDefend:
			p.Defending = true
			d.OnDefend(p)
			ended = true

		case ActionItem:
			if err := d.OpenInventory(p); err != nil {
				return 0, err
			}

		case ActionFlee:
			ok := AttemptFlee(r)
			d.OnFlee(p, ok)
			if ok {
				return stateFled, nil
			}
			ended = true
		}
	}

	// Victory is checked before the enemy gets to act.
	if !e.Alive() {
		return stateVictory, nil
	}
	return stateEnemyTurn, nil
}
