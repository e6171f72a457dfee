package story

import (
	"fmt"

	"emberstone/internal/game"
)

// State is the story-side player position: the current node and the
// flags earlier scenes have raised. It travels with the caller; the
// engine itself holds no mutable state.
type State struct {
	NodeID string
	Flags  map[string]bool
}

// NewState starts a playthrough at the story's first node.
func NewState(s *Story) State {
	return State{NodeID: s.Start, Flags: map[string]bool{}}
}

// Engine evaluates nodes and choices against a player.
type Engine struct {
	Story *Story
}

// Node returns the node the state points at.
func (e *Engine) Node(st State) (*Node, error) {
	n := e.Story.Nodes[st.NodeID]
	if n == nil {
		return nil, fmt.Errorf("unknown node: %s", st.NodeID)
	}
	return n, nil
}

// Enter applies a node's entry effects and flags to the player and
// state: resource effects first, then flags. Item grants are left to the
// caller, which owns the registry.
func (e *Engine) Enter(n *Node, p *game.Player, st *State) {
	for _, ef := range n.Effects {
		applyEffect(ef, p)
	}
	for _, f := range n.SetFlags {
		st.Flags[f] = true
	}
}

func applyEffect(ef Effect, p *game.Player) {
	switch ef.Stat {
	case "health":
		if ef.Value < 0 {
			p.TakeDamage(-ef.Value)
		} else {
			p.Heal(ef.Value)
		}
	case "mana":
		if ef.Value < 0 {
			p.DrainMana(-ef.Value)
		} else {
			p.RestoreMana(ef.Value)
		}
	case "maxHealth":
		p.RaiseMaxHP(ef.Value)
	}
}

// Visible filters a node's choices down to the options this player may
// take right now.
func (e *Engine) Visible(n *Node, p *game.Player, st State) []Choice {
	var out []Choice
	for _, ch := range n.Choices {
		if ch.RequireClass != "" && ch.RequireClass != p.Class.String() {
			continue
		}
		if ch.RequireStat != nil && !passes(*ch.RequireStat, p) {
			continue
		}
		if ch.RequireFlag != "" && !st.Flags[ch.RequireFlag] {
			continue
		}
		out = append(out, ch)
	}
	return out
}

// CheckResult reports a resolved deterministic stat check.
type CheckResult struct {
	Stat   string
	Value  int
	Above  int
	Passed bool
}

// Destination resolves where a chosen option leads. Choices with a Check
// route to their success or failure node by comparing the player's
// attribute against the threshold; everything else goes to Next.
func (e *Engine) Destination(ch Choice, p *game.Player) (string, *CheckResult) {
	if ch.Check == nil {
		return ch.Next, nil
	}
	res := &CheckResult{
		Stat:   ch.Check.Stat,
		Value:  statValue(ch.Check.Stat, p),
		Above:  ch.Check.Above,
		Passed: passes(*ch.Check, p),
	}
	if res.Passed {
		return ch.OnSuccessNext, res
	}
	return ch.OnFailureNext, res
}

// BattleDestination maps a combat outcome to the next node.
func (b *Battle) BattleDestination(out game.Outcome) string {
	switch out {
	case game.OutcomeDefeat:
		return b.OnDefeat
	case game.OutcomeFled:
		if b.OnFled != "" {
			return b.OnFled
		}
		return b.OnVictory
	default:
		return b.OnVictory
	}
}

// BranchDestination routes a flag branch against the state.
func (br *Branch) BranchDestination(st State) string {
	if st.Flags[br.Flag] {
		return br.Then
	}
	return br.Else
}

func passes(g StatGate, p *game.Player) bool {
	return statValue(g.Stat, p) > g.Above
}

func statValue(stat string, p *game.Player) int {
	switch stat {
	case "strength":
		return p.Stats.Strength
	case "agility":
		return p.Stats.Agility
	case "magic":
		return p.Stats.Magic
	default:
		return 0
	}
}
