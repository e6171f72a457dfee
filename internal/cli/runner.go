package cli

import (
	"fmt"
	"log/slog"

	"emberstone/internal/chronicle"
	"emberstone/internal/game"
	"emberstone/internal/item"
	"emberstone/internal/rng"
	"emberstone/internal/story"
)

// Runner walks the story graph from its start node to an ending,
// narrating scenes, granting items, and fighting battles through the
// prompter. Journal is optional; when set, stages and battles are
// recorded for the closing chronicle.
type Runner struct {
	Story    *story.Story
	Registry *item.Registry
	Bestiary *game.Bestiary
	Prompter *Prompter
	Roller   rng.Roller
	Log      *slog.Logger
	Journal  *chronicle.Journal
}

// Run plays the whole story for one player and returns the ending tag
// it resolved to.
func (r *Runner) Run(pl *game.Player) (string, error) {
	eng := &story.Engine{Story: r.Story}
	drv := NewDriver(r.Prompter)
	st := story.NewState(r.Story)

	for {
		n, err := eng.Node(st)
		if err != nil {
			return "", err
		}
		r.Log.Debug("entering node", "node", st.NodeID)

		if n.Title != "" && r.Journal != nil {
			r.Journal.Record(n.Title, "")
		}
		r.Prompter.Say(n.Text...)
		eng.Enter(n, pl, &st)
		for _, id := range n.Grant {
			it, err := r.Registry.Get(id)
			if err != nil {
				return "", fmt.Errorf("node %s: %w", st.NodeID, err)
			}
			pl.Inventory.Add(it)
			r.Prompter.Sayf("[You got: %s]", it.Name)
		}

		switch {
		case n.Ending != "":
			r.Log.Info("story resolved", "ending", n.Ending)
			return n.Ending, nil

		case n.Battle != nil:
			next, err := r.runBattle(n.Battle, pl, drv)
			if err != nil {
				return "", err
			}
			st.NodeID = next

		case n.Branch != nil:
			st.NodeID = n.Branch.BranchDestination(st)

		case len(n.Choices) > 0:
			visible := eng.Visible(n, pl, st)
			if len(visible) == 0 {
				return "", fmt.Errorf("node %s: no choices available", st.NodeID)
			}
			options := make([]string, len(visible))
			for i, ch := range visible {
				options[i] = ch.Text
			}
			idx, err := r.Prompter.Menu("What do you do?", options)
			if err != nil {
				return "", err
			}
			next, res := eng.Destination(visible[idx], pl)
			if res != nil {
				r.Log.Debug("stat check", "stat", res.Stat, "value", res.Value, "above", res.Above, "passed", res.Passed)
			}
			st.NodeID = next

		default:
			st.NodeID = n.Next
		}
	}
}

func (r *Runner) runBattle(b *story.Battle, pl *game.Player, drv *Driver) (string, error) {
	enemy, err := r.Bestiary.Spawn(b.Enemy)
	if err != nil {
		return "", err
	}
	r.Prompter.Sayf("--- Battle: %s ---", enemy.Name)
	if enemy.Description != "" {
		r.Prompter.Say(enemy.Description)
	}

	out, err := game.Resolve(pl, enemy, r.Roller, drv)
	if err != nil {
		return "", err
	}
	r.Log.Info("battle resolved", "enemy", enemy.Name, "outcome", out.String())
	if r.Journal != nil {
		r.Journal.RecordBattle(enemy.Name, out.String())
	}

	switch out {
	case game.OutcomeVictory:
		r.Prompter.Sayf("The %s is defeated!", enemy.Name)
	case game.OutcomeDefeat:
		r.Prompter.Say("You fall to the ground, beaten.")
	}
	return b.BattleDestination(out), nil
}
