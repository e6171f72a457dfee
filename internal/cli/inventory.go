package cli

import (
	"errors"

	"emberstone/internal/game"
	"emberstone/internal/item"
)

// InventoryLoop runs the bag interaction: list the stacks, then accept
// use/view/discard commands by item name until the player goes back. A
// successful use also leaves the loop, so combat resumes right away.
func (p *Prompter) InventoryLoop(pl *game.Player) error {
	for {
		if pl.Inventory.Empty() {
			p.Say("Your bag is empty.")
			return nil
		}
		p.Say("--- Inventory ---")
		for _, s := range pl.Inventory.Stacks() {
			p.Sayf("  %s x%d", s.Name, s.Count)
		}
		line, err := p.ReadLine("(use/view/discard <item>, back) > ")
		if err != nil {
			return err
		}
		verb, arg := splitCommand(line)
		switch verb {
		case "back", "":
			return nil

		case "use":
			res, err := pl.Inventory.Use(arg, pl)
			switch {
			case err == nil:
				switch res.Item.Effect.Kind {
				case item.EffectRestoreMana:
					p.Sayf("You drink the %s and recover %d MP.", res.Item.Name, res.Gained)
				default:
					p.Sayf("You drink the %s and recover %d HP.", res.Item.Name, res.Gained)
				}
				return nil
			case errors.Is(err, item.ErrAlreadyFull):
				if res.Item.Effect.Kind == item.EffectRestoreMana {
					p.Sayf("Your mana is already full. The %s stays in your bag.", res.Item.Name)
				} else {
					p.Sayf("Your health is already full. The %s stays in your bag.", res.Item.Name)
				}
			case errors.Is(err, item.ErrNotConsumable):
				p.Sayf("The %s is not something you can drink.", res.Item.Name)
			default:
				p.Sayf("You don't have a %q.", arg)
			}

		case "view":
			it, err := pl.Inventory.Describe(arg)
			if err != nil {
				p.Sayf("You don't have a %q.", arg)
				continue
			}
			p.Sayf("%s: %s", it.Name, it.Description)

		case "discard":
			it, err := pl.Inventory.Discard(arg)
			if err != nil {
				p.Sayf("You don't have a %q.", arg)
				continue
			}
			p.Sayf("You discard the %s.", it.Name)

		default:
			p.Say("Commands: use <item>, view <item>, discard <item>, back.")
		}
	}
}
