package cli

import (
	"strings"

	"emberstone/internal/game"
)

// Driver narrates combat through the prompter and asks the player for
// each action. It satisfies the combat loop's driver contract.
type Driver struct {
	p *Prompter
}

func NewDriver(p *Prompter) *Driver { return &Driver{p: p} }

func (d *Driver) ChooseAction(pl *game.Player, e *game.Enemy) (game.Action, error) {
	d.p.Say("")
	d.p.Sayf("%s: %d/%d HP | %d/%d MP", pl.Name, pl.HP, pl.MaxHP, pl.MP, pl.MaxMP)
	d.p.Sayf("%s: %d/%d HP", e.Name, e.HP, e.MaxHP)
	for {
		line, err := d.p.ReadLine("(attack/special/defend/item/flee) > ")
		if err != nil {
			return 0, err
		}
		a, err := game.ParseAction(line)
		if err != nil {
			d.p.Say("Choose one of: attack, special, defend, item, flee.")
			continue
		}
		return a, nil
	}
}

func (d *Driver) OpenInventory(pl *game.Player) error {
	return d.p.InventoryLoop(pl)
}

func (d *Driver) OnPlayerAttack(pl *game.Player, e *game.Enemy, rep game.AttackReport) {
	if rep.Crit {
		d.p.Sayf("CRITICAL HIT! You strike the %s for %d damage!", e.Name, rep.Damage)
		return
	}
	d.p.Sayf("You attack the %s for %d damage.", e.Name, rep.Damage)
}

func (d *Driver) OnSpecialMove(pl *game.Player, e *game.Enemy, rep game.SpecialReport) {
	d.p.Sayf("You unleash %s for %d damage!", rep.Name, rep.Damage)
	if rep.Flair == "" {
		return
	}
	// Some flair lines name the target, some stand alone.
	if strings.Contains(rep.Flair, "%s") {
		d.p.Sayf(rep.Flair, e.Name)
	} else {
		d.p.Say(rep.Flair)
	}
}

func (d *Driver) OnSpecialFailed(pl *game.Player) {
	d.p.Say("Not enough mana!")
}

func (d *Driver) OnDefend(pl *game.Player) {
	d.p.Say("You brace yourself behind your guard.")
}

func (d *Driver) OnFlee(pl *game.Player, ok bool) {
	if ok {
		d.p.Say("You turn and flee the battle!")
		return
	}
	d.p.Say("You fail to get away!")
}

func (d *Driver) OnEnemyAttack(e *game.Enemy, pl *game.Player, rep game.AttackReport) {
	switch {
	case rep.Dodged:
		d.p.Sayf("You dodge the %s's attack!", e.Name)
	case rep.Defended:
		d.p.Sayf("You block the %s's blow, taking only %d damage.", e.Name, rep.Damage)
	default:
		d.p.Sayf("The %s hits you for %d damage.", e.Name, rep.Damage)
	}
}
