package cli

import (
	"fmt"
	"strings"

	"emberstone/internal/game"
	"emberstone/internal/item"
)

const defaultName = "Alex"

// CreateCharacter runs the opening interaction: name, class, and a look
// at the resulting character sheet. An empty name falls back to the
// default.
func (p *Prompter) CreateCharacter(reg *item.Registry) (*game.Player, error) {
	p.Say("--- Character Creation ---")
	name, err := p.ReadLine("What is your name, apprentice? ")
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = defaultName
	}

	classes := game.Classes()
	options := make([]string, len(classes))
	for i, c := range classes {
		options[i] = fmt.Sprintf("%s - %s", c, c.Blurb())
	}
	idx, err := p.Menu("Choose your calling:", options)
	if err != nil {
		return nil, err
	}

	pl, err := game.NewPlayer(name, classes[idx], reg)
	if err != nil {
		return nil, err
	}

	p.Say("")
	p.Sayf("Welcome, %s the %s.", pl.Name, pl.Class)
	p.Sayf("  HP: %d/%d | MP: %d/%d", pl.HP, pl.MaxHP, pl.MP, pl.MaxMP)
	p.Sayf("  STR: %d | AGI: %d | MAG: %d", pl.Stats.Strength, pl.Stats.Agility, pl.Stats.Magic)
	p.Say("Your starting gear is in your bag.")
	if err := p.PressEnter(); err != nil {
		return nil, err
	}
	return pl, nil
}
