package game

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrUnknownEnemy signals a spawn request for an undefined enemy id.
var ErrUnknownEnemy = errors.New("unknown enemy id")

type bestiaryFile struct {
	Enemies []enemyDef `yaml:"enemies"`
}

type enemyDef struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	HP          int    `yaml:"hp"`
	Strength    int    `yaml:"strength"`
	Agility     int    `yaml:"agility"`
	Magic       int    `yaml:"magic"`
}

// Bestiary holds enemy definitions by content id. Each encounter spawns
// a fresh Enemy value from its definition.
type Bestiary struct {
	defs map[string]enemyDef
}

// LoadBestiary loads enemy definitions from a YAML file.
func LoadBestiary(path string) (*Bestiary, error) {
	b, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	var f bestiaryFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse enemies: %w", err)
	}

	best := &Bestiary{defs: make(map[string]enemyDef, len(f.Enemies))}
	for _, d := range f.Enemies {
		if d.ID == "" {
			return nil, fmt.Errorf("enemy %q has no id", d.Name)
		}
		if _, ok := best.defs[d.ID]; ok {
			return nil, fmt.Errorf("duplicate enemy id %s", d.ID)
		}
		if d.HP <= 0 {
			return nil, fmt.Errorf("enemy %s: hp must be positive", d.ID)
		}
		best.defs[d.ID] = d
	}
	return best, nil
}

// Has reports whether an enemy id is defined.
func (b *Bestiary) Has(id string) bool {
	_, ok := b.defs[id]
	return ok
}

// Spawn creates a fresh, full-health enemy from its definition.
func (b *Bestiary) Spawn(id string) (*Enemy, error) {
	d, ok := b.defs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEnemy, id)
	}
	return &Enemy{
		Name:        d.Name,
		Description: d.Description,
		Stats:       Stats{Strength: d.Strength, Agility: d.Agility, Magic: d.Magic},
		HP:          d.HP,
		MaxHP:       d.HP,
	}, nil
}
