package item

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for the registry loader.
var (
	ErrDuplicateID = errors.New("duplicate item id")
	ErrUnknownItem = errors.New("unknown item id")
)

type defsFile struct {
	Items []def `yaml:"items"`
}

type def struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Category    string  `yaml:"category"`
	Effect      *defEff `yaml:"effect"`
}

type defEff struct {
	Kind      string `yaml:"kind"`
	Magnitude int    `yaml:"magnitude"`
	Attribute string `yaml:"attribute"`
}

// Registry holds every item definition the game can grant, keyed by a
// stable content id. Story nodes and class tables refer to items by id;
// players carry the resolved Item values.
type Registry struct {
	defs map[string]Item
}

// LoadRegistry loads item definitions from a YAML file.
func LoadRegistry(path string) (*Registry, error) {
	b, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	var f defsFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse items: %w", err)
	}

	reg := &Registry{defs: make(map[string]Item, len(f.Items))}
	for _, d := range f.Items {
		if d.ID == "" {
			return nil, fmt.Errorf("item %q has no id", d.Name)
		}
		if _, ok := reg.defs[d.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, d.ID)
		}
		it, err := d.toItem()
		if err != nil {
			return nil, fmt.Errorf("item %s: %w", d.ID, err)
		}
		reg.defs[d.ID] = it
	}
	return reg, nil
}

func (d def) toItem() (Item, error) {
	cat, err := ParseCategory(d.Category)
	if err != nil {
		return Item{}, err
	}
	it := Item{Name: d.Name, Description: d.Description, Category: cat}
	if d.Effect != nil {
		kind, err := ParseEffectKind(d.Effect.Kind)
		if err != nil {
			return Item{}, err
		}
		eff := Effect{Kind: kind, Magnitude: d.Effect.Magnitude}
		if kind == EffectAttributeBoost {
			attr, err := ParseAttribute(d.Effect.Attribute)
			if err != nil {
				return Item{}, err
			}
			eff.Attribute = attr
		}
		it.Effect = &eff
	}
	return it, nil
}

// Get returns the item definition for an id.
func (r *Registry) Get(id string) (Item, error) {
	it, ok := r.defs[id]
	if !ok {
		return Item{}, fmt.Errorf("%w: %s", ErrUnknownItem, id)
	}
	return it, nil
}

// Has reports whether an id is defined.
func (r *Registry) Has(id string) bool {
	_, ok := r.defs[id]
	return ok
}
