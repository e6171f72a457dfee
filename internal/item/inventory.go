package item

import (
	"errors"
	"strings"
)

// Sentinel errors surfaced by inventory operations. None of them mutate
// the inventory: a failed use or discard leaves the bag untouched.
var (
	ErrNotFound      = errors.New("no such item")
	ErrNotConsumable = errors.New("item cannot be used")
	ErrAlreadyFull   = errors.New("already at full")
)

// Drinker is the slice of a combatant a potion can act on. Heal and
// RestoreMana apply up to n points, clamp at the maximum, and report how
// much was actually gained.
type Drinker interface {
	Heal(n int) int
	RestoreMana(n int) int
}

// Inventory is an ordered bag of items, owned exclusively by one player.
type Inventory struct {
	items []Item
}

// Add appends an item to the bag.
func (inv *Inventory) Add(it Item) {
	inv.items = append(inv.items, it)
}

// Len returns the number of items held.
func (inv *Inventory) Len() int { return len(inv.items) }

// Empty reports whether the bag holds nothing.
func (inv *Inventory) Empty() bool { return len(inv.items) == 0 }

// Stack is one line of the grouped inventory listing.
type Stack struct {
	Name  string
	Count int
}

// Stacks groups items by name, in first-seen order.
func (inv *Inventory) Stacks() []Stack {
	index := map[string]int{}
	var stacks []Stack
	for _, it := range inv.items {
		if i, ok := index[it.Name]; ok {
			stacks[i].Count++
			continue
		}
		index[it.Name] = len(stacks)
		stacks = append(stacks, Stack{Name: it.Name, Count: 1})
	}
	return stacks
}

// find returns the index of the first item whose name matches, ignoring
// case. Lookup is exact-match on the full name.
func (inv *Inventory) find(name string) (int, bool) {
	want := strings.ToLower(strings.TrimSpace(name))
	for i, it := range inv.items {
		if strings.ToLower(it.Name) == want {
			return i, true
		}
	}
	return 0, false
}

// Describe returns the description of a named item.
func (inv *Inventory) Describe(name string) (Item, error) {
	i, ok := inv.find(name)
	if !ok {
		return Item{}, ErrNotFound
	}
	return inv.items[i], nil
}

// Discard removes one copy of a named item and returns it.
func (inv *Inventory) Discard(name string) (Item, error) {
	i, ok := inv.find(name)
	if !ok {
		return Item{}, ErrNotFound
	}
	it := inv.items[i]
	inv.items = append(inv.items[:i], inv.items[i+1:]...)
	return it, nil
}

// UseResult reports a successful consumption.
type UseResult struct {
	Item   Item
	Gained int
}

// Use consumes one copy of a named potion, applying its effect to the
// target. Non-potions are rejected with ErrNotConsumable. If the relevant
// resource is already at its maximum the item is kept and ErrAlreadyFull
// is returned.
func (inv *Inventory) Use(name string, target Drinker) (UseResult, error) {
	i, ok := inv.find(name)
	if !ok {
		return UseResult{}, ErrNotFound
	}
	it := inv.items[i]
	if it.Category != CategoryPotion || it.Effect == nil {
		return UseResult{Item: it}, ErrNotConsumable
	}

	var gained int
	switch it.Effect.Kind {
	case EffectHeal:
		gained = target.Heal(it.Effect.Magnitude)
	case EffectRestoreMana:
		gained = target.RestoreMana(it.Effect.Magnitude)
	default:
		return UseResult{Item: it}, ErrNotConsumable
	}
	if gained == 0 {
		return UseResult{Item: it}, ErrAlreadyFull
	}

	inv.items = append(inv.items[:i], inv.items[i+1:]...)
	return UseResult{Item: it, Gained: gained}, nil
}
