package cli

import (
	"bytes"
	"strings"
	"testing"

	"emberstone/internal/game"
	"emberstone/internal/item"
)

func testPlayer() *game.Player {
	return &game.Player{
		Name:  "Alex",
		Class: game.ClassGuardian,
		Stats: game.Stats{Strength: 15, Agility: 8, Magic: 5},
		HP:    50, MaxHP: 120,
		MP: 30, MaxMP: 30,
	}
}

func healthPotion() item.Item {
	return item.Item{
		Name:        "Health Potion",
		Description: "Restores 25 HP.",
		Category:    item.CategoryPotion,
		Effect:      &item.Effect{Kind: item.EffectHeal, Magnitude: 25},
	}
}

func TestInventoryLoop_UseHealsAndExits(t *testing.T) {
	pl := testPlayer()
	pl.Inventory.Add(healthPotion())
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("use health potion\n"), &out, 0)

	if err := p.InventoryLoop(pl); err != nil {
		t.Fatalf("InventoryLoop: %v", err)
	}
	if pl.HP != 75 {
		t.Errorf("Expected 75 HP after potion, got %d", pl.HP)
	}
	if pl.Inventory.Len() != 0 {
		t.Errorf("Expected potion consumed, %d items left", pl.Inventory.Len())
	}
	if !strings.Contains(out.String(), "recover 25 HP") {
		t.Errorf("Missing heal narration in %q", out.String())
	}
}

func TestInventoryLoop_FullHealthKeepsPotion(t *testing.T) {
	pl := testPlayer()
	pl.HP = pl.MaxHP
	pl.Inventory.Add(healthPotion())
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("use health potion\nback\n"), &out, 0)

	if err := p.InventoryLoop(pl); err != nil {
		t.Fatalf("InventoryLoop: %v", err)
	}
	if pl.Inventory.Len() != 1 {
		t.Errorf("Expected potion kept, %d items left", pl.Inventory.Len())
	}
	if !strings.Contains(out.String(), "already full") {
		t.Errorf("Missing full-health narration in %q", out.String())
	}
}

func TestInventoryLoop_ViewAndDiscard(t *testing.T) {
	pl := testPlayer()
	pl.Inventory.Add(healthPotion())
	input := "view health potion\ndiscard health potion\n"
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader(input), &out, 0)

	if err := p.InventoryLoop(pl); err != nil {
		t.Fatalf("InventoryLoop: %v", err)
	}
	if !strings.Contains(out.String(), "Restores 25 HP.") {
		t.Errorf("Missing description in %q", out.String())
	}
	if pl.Inventory.Len() != 0 {
		t.Error("Expected item discarded")
	}
	// Bag is now empty, so the loop exits on its own.
	if !strings.Contains(out.String(), "Your bag is empty.") {
		t.Errorf("Missing empty-bag line in %q", out.String())
	}
}

func TestInventoryLoop_UnknownCommand(t *testing.T) {
	pl := testPlayer()
	pl.Inventory.Add(healthPotion())
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("eat potion\nback\n"), &out, 0)

	if err := p.InventoryLoop(pl); err != nil {
		t.Fatalf("InventoryLoop: %v", err)
	}
	if !strings.Contains(out.String(), "Commands:") {
		t.Errorf("Missing command help in %q", out.String())
	}
}

func TestInventoryLoop_EmptyBag(t *testing.T) {
	pl := testPlayer()
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader(""), &out, 0)

	if err := p.InventoryLoop(pl); err != nil {
		t.Fatalf("InventoryLoop: %v", err)
	}
	if !strings.Contains(out.String(), "Your bag is empty.") {
		t.Errorf("Missing empty-bag line in %q", out.String())
	}
}
