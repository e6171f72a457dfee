package cli

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"emberstone/internal/chronicle"
	"emberstone/internal/game"
	"emberstone/internal/item"
	"emberstone/internal/rng"
	"emberstone/internal/story"
)

func discardLog() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testWorld writes a minimal content set to a temp dir and loads it.
func testWorld(t *testing.T) (*item.Registry, *game.Bestiary, *story.Story) {
	t.Helper()
	dir := t.TempDir()

	write := func(name, body string) string {
		t.Helper()
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		return path
	}

	items := write("items.yaml", `items:
  - id: health_potion
    name: Health Potion
    description: Restores 25 HP.
    category: potion
    effect: {kind: heal, magnitude: 25}
`)
	enemies := write("enemies.yaml", `enemies:
  - id: sapling
    name: Corrupted Sapling
    description: A small tree, twisted with dark energy.
    hp: 20
    strength: 5
    agility: 0
    magic: 0
`)
	tale := write("story.yaml", `title: Test Tale
start: gate
nodes:
  gate:
    title: The Gate
    text: ["A sapling blocks the path."]
    grant: [health_potion]
    choices:
      - key: fight
        text: Fight it.
        next: fight
      - key: burn
        text: Burn it with magic.
        requireClass: Mage
        next: fight
  fight:
    battle: {enemy: sapling, onVictory: win, onDefeat: lose}
  win:
    text: ["The path is clear."]
    ending: ending_neutral
  lose:
    ending: game_over
`)

	reg, err := item.LoadRegistry(items)
	if err != nil {
		t.Fatalf("load items: %v", err)
	}
	bst, err := game.LoadBestiary(enemies)
	if err != nil {
		t.Fatalf("load enemies: %v", err)
	}
	s, err := story.Load(tale)
	if err != nil {
		t.Fatalf("load story: %v", err)
	}
	if err := s.Validate(reg, bst); err != nil {
		t.Fatalf("validate story: %v", err)
	}
	return reg, bst, s
}

func TestRunner_PlaysToEnding(t *testing.T) {
	reg, bst, s := testWorld(t)

	pl := &game.Player{
		Name:  "Alex",
		Class: game.ClassGuardian,
		Stats: game.Stats{Strength: 15, Agility: 8, Magic: 5},
		HP:    120, MaxHP: 120,
		MP: 30, MaxMP: 30,
	}

	// Menu pick, then one attack: 15 + 5 = 20 damage kills the sapling
	// before it can act.
	in := strings.NewReader("1\nattack\n")
	var out bytes.Buffer
	journal := &chronicle.Journal{Hero: pl.Name}

	r := &Runner{
		Story:    s,
		Registry: reg,
		Bestiary: bst,
		Prompter: NewPrompter(in, &out, 0),
		Roller:   &rng.Script{Ints: []int{5}, Floats: []float64{0.9}},
		Log:      discardLog(),
		Journal:  journal,
	}
	ending, err := r.Run(pl)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if ending != story.EndingNeutral {
		t.Errorf("Expected %s, got %s", story.EndingNeutral, ending)
	}

	text := out.String()
	if !strings.Contains(text, "[You got: Health Potion]") {
		t.Errorf("Missing grant narration in %q", text)
	}
	if pl.Inventory.Len() != 1 {
		t.Errorf("Expected granted potion in bag, have %d items", pl.Inventory.Len())
	}
	// The Mage-only option must not be offered to a Guardian.
	if strings.Contains(text, "Burn it with magic.") {
		t.Error("Gated choice leaked into the menu")
	}
	if !strings.Contains(text, "The Corrupted Sapling is defeated!") {
		t.Errorf("Missing victory narration in %q", text)
	}

	if len(journal.Entries) != 2 {
		t.Fatalf("Expected 2 journal entries, got %d", len(journal.Entries))
	}
	if journal.Entries[0].Title != "The Gate" || journal.Entries[0].Battle {
		t.Errorf("Unexpected first entry %+v", journal.Entries[0])
	}
	if journal.Entries[1].Title != "Corrupted Sapling" || !journal.Entries[1].Battle || journal.Entries[1].Note != "victory" {
		t.Errorf("Unexpected battle entry %+v", journal.Entries[1])
	}
}

func TestRunner_DefeatRoutesToGameOver(t *testing.T) {
	reg, bst, s := testWorld(t)

	// A nearly dead player who only defends loses to the sapling.
	pl := &game.Player{
		Name:  "Alex",
		Class: game.ClassGuardian,
		Stats: game.Stats{Strength: 15, Agility: 8, Magic: 5},
		HP:    2, MaxHP: 120,
		MP: 30, MaxMP: 30,
	}

	in := strings.NewReader("1\ndefend\n")
	r := &Runner{
		Story:    s,
		Registry: reg,
		Bestiary: bst,
		Prompter: NewPrompter(in, io.Discard, 0),
		// Defended enemy hit: (5 + 1) / 2 = 3 damage, enough for 2 HP.
		Roller: &rng.Script{Ints: []int{1}},
		Log:    discardLog(),
	}
	ending, err := r.Run(pl)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if ending != story.EndingGameOver {
		t.Errorf("Expected %s, got %s", story.EndingGameOver, ending)
	}
}
