package item

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeDefs(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "items.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write items file: %v", err)
	}
	return path
}

func TestLoadRegistry_Valid(t *testing.T) {
	path := writeDefs(t, `items:
  - id: health_potion
    name: Health Potion
    description: Restores 25 HP.
    category: potion
    effect:
      kind: heal
      magnitude: 25
  - id: twin_daggers
    name: Twin Daggers
    description: A pair of sharp, quiet daggers.
    category: weapon
    effect:
      kind: attribute_boost
      magnitude: 2
      attribute: agility
  - id: sunstone
    name: The Sunstone
    description: The complete Sunstone. It feels heavy.
    category: artifact
`)

	reg, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}

	potion, err := reg.Get("health_potion")
	if err != nil {
		t.Fatalf("Get health_potion: %v", err)
	}
	if potion.Category != CategoryPotion {
		t.Errorf("Expected potion category, got %s", potion.Category)
	}
	if potion.Effect == nil || potion.Effect.Kind != EffectHeal || potion.Effect.Magnitude != 25 {
		t.Errorf("Expected heal 25 effect, got %+v", potion.Effect)
	}

	dag, err := reg.Get("twin_daggers")
	if err != nil {
		t.Fatalf("Get twin_daggers: %v", err)
	}
	if dag.Effect == nil || dag.Effect.Kind != EffectAttributeBoost || dag.Effect.Attribute != AttrAgility {
		t.Errorf("Expected agility boost effect, got %+v", dag.Effect)
	}

	stone, err := reg.Get("sunstone")
	if err != nil {
		t.Fatalf("Get sunstone: %v", err)
	}
	if stone.Effect != nil {
		t.Errorf("Expected no effect on artifact, got %+v", stone.Effect)
	}

	if reg.Has("elixir") {
		t.Error("Expected Has to be false for undefined id")
	}
}

func TestLoadRegistry_DuplicateID(t *testing.T) {
	path := writeDefs(t, `items:
  - id: health_potion
    name: Health Potion
    category: potion
    effect: {kind: heal, magnitude: 25}
  - id: health_potion
    name: Health Potion
    category: potion
    effect: {kind: heal, magnitude: 25}
`)
	_, err := LoadRegistry(path)
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("Expected ErrDuplicateID, got %v", err)
	}
}

func TestLoadRegistry_BadCategory(t *testing.T) {
	path := writeDefs(t, `items:
  - id: thing
    name: Thing
    category: gadget
`)
	if _, err := LoadRegistry(path); err == nil {
		t.Fatal("Expected error for unknown category")
	}
}

func TestLoadRegistry_MissingFile(t *testing.T) {
	if _, err := LoadRegistry("does_not_exist.yaml"); err == nil {
		t.Fatal("Expected error for missing file")
	}
}

func TestGet_Unknown(t *testing.T) {
	reg := &Registry{defs: map[string]Item{}}
	if _, err := reg.Get("nope"); !errors.Is(err, ErrUnknownItem) {
		t.Fatalf("Expected ErrUnknownItem, got %v", err)
	}
}
