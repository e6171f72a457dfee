package story

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ContentIndex answers whether a content id is defined. The item
// registry and the bestiary both satisfy it.
type ContentIndex interface {
	Has(id string) bool
}

// Load reads a story from a YAML file.
func Load(path string) (*Story, error) {
	b, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	var s Story
	if err := yaml.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("parse story: %w", err)
	}
	return &s, nil
}

// Validate cross-checks the story graph: every destination must name an
// existing node, every granted item and battle enemy must be defined,
// ending tags must be known, and every node must have exactly one way
// forward. A story that validates cannot strand the player at runtime.
func (s *Story) Validate(items, enemies ContentIndex) error {
	if s.Start == "" {
		return fmt.Errorf("story has no start node")
	}
	if s.Nodes[s.Start] == nil {
		return fmt.Errorf("start node %q not defined", s.Start)
	}

	for id, n := range s.Nodes {
		if err := s.validateNode(id, n, items, enemies); err != nil {
			return err
		}
	}
	return nil
}

func (s *Story) validateNode(id string, n *Node, items, enemies ContentIndex) error {
	ref := func(dest, what string) error {
		if dest == "" {
			return fmt.Errorf("node %s: %s has no destination", id, what)
		}
		if s.Nodes[dest] == nil {
			return fmt.Errorf("node %s: %s points at unknown node %q", id, what, dest)
		}
		return nil
	}

	continuations := 0
	if n.Battle != nil {
		continuations++
		if !enemies.Has(n.Battle.Enemy) {
			return fmt.Errorf("node %s: unknown enemy %q", id, n.Battle.Enemy)
		}
		if err := ref(n.Battle.OnVictory, "battle onVictory"); err != nil {
			return err
		}
		if err := ref(n.Battle.OnDefeat, "battle onDefeat"); err != nil {
			return err
		}
		if n.Battle.OnFled != "" {
			if err := ref(n.Battle.OnFled, "battle onFled"); err != nil {
				return err
			}
		}
	}
	if n.Branch != nil {
		continuations++
		if err := ref(n.Branch.Then, "branch then"); err != nil {
			return err
		}
		if err := ref(n.Branch.Else, "branch else"); err != nil {
			return err
		}
	}
	if len(n.Choices) > 0 {
		continuations++
		keys := map[string]bool{}
		for _, ch := range n.Choices {
			if ch.Key == "" {
				return fmt.Errorf("node %s: choice without key", id)
			}
			if keys[ch.Key] {
				return fmt.Errorf("node %s: duplicate choice key %q", id, ch.Key)
			}
			keys[ch.Key] = true
			if err := s.validateChoice(id, ch, ref); err != nil {
				return err
			}
		}
	}
	if n.Next != "" {
		continuations++
		if err := ref(n.Next, "next"); err != nil {
			return err
		}
	}
	if n.Ending != "" {
		continuations++
		if !ValidEnding(n.Ending) {
			return fmt.Errorf("node %s: unknown ending tag %q", id, n.Ending)
		}
	}

	if continuations != 1 {
		return fmt.Errorf("node %s: needs exactly one continuation, has %d", id, continuations)
	}

	for _, grant := range n.Grant {
		if !items.Has(grant) {
			return fmt.Errorf("node %s: grants unknown item %q", id, grant)
		}
	}
	for _, ef := range n.Effects {
		switch ef.Stat {
		case "health", "mana", "maxHealth":
		default:
			return fmt.Errorf("node %s: unknown effect stat %q", id, ef.Stat)
		}
	}
	return nil
}

func (s *Story) validateChoice(id string, ch Choice, ref func(dest, what string) error) error {
	if ch.RequireStat != nil {
		if err := validGate(*ch.RequireStat); err != nil {
			return fmt.Errorf("node %s choice %s: %w", id, ch.Key, err)
		}
	}
	if ch.Check != nil {
		if err := validGate(*ch.Check); err != nil {
			return fmt.Errorf("node %s choice %s: %w", id, ch.Key, err)
		}
		if err := ref(ch.OnSuccessNext, "choice "+ch.Key+" onSuccessNext"); err != nil {
			return err
		}
		if err := ref(ch.OnFailureNext, "choice "+ch.Key+" onFailureNext"); err != nil {
			return err
		}
		return nil
	}
	return ref(ch.Next, "choice "+ch.Key)
}

func validGate(g StatGate) error {
	switch g.Stat {
	case "strength", "agility", "magic":
		return nil
	default:
		return fmt.Errorf("unknown gate stat %q", g.Stat)
	}
}
