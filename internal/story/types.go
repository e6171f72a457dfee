// Package story drives the stage-to-stage narrative: a graph of nodes
// loaded from YAML, walked one node at a time. Choices are identified by
// key, never by position, and options that depend on class, attributes,
// or story flags are gated rather than inserted, so numbering can never
// drift.
package story

// Story is a complete scripted adventure.
type Story struct {
	Title string           `yaml:"title"`
	Start string           `yaml:"start"`
	Nodes map[string]*Node `yaml:"nodes"`
}

// Node is a single scene. After its text, effects, grants, and flags are
// applied, exactly one continuation fires: a battle, a flag branch, a
// choice menu, an automatic advance, or an ending.
type Node struct {
	Title    string   `yaml:"title"`
	Text     []string `yaml:"text"`
	Effects  []Effect `yaml:"effects"`
	Grant    []string `yaml:"grant"`
	SetFlags []string `yaml:"setFlags"`

	Battle  *Battle  `yaml:"battle"`
	Branch  *Branch  `yaml:"branch"`
	Choices []Choice `yaml:"choices"`
	Next    string   `yaml:"next"`
	Ending  string   `yaml:"ending"`
}

// Effect adjusts a player resource on entry: "health" and "mana" heal or
// damage through the vitals clamps, "maxHealth" raises the cap.
type Effect struct {
	Stat  string `yaml:"stat"`
	Value int    `yaml:"value"`
}

// Battle starts an encounter with a bestiary enemy and routes on its
// outcome. OnFled defaults to OnVictory when omitted.
type Battle struct {
	Enemy     string `yaml:"enemy"`
	OnVictory string `yaml:"onVictory"`
	OnDefeat  string `yaml:"onDefeat"`
	OnFled    string `yaml:"onFled"`
}

// Branch routes on a story flag.
type Branch struct {
	Flag string `yaml:"flag"`
	Then string `yaml:"then"`
	Else string `yaml:"else"`
}

// Choice is one key-tagged option in a node's menu. Require* fields gate
// whether the option is offered at all. A Check resolves the destination
// against a deterministic attribute threshold instead of Next.
type Choice struct {
	Key  string `yaml:"key"`
	Text string `yaml:"text"`
	Next string `yaml:"next"`

	RequireClass string    `yaml:"requireClass"`
	RequireStat  *StatGate `yaml:"requireStat"`
	RequireFlag  string    `yaml:"requireFlag"`

	Check         *StatGate `yaml:"check"`
	OnSuccessNext string    `yaml:"onSuccessNext"`
	OnFailureNext string    `yaml:"onFailureNext"`
}

// StatGate is an attribute threshold: it passes when the attribute is
// strictly greater than Above.
type StatGate struct {
	Stat  string `yaml:"stat"`
	Above int    `yaml:"above"`
}

// Terminal ending tags a story can resolve to.
const (
	EndingGameOver = "game_over"
	EndingGood     = "ending_good"
	EndingNeutral  = "ending_neutral"
	EndingBad      = "ending_bad"
)

// ValidEnding reports whether a tag names a known ending.
func ValidEnding(tag string) bool {
	switch tag {
	case EndingGameOver, EndingGood, EndingNeutral, EndingBad:
		return true
	default:
		return false
	}
}
