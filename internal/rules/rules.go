// internal/rules/rules.go
package rules

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Type is the value domain of a rule.
type Type int

const (
	Integer Type = iota
	Boolean
)

func (t Type) String() string {
	if t == Boolean {
		return "boolean"
	}
	return "integer"
}

// ID indexes the fixed rule table.
type ID int

const (
	Decks ID = iota
	InitialCards
	DrawsSkip
	ReversesSkip
	MustPlay
	Callouts
	CalloutPenalty
	FalseCalloutPenalty
	AutoPlayAfterDraw
	AutoPassTurns

	count
)

var (
	ErrNotFound     = errors.New("rule not found")
	ErrOutOfBounds  = errors.New("rule value out of bounds")
	ErrTypeMismatch = errors.New("rule value has the wrong type")
)

// Rule is a named, bounded configuration value. Min and Max are ignored for
// boolean rules, whose value is always 0 or 1.
type Rule struct {
	ID          ID
	Name        string
	Description string
	Type        Type
	Value       int
	Min         int
	Max         int
}

// Enabled reports whether a boolean rule is switched on.
func (r Rule) Enabled() bool {
	return r.Value != 0
}

// Accepts reports whether v satisfies the rule's type and bounds.
func (r Rule) Accepts(v int) error {
	if r.Type == Boolean {
		if v != 0 && v != 1 {
			return fmt.Errorf("%w: value for rule %s must be 0 or 1", ErrTypeMismatch, r.Name)
		}
		return nil
	}
	if v < r.Min || v > r.Max {
		return fmt.Errorf("%w: value %d is out of bounds for %s (%d-%d)", ErrOutOfBounds, v, r.Name, r.Min, r.Max)
	}
	return nil
}

// String renders the rule the way it is shown to players.
func (r Rule) String() string {
	return fmt.Sprintf("*%s*\nType: %s\nValue: %d\n\n%s", r.Name, r.Type, r.Value, r.Description)
}

// RuleSet is the fixed table of rules for one match.
type RuleSet struct {
	rules  [count]Rule
	byName map[string]ID
}

// key folds a rule name for lookup. Casers carry state, so each call gets
// its own.
func key(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// Defaults returns a rule set holding the default value of every rule.
func Defaults() *RuleSet {
	rs := &RuleSet{
		rules: [count]Rule{
			{Decks, "Decks", "The number of decks to use.", Integer, 1, 1, 8},
			{InitialCards, "Initial Cards", "How many cards to pick up at the beginning.", Integer, 7, 1, 5000},
			{DrawsSkip, "Draws Skip", "Whether pickup cards (+2, +4) should also skip the next person's turn.", Boolean, 1, 0, 1},
			{ReversesSkip, "Reverses Skip", "Whether reverse cards skip turns when there's only two players left.", Boolean, 1, 0, 1},
			{MustPlay, "Must Play", "Whether someone must play a card if they are able to.", Boolean, 0, 0, 1},
			{Callouts, "Callouts", "Gives the ability to call someone out for not saying uno!", Boolean, 1, 0, 1},
			{CalloutPenalty, "Callout Penalty", "The number of cards to give someone when called out.", Integer, 2, 0, 1000},
			{FalseCalloutPenalty, "False Callout Penalty", "The number of cards to give someone for falsely calling someone out.", Integer, 2, 0, 1000},
			{AutoPlayAfterDraw, "Automatically Play After Draw", "Automatically plays a card after drawing, if possible. Drawn wild cards are kept in hand.", Boolean, 0, 0, 1},
			{AutoPassTurns, "Automatically Pass Turns", "Automatically proceeds to the next turn after drawing. When off, the player may play or pass after drawing.", Boolean, 1, 0, 1},
		},
		byName: make(map[string]ID, count),
	}
	for _, r := range rs.rules {
		rs.byName[key(r.Name)] = r.ID
	}
	return rs
}

// Get looks a rule up by name, ignoring case.
func (rs *RuleSet) Get(name string) (Rule, bool) {
	id, ok := rs.byName[key(name)]
	if !ok {
		return Rule{}, false
	}
	return rs.rules[id], true
}

// Value returns the current value of a rule.
func (rs *RuleSet) Value(id ID) int {
	return rs.rules[id].Value
}

// Enabled reports whether a boolean rule is on.
func (rs *RuleSet) Enabled(id ID) bool {
	return rs.rules[id].Enabled()
}

// Set changes a rule's value. Rejected values leave the rule untouched.
func (rs *RuleSet) Set(name string, value int) error {
	r, ok := rs.Get(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err := r.Accepts(value); err != nil {
		return err
	}
	rs.rules[r.ID].Value = value
	return nil
}

// Rules returns a copy of the table in index order.
func (rs *RuleSet) Rules() []Rule {
	out := make([]Rule, len(rs.rules))
	copy(out, rs.rules[:])
	return out
}

// Update applies a batch of named values, as decoded from JSON or the
// environment. Every entry is validated before any rule changes.
func (rs *RuleSet) Update(values map[string]interface{}) error {
	pending := make(map[ID]int, len(values))
	for name, raw := range values {
		if raw == nil {
			continue
		}
		r, ok := rs.Get(name)
		if !ok {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		v, err := coerce(r, raw)
		if err != nil {
			return err
		}
		if err := r.Accepts(v); err != nil {
			return err
		}
		pending[r.ID] = v
	}
	for id, v := range pending {
		rs.rules[id].Value = v
	}
	return nil
}

// coerce converts a decoded value to an int. JSON numbers arrive as
// float64; booleans are only accepted for boolean rules.
func coerce(r Rule, raw interface{}) (int, error) {
	switch v := raw.(type) {
	case bool:
		if r.Type != Boolean {
			return 0, fmt.Errorf("%w: %s expects an integer", ErrTypeMismatch, r.Name)
		}
		if v {
			return 1, nil
		}
		return 0, nil
	case int:
		return v, nil
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("%w: %s expects a whole number", ErrTypeMismatch, r.Name)
		}
		return int(v), nil
	default:
		return 0, fmt.Errorf("%w: invalid type for %s", ErrTypeMismatch, r.Name)
	}
}
