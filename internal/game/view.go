// internal/game/view.go
package game

import (
	"fmt"
	"strings"

	"github.com/jason-s-yu/uno/internal/card"
	"github.com/jason-s-yu/uno/internal/player"
	"github.com/jason-s-yu/uno/internal/rules"
	"github.com/sirupsen/logrus"
)

// SetRule changes a rule by name. Bad names and values leave the table as is.
func (e *Engine) SetRule(name string, value int) (string, error) {
	if err := e.rules.Set(name, value); err != nil {
		return "", err
	}
	r, _ := e.rules.Get(name)
	e.Log.WithFields(logrus.Fields{"rule": r.Name, "value": value}).Info("rule changed")
	return "Rule changed", nil
}

// UpdateRules applies a batch of rule values, all or nothing.
func (e *Engine) UpdateRules(values map[string]interface{}) error {
	return e.rules.Update(values)
}

// GetRule looks up a rule by name, ignoring case.
func (e *Engine) GetRule(name string) (rules.Rule, bool) {
	return e.rules.Get(name)
}

// ShowRule renders one rule.
func (e *Engine) ShowRule(name string) (string, error) {
	r, ok := e.rules.Get(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrRuleNotFound, name)
	}
	return r.String(), nil
}

// ShowAllRules renders every rule with its current value.
func (e *Engine) ShowAllRules() string {
	parts := make([]string, 0, len(e.rules.Rules()))
	for _, r := range e.rules.Rules() {
		parts = append(parts, r.String())
	}
	return strings.Join(parts, "\n\n")
}

// CurrentPlayer returns a copy of the player whose turn it is.
func (e *Engine) CurrentPlayer() (player.Player, error) {
	if err := e.ready(); err != nil {
		return player.Player{}, err
	}
	return e.current().Snapshot(), nil
}

// CurrentDiscardTop returns the card on top of the discard pile.
func (e *Engine) CurrentDiscardTop() (card.Card, error) {
	if !e.started {
		return card.Card{}, ErrNotStarted
	}
	return e.top(), nil
}

// Player returns a copy of a registered player.
func (e *Engine) Player(id int) (player.Player, error) {
	p, ok := e.players[id]
	if !ok {
		return player.Player{}, fmt.Errorf("%w: %d", ErrPlayerNotFound, id)
	}
	return p.Snapshot(), nil
}

// Players returns copies of all registered players in id order.
func (e *Engine) Players() []player.Player {
	out := make([]player.Player, 0, len(e.players))
	for _, id := range e.registrationOrder() {
		out = append(out, e.players[id].Snapshot())
	}
	return out
}

// NotifyPlayer queues a message for a player's outgoing transport.
func (e *Engine) NotifyPlayer(id int, text string) error {
	p, ok := e.players[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrPlayerNotFound, id)
	}
	p.Notify(text)
	return nil
}

// DrainMessages hands over and clears a player's queued messages.
func (e *Engine) DrainMessages(id int) ([]string, error) {
	p, ok := e.players[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrPlayerNotFound, id)
	}
	return p.DrainMessages(), nil
}

// TableView describes the discard top, whose turn it is and hand sizes.
func (e *Engine) TableView() (string, error) {
	if err := e.ready(); err != nil {
		return "", err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "A %s has been played!\nIt is currently %s's turn!\n\n", e.top(), e.current().Username)
	for i, id := range e.queue {
		p := e.players[id]
		fmt.Fprintf(&b, "%d. %s - %d cards\n", i+1, p.Username, len(p.Hand))
	}
	fmt.Fprintf(&b, "This game has lasted %d minutes and %d cards have been drawn", e.minutes(), e.drawn)
	return b.String(), nil
}

// Scoreboard lists finishers by rank along with match statistics.
func (e *Engine) Scoreboard() string {
	var b strings.Builder
	if len(e.finished) == 0 {
		b.WriteString("No one has finished yet.\n")
	}
	for i, p := range e.finished {
		fmt.Fprintf(&b, "%d. *%s*\n", i+1, p.Username)
	}
	if len(e.dropped) > 0 {
		names := make([]string, len(e.dropped))
		for i, p := range e.dropped {
			names[i] = p.Username
		}
		fmt.Fprintf(&b, "Dropped: %s\n", strings.Join(names, ", "))
	}
	fmt.Fprintf(&b, "\nThis game lasted %d minutes and %d cards were drawn", e.minutes(), e.drawn)
	return b.String()
}

// Started reports whether Start succeeded.
func (e *Engine) Started() bool { return e.started }

// Over reports whether the match has ended, normally or fatally.
func (e *Engine) Over() bool {
	return e.fatal != nil || (e.started && len(e.queue) == 0)
}

// DeckSize is the number of cards left to draw.
func (e *Engine) DeckSize() int { return len(e.deck) }

// DiscardSize is the number of cards on the discard pile.
func (e *Engine) DiscardSize() int { return len(e.discard) }

// Drawn is the number of cards dealt or drawn this match.
func (e *Engine) Drawn() int { return e.drawn }

// Finished returns copies of the finishers in rank order.
func (e *Engine) Finished() []player.Player {
	out := make([]player.Player, len(e.finished))
	for i, p := range e.finished {
		out[i] = p.Snapshot()
	}
	return out
}

func (e *Engine) minutes() int64 {
	if !e.started {
		return 0
	}
	return e.Now().Unix()/60 - e.timeStarted
}
