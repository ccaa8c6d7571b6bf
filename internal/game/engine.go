// internal/game/engine.go
package game

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jason-s-yu/uno/internal/card"
	"github.com/jason-s-yu/uno/internal/player"
	"github.com/jason-s-yu/uno/internal/rules"
	"github.com/sirupsen/logrus"
)

// Engine holds the entire state of one UNO match in memory. It is not safe
// for concurrent use; hosts serialize access per match (see Match).
type Engine struct {
	ID uuid.UUID

	players  map[int]*player.Player // authoritative registry
	queue    []int                  // turn order, head is the current player
	deck     []card.Card            // top is index 0
	discard  []card.Card            // top is the last element
	finished []*player.Player
	dropped  []*player.Player
	rules    *rules.RuleSet

	started      bool
	calledOut    bool // a callout already happened this turn
	drewThisTurn bool
	drawn        int
	nextID       int
	nextSeq      int
	timeStarted  int64 // minutes since the epoch
	fatal        error

	// Rand shuffles the deck. Replace before Start for reproducible matches.
	Rand *rand.Rand
	// Now is the clock used for match duration.
	Now func() time.Time
	// Log receives lifecycle and rejection entries.
	Log *logrus.Entry
}

// NewEngine builds an empty match with default rules.
func NewEngine() *Engine {
	id := uuid.New()
	logger := logrus.New()
	return &Engine{
		ID:      id,
		players: make(map[int]*player.Player),
		rules:   rules.Defaults(),
		nextSeq: 1,
		Rand:    rand.New(rand.NewSource(time.Now().UnixNano())),
		Now:     time.Now,
		Log:     logger.WithField("match", id.String()),
	}
}

// AddPlayer registers a player before the match starts and returns the id.
func (e *Engine) AddPlayer(name string) (int, error) {
	if e.started {
		return 0, ErrAlreadyStarted
	}
	p := player.New(e.nextID, name)
	e.nextID++
	e.players[p.ID] = p
	e.Log.WithFields(logrus.Fields{"player": p.ID, "name": name}).Debug("player added")
	return p.ID, nil
}

// RemovePlayer drops a player at any time. A match left with a single
// active player ends with that player ranked last. Players who already
// finished keep their rank and are not listed as dropped.
func (e *Engine) RemovePlayer(id int) error {
	p, ok := e.players[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrPlayerNotFound, id)
	}
	wasCurrent := e.currentID() == id
	if !p.Finished {
		e.dropped = append(e.dropped, p)
	}
	delete(e.players, id)
	e.queue = removeID(e.queue, id)
	if wasCurrent {
		e.resetTurn()
	}
	e.Log.WithField("player", id).Info("player dropped")

	if e.started && len(e.queue) == 1 {
		last := e.players[e.queue[0]]
		last.Finished = true
		e.finished = append(e.finished, last)
		e.queue = nil
		e.Log.Info("match ended, one player left")
	}
	return nil
}

// Start builds and shuffles the deck, turns the opening card and deals the
// opening hands in registration order.
func (e *Engine) Start() error {
	if e.started {
		return ErrAlreadyStarted
	}
	if len(e.players) < 2 {
		return fmt.Errorf("%w: have %d", ErrInsufficientPlayers, len(e.players))
	}
	decks := e.rules.Value(rules.Decks)
	perHand := e.rules.Value(rules.InitialCards)
	if perHand*len(e.players) > decks*card.PerDeck-1 {
		return fmt.Errorf("%w: %d players x %d cards from %d deck(s)", ErrInsufficientDeck, len(e.players), perHand, decks)
	}

	e.deck = card.NewDeck(decks, e.sequence)
	card.Shuffle(e.deck, e.Rand)
	e.discard = append(e.discard, e.deck[0])
	e.deck = e.deck[1:]
	e.timeStarted = e.Now().Unix() / 60
	e.started = true

	for _, id := range e.registrationOrder() {
		e.queue = append(e.queue, id)
		if _, err := e.deal(id, perHand); err != nil {
			return err
		}
	}

	e.Log.WithFields(logrus.Fields{
		"players": len(e.players),
		"deck":    len(e.deck),
		"opening": e.top().String(),
	}).Info("match started")
	return nil
}

func (e *Engine) sequence() int {
	n := e.nextSeq
	e.nextSeq++
	return n
}

func (e *Engine) registrationOrder() []int {
	ids := make([]int, 0, len(e.players))
	for id := range e.players {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// deal moves n cards from the deck into a player's hand, recycling the
// discard pile under its top card when the deck runs short.
func (e *Engine) deal(id, n int) ([]card.Card, error) {
	p, ok := e.players[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrPlayerNotFound, id)
	}
	if len(e.deck) < n {
		if len(e.deck)+len(e.discard)-1 < n {
			e.fatal = fmt.Errorf("%w: needed %d, deck has %d and discard pile %d", ErrDeckExhausted, n, len(e.deck), len(e.discard))
			e.Log.WithError(e.fatal).Error("deck exhausted")
			return nil, e.fatal
		}
		e.recycle()
	}

	cards := make([]card.Card, n)
	copy(cards, e.deck[:n])
	e.deck = e.deck[n:]
	e.drawn += n
	p.AddCards(cards)
	return cards, nil
}

// recycle shuffles every discarded card except the top back into the deck.
func (e *Engine) recycle() {
	top := e.top()
	for _, c := range e.discard[:len(e.discard)-1] {
		e.deck = append(e.deck, c.Uncolored())
	}
	e.discard = []card.Card{top}
	card.Shuffle(e.deck, e.Rand)
	e.Log.WithField("deck", len(e.deck)).Info("discard pile reshuffled into deck")
}

// nextTurn rotates the head of the queue to the tail and drops finished
// players.
func (e *Engine) nextTurn() error {
	if len(e.queue) == 0 {
		return ErrGameOver
	}
	e.queue = append(e.queue[1:], e.queue[0])
	active := e.queue[:0]
	for _, id := range e.queue {
		if !e.players[id].Finished {
			active = append(active, id)
		}
	}
	e.queue = active
	e.resetTurn()
	return nil
}

// skip rotates the head to the tail ahead of the regular turn change, so
// the player after the head loses their turn. It returns that player.
func (e *Engine) skip() *player.Player {
	e.queue = append(e.queue[1:], e.queue[0])
	return e.players[e.queue[0]]
}

// reverse flips the turn order so the predecessor of the head moves next.
func (e *Engine) reverse() {
	for i, j := 1, len(e.queue)-1; i < j; i, j = i+1, j-1 {
		e.queue[i], e.queue[j] = e.queue[j], e.queue[i]
	}
}

func (e *Engine) resetTurn() {
	e.calledOut = false
	e.drewThisTurn = false
}

func (e *Engine) currentID() int {
	if len(e.queue) == 0 {
		return -1
	}
	return e.queue[0]
}

func (e *Engine) current() *player.Player {
	return e.players[e.currentID()]
}

func (e *Engine) top() card.Card {
	return e.discard[len(e.discard)-1]
}

// ready reports why commands cannot run right now, if anything.
func (e *Engine) ready() error {
	if e.fatal != nil {
		return e.fatal
	}
	if !e.started {
		return ErrNotStarted
	}
	if len(e.queue) == 0 {
		return ErrGameOver
	}
	return nil
}

func removeID(ids []int, id int) []int {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
