// internal/player/player.go
package player

import (
	"sort"

	"github.com/jason-s-yu/uno/internal/card"
)

// Player is the per-participant state of a match. Only the engine mutates it.
type Player struct {
	ID          int
	Username    string
	Hand        []card.Card
	CalledUno   bool
	Finished    bool
	CardsPlayed int
	Messages    []string
}

// New creates an empty-handed player.
func New(id int, username string) *Player {
	return &Player{
		ID:       id,
		Username: username,
		Hand:     make([]card.Card, 0, 7),
	}
}

// AddCards puts cards into the hand. A changed hand invalidates an UNO call.
func (p *Player) AddCards(cards []card.Card) {
	p.Hand = append(p.Hand, cards...)
	p.sortHand()
	p.CalledUno = false
}

// RemoveCard takes the card with the given sequence number out of the hand.
// It reports false if the card is not held.
func (p *Player) RemoveCard(seq int) (card.Card, bool) {
	for i, c := range p.Hand {
		if c.Seq == seq {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			p.sortHand()
			p.CalledUno = false
			return c, true
		}
	}
	return card.Card{}, false
}

// Card returns the held card with the given sequence number.
func (p *Player) Card(seq int) (card.Card, bool) {
	for _, c := range p.Hand {
		if c.Seq == seq {
			return c, true
		}
	}
	return card.Card{}, false
}

// HasPlayable reports whether any held card can go on top.
func (p *Player) HasPlayable(top card.Card) bool {
	for _, c := range p.Hand {
		if card.Playable(c, top) {
			return true
		}
	}
	return false
}

// Resolve maps the player's text tokens to a card in their hand.
func (p *Player) Resolve(tokens []string) (Selection, bool) {
	return Resolve(tokens, p.Hand)
}

// Notify queues a message for the messaging layer.
func (p *Player) Notify(msg string) {
	p.Messages = append(p.Messages, msg)
}

// DrainMessages returns the queued messages and empties the queue.
func (p *Player) DrainMessages() []string {
	msgs := p.Messages
	p.Messages = nil
	return msgs
}

// Snapshot returns a deep copy that is safe to hand out of the engine.
func (p *Player) Snapshot() Player {
	cp := *p
	cp.Hand = append([]card.Card(nil), p.Hand...)
	cp.Messages = append([]string(nil), p.Messages...)
	return cp
}

func (p *Player) sortHand() {
	sort.SliceStable(p.Hand, func(i, j int) bool { return p.Hand[i].Less(p.Hand[j]) })
}
