// internal/game/commands.go
package game

import (
	"fmt"
	"strings"

	"github.com/jason-s-yu/uno/internal/card"
	"github.com/jason-s-yu/uno/internal/player"
	"github.com/jason-s-yu/uno/internal/rules"
	"github.com/sirupsen/logrus"
)

// Play resolves text against the current player's hand and plays that card.
// Rejected plays leave the match untouched.
func (e *Engine) Play(text string) (string, error) {
	if err := e.ready(); err != nil {
		return "", err
	}
	p := e.current()
	sel, ok := p.Resolve(strings.Fields(text))
	if !ok {
		e.reject(p, "play", ErrCardNotInHand)
		return "", fmt.Errorf("%w: card %q not found in hand, it's currently %s's turn", ErrCardNotInHand, text, p.Username)
	}
	return e.play(p, sel)
}

func (e *Engine) play(p *player.Player, sel player.Selection) (string, error) {
	top := e.top()
	if sel.Card.IsWild() && sel.Color == card.None {
		e.reject(p, "play", ErrColorRequired)
		return "", fmt.Errorf("%w: say which color you want, e.g. \"%s red\"", ErrColorRequired, sel.Card.Kind)
	}
	if !card.Playable(sel.Card, top) {
		e.reject(p, "play", ErrIllegalPlay)
		return "", fmt.Errorf("%w: you cannot play %s here, last played card was %s", ErrIllegalPlay, sel.Card, top)
	}

	played := sel.Card
	if played.IsWild() {
		played = played.WithColor(sel.Color)
	}
	p.RemoveCard(sel.Card.Seq)
	p.CardsPlayed++
	e.discard = append(e.discard, played)
	e.calledOut = false

	var out strings.Builder
	fmt.Fprintf(&out, "%s played %s.", p.Username, played)

	if len(p.Hand) == 0 {
		p.Finished = true
		e.finished = append(e.finished, p)
		fmt.Fprintf(&out, "\n%s has no more cards. They finished in rank *%d*!", p.Username, len(e.finished))
		e.Log.WithFields(logrus.Fields{"player": p.ID, "rank": len(e.finished)}).Info("player finished")

		if len(e.queue) == 2 {
			last := e.players[e.queue[1]]
			last.Finished = true
			e.finished = append(e.finished, last)
			e.queue = nil
			out.WriteString("\n\n")
			out.WriteString(e.Scoreboard())
			e.Log.Info("match over")
			return out.String(), nil
		}
	}

	effect, err := e.applyEffect(played)
	if err != nil {
		return "", err
	}
	if effect != "" {
		out.WriteString("\n")
		out.WriteString(effect)
	}
	if err := e.nextTurn(); err != nil {
		return "", err
	}
	fmt.Fprintf(&out, "\nIt is now %s's turn.", e.current().Username)
	return out.String(), nil
}

// applyEffect runs the side effect of a freshly played card before the
// turn advances.
func (e *Engine) applyEffect(played card.Card) (string, error) {
	switch played.Kind {
	case card.Reverse:
		if len(e.queue) > 2 {
			e.reverse()
			return "Turns are now in reverse order!", nil
		}
		if e.rules.Enabled(rules.ReversesSkip) {
			return fmt.Sprintf("%s, skip a turn!", e.skip().Username), nil
		}
		return "", nil
	case card.Skip:
		return fmt.Sprintf("%s, skip a turn!", e.skip().Username), nil
	case card.DrawTwo:
		return e.penalize(2*e.drawTwoStack(), "")
	case card.Wild:
		return fmt.Sprintf("The color is now %s.", played.Color), nil
	case card.WildDrawFour:
		return e.penalize(4, fmt.Sprintf(" The color is now %s.", played.Color))
	}
	return "", nil
}

// drawTwoStack counts the consecutive DRAW-TWO cards on top of the pile.
func (e *Engine) drawTwoStack() int {
	n := 0
	for i := len(e.discard) - 1; i >= 0 && e.discard[i].Kind == card.DrawTwo; i-- {
		n++
	}
	return n
}

// penalize makes the player after the head draw n cards, and skips them
// when Draws Skip is on.
func (e *Engine) penalize(n int, suffix string) (string, error) {
	victim := e.players[e.queue[1]]
	cards, err := e.deal(victim.ID, n)
	if err != nil {
		return "", err
	}
	notifyDrawn(victim, cards)

	msg := fmt.Sprintf("%s picks up %d!%s", victim.Username, n, suffix)
	if e.rules.Enabled(rules.DrawsSkip) {
		e.skip()
		msg += " Also, skip a turn!"
	}
	return msg, nil
}

// Draw gives the current player one card. Depending on the rules the card
// is played straight away, the turn passes, or the player may still play.
func (e *Engine) Draw() (string, error) {
	if err := e.ready(); err != nil {
		return "", err
	}
	p := e.current()
	if e.drewThisTurn {
		e.reject(p, "draw", ErrAlreadyDrew)
		return "", fmt.Errorf("%w: play a card or pass", ErrAlreadyDrew)
	}
	top := e.top()
	if e.rules.Enabled(rules.MustPlay) && p.HasPlayable(top) {
		e.reject(p, "draw", ErrMustPlay)
		return "", fmt.Errorf("%w: you must play a card if able", ErrMustPlay)
	}

	cards, err := e.deal(p.ID, 1)
	if err != nil {
		return "", err
	}
	drawn := cards[0]
	res := fmt.Sprintf("You drew %s.", drawn)

	// Drawn wilds stay in hand; there is nobody to pick their color.
	if e.rules.Enabled(rules.AutoPlayAfterDraw) && !drawn.IsWild() && card.Playable(drawn, top) {
		played, err := e.play(p, player.Selection{Card: drawn, Color: drawn.Color})
		if err != nil {
			return "", err
		}
		return res + "\n" + played, nil
	}

	if !e.rules.Enabled(rules.AutoPassTurns) {
		e.drewThisTurn = true
		return res + " Play a card or pass.", nil
	}
	if err := e.nextTurn(); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s\nIt is now %s's turn.", res, e.current().Username), nil
}

// Pass ends the current turn after a draw that kept the turn. A player who
// drew while Automatically Pass Turns was off may pass even if the rule has
// since been switched back on.
func (e *Engine) Pass() (string, error) {
	if err := e.ready(); err != nil {
		return "", err
	}
	p := e.current()
	if !e.drewThisTurn {
		if e.rules.Enabled(rules.AutoPassTurns) {
			return "", fmt.Errorf("%w: turns pass automatically after drawing", ErrCannotPass)
		}
		return "", fmt.Errorf("%w: draw a card before passing", ErrCannotPass)
	}
	if err := e.nextTurn(); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s passes. It is now %s's turn.", p.Username, e.current().Username), nil
}

// Callout penalizes every active player holding one card who has not said
// UNO. A callout that catches nobody costs the caller instead.
func (e *Engine) Callout(callerID int) (string, error) {
	if err := e.ready(); err != nil {
		return "", err
	}
	caller, err := e.activePlayer(callerID)
	if err != nil {
		return "", err
	}
	if !e.rules.Enabled(rules.Callouts) {
		return "", ErrCalloutsDisabled
	}
	if e.calledOut {
		return "", ErrDuplicateCallout
	}
	e.calledOut = true

	var targets []*player.Player
	for _, id := range e.queue {
		if p := e.players[id]; len(p.Hand) == 1 && !p.CalledUno {
			targets = append(targets, p)
		}
	}

	if len(targets) == 0 {
		n := e.rules.Value(rules.FalseCalloutPenalty)
		cards, err := e.deal(caller.ID, n)
		if err != nil {
			return "", err
		}
		notifyDrawn(caller, cards)
		return fmt.Sprintf("There was no one to call out! %s picks up %d.", caller.Username, n), nil
	}

	n := e.rules.Value(rules.CalloutPenalty)
	lines := make([]string, 0, len(targets))
	for _, t := range targets {
		cards, err := e.deal(t.ID, n)
		if err != nil {
			return "", err
		}
		t.Notify(fmt.Sprintf("%s called you out for not saying UNO!", caller.Username))
		notifyDrawn(t, cards)
		lines = append(lines, fmt.Sprintf("%s, you did not say UNO! Pick up %d.", t.Username, n))
	}
	e.Log.WithFields(logrus.Fields{"caller": caller.ID, "caught": len(targets)}).Debug("callout")
	return strings.Join(lines, "\n"), nil
}

// SayUno records that a player holding a single card declared it.
func (e *Engine) SayUno(id int) (string, error) {
	if err := e.ready(); err != nil {
		return "", err
	}
	p, err := e.activePlayer(id)
	if err != nil {
		return "", err
	}
	if len(p.Hand) != 1 {
		return "", fmt.Errorf("%w: you have %d cards, not 1", ErrTooManyCards, len(p.Hand))
	}
	if p.CalledUno {
		return "You already said UNO!", nil
	}
	p.CalledUno = true
	return fmt.Sprintf("%s: UNO!", p.Username), nil
}

// activePlayer returns a registered player who is still in the turn queue.
func (e *Engine) activePlayer(id int) (*player.Player, error) {
	p, ok := e.players[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrPlayerNotFound, id)
	}
	for _, qid := range e.queue {
		if qid == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %s has already finished", ErrPlayerInactive, p.Username)
}

func (e *Engine) reject(p *player.Player, command string, reason error) {
	e.Log.WithFields(logrus.Fields{
		"player":  p.ID,
		"command": command,
		"reason":  reason.Error(),
	}).Debug("command rejected")
}

func notifyDrawn(p *player.Player, cards []card.Card) {
	if len(cards) == 0 {
		return
	}
	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = c.String()
	}
	p.Notify("You picked up " + strings.Join(names, ", ") + ".")
}
