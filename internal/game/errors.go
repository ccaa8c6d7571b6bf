// internal/game/errors.go
package game

import (
	"errors"

	"github.com/jason-s-yu/uno/internal/rules"
)

// Errors returned by the engine. Player-facing ones wrap a message that can
// be shown as is; use IsMisuse and IsFatal to tell the other kinds apart.
var (
	ErrAlreadyStarted      = errors.New("game has already started")
	ErrNotStarted          = errors.New("game has not started")
	ErrInsufficientPlayers = errors.New("need at least two players to start")
	ErrInsufficientDeck    = errors.New("not enough cards to deal the opening hands")
	ErrDeckExhausted       = errors.New("no cards left to draw")
	ErrPlayerNotFound      = errors.New("player not found")
	ErrPlayerInactive      = errors.New("player is no longer in play")
	ErrCardNotInHand       = errors.New("card not in hand")
	ErrIllegalPlay         = errors.New("illegal play")
	ErrColorRequired       = errors.New("a color is required")
	ErrMustPlay            = errors.New("must play")
	ErrAlreadyDrew         = errors.New("already drew this turn")
	ErrCannotPass          = errors.New("cannot pass")
	ErrCalloutsDisabled    = errors.New("callouts are not permitted in this game")
	ErrDuplicateCallout    = errors.New("a callout was already performed this turn")
	ErrTooManyCards        = errors.New("too many cards")
	ErrGameOver            = errors.New("game has ended")

	ErrRuleNotFound     = rules.ErrNotFound
	ErrRuleOutOfBounds  = rules.ErrOutOfBounds
	ErrRuleTypeMismatch = rules.ErrTypeMismatch
)

// IsMisuse reports whether err comes from the host driving the engine
// incorrectly rather than from a player's move.
func IsMisuse(err error) bool {
	return errors.Is(err, ErrPlayerNotFound) ||
		errors.Is(err, ErrNotStarted) ||
		errors.Is(err, ErrAlreadyStarted) ||
		errors.Is(err, ErrInsufficientPlayers) ||
		errors.Is(err, ErrInsufficientDeck)
}

// IsFatal reports whether the match can no longer continue.
func IsFatal(err error) bool {
	return errors.Is(err, ErrDeckExhausted)
}
