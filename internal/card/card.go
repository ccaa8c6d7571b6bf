// internal/card/card.go
package card

import (
	"fmt"
	"strconv"
)

// Kind identifies the face of a card. Numerals use their own value.
type Kind int

const (
	Skip Kind = 10 + iota
	Reverse
	DrawTwo
	Wild
	WildDrawFour
)

// IsNumeral reports whether k is one of the numeral faces 0-9.
func (k Kind) IsNumeral() bool {
	return k >= 0 && k <= 9
}

// IsWild reports whether k belongs to the wild family.
func (k Kind) IsWild() bool {
	return k == Wild || k == WildDrawFour
}

// Valid reports whether k is a known face.
func (k Kind) Valid() bool {
	return k.IsNumeral() || (k >= Skip && k <= WildDrawFour)
}

func (k Kind) String() string {
	switch k {
	case Skip:
		return "SKIP"
	case Reverse:
		return "REVERSE"
	case DrawTwo:
		return "+2"
	case Wild:
		return "WILD"
	case WildDrawFour:
		return "WILD+4"
	}
	if k.IsNumeral() {
		return strconv.Itoa(int(k))
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Card is one physical card. Values are immutable; playing a wild produces
// a new value through WithColor.
type Card struct {
	Kind  Kind
	Color Color
	Seq   int // unique per match, disambiguates duplicates
}

// New builds a card value.
func New(kind Kind, color Color, seq int) Card {
	return Card{Kind: kind, Color: color, Seq: seq}
}

// IsWild reports whether the card belongs to the wild family.
func (c Card) IsWild() bool {
	return c.Kind.IsWild()
}

// WithColor returns a copy of c carrying the chosen color.
func (c Card) WithColor(color Color) Card {
	c.Color = color
	return c
}

// Uncolored returns c as it sits in the deck. Wild-family cards lose any
// color chosen when they were played.
func (c Card) Uncolored() Card {
	if c.IsWild() {
		c.Color = None
	}
	return c
}

// Less orders cards for hand display: color rank, then face, then sequence.
func (c Card) Less(other Card) bool {
	if c.Color.rank() != other.Color.rank() {
		return c.Color.rank() < other.Color.rank()
	}
	if c.Kind != other.Kind {
		return c.Kind < other.Kind
	}
	return c.Seq < other.Seq
}

// SameFace reports whether both cards show the same color and kind,
// ignoring the sequence number.
func (c Card) SameFace(other Card) bool {
	return c.Kind == other.Kind && c.Color == other.Color
}

func (c Card) String() string {
	if c.IsWild() {
		if c.Color == None {
			return c.Kind.String()
		}
		return fmt.Sprintf("%s (%s)", c.Kind, c.Color)
	}
	return fmt.Sprintf("%s %s", c.Color, c.Kind)
}

// Playable reports whether candidate may be played on top of the discard
// pile. A colorless top accepts anything; otherwise the face or color must
// match. Wild-family cards can always be played.
func Playable(candidate, top Card) bool {
	if candidate.IsWild() {
		return true
	}
	if top.Color == None {
		return true
	}
	return candidate.Kind == top.Kind || candidate.Color == top.Color
}
