package player

import (
	"strconv"

	"github.com/jason-s-yu/uno/internal/card"
)

// Selection is a resolved play: the card in hand plus the color the player
// asked for. Color is None for a wild played without one.
type Selection struct {
	Card  card.Card
	Color card.Color
}

var aliases = map[string]card.Kind{
	"S":              card.Skip,
	"SK":             card.Skip,
	"SKIP":           card.Skip,
	"REV":            card.Reverse,
	"RV":             card.Reverse,
	"REVERSE":        card.Reverse,
	"+2":             card.DrawTwo,
	"D2":             card.DrawTwo,
	"DT":             card.DrawTwo,
	"DRAW2":          card.DrawTwo,
	"DRAWTWO":        card.DrawTwo,
	"DRAW-TWO":       card.DrawTwo,
	"W":              card.Wild,
	"WILD":           card.Wild,
	"W+4":            card.WildDrawFour,
	"+4":             card.WildDrawFour,
	"WD4":            card.WildDrawFour,
	"WILD+4":         card.WildDrawFour,
	"WILDDRAWFOUR":   card.WildDrawFour,
	"WILD-DRAW-FOUR": card.WildDrawFour,
}

// ParseKind resolves a numeral or action alias, ignoring case.
func ParseKind(token string) (card.Kind, bool) {
	t := card.Upper(token)
	if kind, ok := aliases[t]; ok {
		return kind, true
	}
	n, err := strconv.Atoi(t)
	if err != nil || len(t) != 1 {
		return 0, false
	}
	kind := card.Kind(n)
	return kind, kind.IsNumeral()
}

// Resolve maps free-text tokens to a card in hand. It accepts one token
// ("R5", "G+2", "W+4", "YW") or two tokens naming a color and a face in
// either order ("red 5", "w+4 blue"). Wild-family cards match on kind alone
// and take the given color as the chosen one. Among duplicates the lowest
// sequence number wins. Resolve never modifies hand.
func Resolve(tokens []string, hand []card.Card) (Selection, bool) {
	switch len(tokens) {
	case 1:
		tok := tokens[0]
		if len(tok) > 1 {
			if color, err := card.ParseColor(tok[:1]); err == nil {
				if kind, ok := ParseKind(tok[1:]); ok {
					if sel, ok := match(hand, kind, color); ok {
						return sel, true
					}
				}
			}
		}
		if kind, ok := ParseKind(tok); ok && kind.IsWild() {
			return match(hand, kind, card.None)
		}
		return Selection{}, false
	case 2:
		color, err := card.ParseColor(tokens[0])
		id := tokens[1]
		if err != nil {
			if color, err = card.ParseColor(tokens[1]); err != nil {
				return Selection{}, false
			}
			id = tokens[0]
		}
		kind, ok := ParseKind(id)
		if !ok {
			return Selection{}, false
		}
		return match(hand, kind, color)
	}
	return Selection{}, false
}

func match(hand []card.Card, kind card.Kind, color card.Color) (Selection, bool) {
	var (
		found card.Card
		ok    bool
	)
	for _, c := range hand {
		if c.Kind != kind {
			continue
		}
		if !kind.IsWild() && c.Color != color {
			continue
		}
		if !ok || c.Seq < found.Seq {
			found, ok = c, true
		}
	}
	if !ok {
		return Selection{}, false
	}
	if !kind.IsWild() {
		color = found.Color
	}
	return Selection{Card: found, Color: color}, true
}
