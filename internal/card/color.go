package card

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Color is the suit of a card. Wild-family cards are None until played.
type Color int

const (
	None Color = iota
	Red
	Green
	Blue
	Yellow
)

// Colors lists the four playable colors in deck order.
var Colors = []Color{Red, Green, Blue, Yellow}

var colorNames = map[string]Color{
	"R":      Red,
	"RED":    Red,
	"G":      Green,
	"GREEN":  Green,
	"B":      Blue,
	"BLUE":   Blue,
	"Y":      Yellow,
	"YELLOW": Yellow,
}

// Upper upper-cases player input for table lookups.
func Upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// ParseColor resolves a color name or letter, ignoring case.
func ParseColor(s string) (Color, error) {
	if c, ok := colorNames[Upper(s)]; ok {
		return c, nil
	}
	return None, fmt.Errorf("invalid color '%s'", s)
}

// Letter returns the single letter form (R/G/B/Y), or "" for None.
func (c Color) Letter() string {
	switch c {
	case Red:
		return "R"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Yellow:
		return "Y"
	}
	return ""
}

func (c Color) String() string {
	switch c {
	case Red:
		return "Red"
	case Green:
		return "Green"
	case Blue:
		return "Blue"
	case Yellow:
		return "Yellow"
	}
	return "None"
}

// rank gives the display weight of the color: Blue, Green, Yellow, Red,
// then colorless cards last.
func (c Color) rank() int {
	switch c {
	case Blue:
		return 0
	case Green:
		return 1
	case Yellow:
		return 2
	case Red:
		return 3
	}
	return 4
}
