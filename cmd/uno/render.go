// cmd/uno/render.go
package main

import (
	"strings"

	"github.com/fatih/color"
	"github.com/jason-s-yu/uno/internal/card"
)

var palette = map[card.Color]*color.Color{
	card.Red:    color.New(color.FgHiRed),
	card.Yellow: color.New(color.FgHiYellow),
	card.Green:  color.New(color.FgHiGreen),
	card.Blue:   color.New(color.FgHiCyan),
	card.None:   color.New(color.FgHiMagenta, color.Bold),
}

var emphasis = color.New(color.Bold)

// paintCard renders a card in its own color. Played wilds take the chosen
// color.
func paintCard(c card.Card) string {
	return palette[c.Color].Sprint(c.String())
}

func renderHand(hand []card.Card) string {
	parts := make([]string, len(hand))
	for i, c := range hand {
		parts[i] = paintCard(c)
	}
	return strings.Join(parts, ", ")
}

// paintText turns *starred* spans of engine output into bold text.
func paintText(s string) string {
	parts := strings.Split(s, "*")
	if len(parts) < 3 {
		return s
	}
	var b strings.Builder
	for i, p := range parts {
		switch {
		case i%2 == 0:
			b.WriteString(p)
		case i == len(parts)-1:
			// unmatched star
			b.WriteString("*" + p)
		default:
			b.WriteString(emphasis.Sprint(p))
		}
	}
	return b.String()
}
