package card

import "math/rand"

// PerDeck is the number of cards in one standard deck.
const PerDeck = 108

// NewDeck builds decks copies of the standard deck. next hands out the
// sequence number for every card created, so numbers stay unique for the
// whole match.
func NewDeck(decks int, next func() int) []Card {
	cards := make([]Card, 0, decks*PerDeck)
	for i := 0; i < decks; i++ {
		for _, color := range Colors {
			cards = append(cards, colorCards(color, next)...)
		}
		cards = append(cards, blackCards(next)...)
	}
	return cards
}

func colorCards(color Color, next func() int) []Card {
	cards := make([]Card, 0, 26)
	for number := Kind(0); number <= 9; number++ {
		cards = append(cards, New(number, color, next()), New(number, color, next()))
	}
	for i := 0; i < 2; i++ {
		cards = append(cards,
			New(DrawTwo, color, next()),
			New(Skip, color, next()),
			New(Reverse, color, next()),
		)
	}
	return cards
}

func blackCards(next func() int) []Card {
	cards := make([]Card, 0, 8)
	for i := 0; i < 4; i++ {
		cards = append(cards, New(Wild, None, next()), New(WildDrawFour, None, next()))
	}
	return cards
}

// Shuffle permutes cards uniformly in place.
func Shuffle(cards []Card, rng *rand.Rand) {
	rng.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
}
