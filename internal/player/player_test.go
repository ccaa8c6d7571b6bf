package player

import (
	"testing"

	"github.com/jason-s-yu/uno/internal/card"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCardsSortsAndClearsUno(t *testing.T) {
	p := New(0, "ana")
	p.CalledUno = true
	p.AddCards([]card.Card{
		card.New(card.Wild, card.None, 1),
		card.New(4, card.Red, 2),
		card.New(7, card.Blue, 3),
	})

	require.Equal(t, []card.Card{
		card.New(7, card.Blue, 3),
		card.New(4, card.Red, 2),
		card.New(card.Wild, card.None, 1),
	}, p.Hand)
	assert.False(t, p.CalledUno)
}

func TestRemoveCard(t *testing.T) {
	t.Run("removes a single copy by sequence", func(t *testing.T) {
		p := New(0, "ana")
		p.AddCards([]card.Card{
			card.New(6, card.Red, 1),
			card.New(6, card.Red, 2),
			card.New(card.Wild, card.None, 3),
		})
		p.CalledUno = true

		removed, ok := p.RemoveCard(2)
		require.True(t, ok)
		assert.Equal(t, card.New(6, card.Red, 2), removed)
		assert.Equal(t, []card.Card{
			card.New(6, card.Red, 1),
			card.New(card.Wild, card.None, 3),
		}, p.Hand)
		assert.False(t, p.CalledUno)
	})

	t.Run("does nothing if the card is not held", func(t *testing.T) {
		p := New(0, "ana")
		p.AddCards([]card.Card{card.New(6, card.Red, 1)})
		p.CalledUno = true

		_, ok := p.RemoveCard(9)
		assert.False(t, ok)
		assert.Len(t, p.Hand, 1)
		assert.True(t, p.CalledUno)
	})
}

func TestHasPlayable(t *testing.T) {
	p := New(0, "ana")
	p.AddCards([]card.Card{card.New(3, card.Green, 1), card.New(card.Skip, card.Yellow, 2)})

	assert.True(t, p.HasPlayable(card.New(3, card.Red, 3)))
	assert.True(t, p.HasPlayable(card.New(card.Skip, card.Blue, 4)))
	assert.False(t, p.HasPlayable(card.New(8, card.Red, 5)))
}

func TestMessages(t *testing.T) {
	p := New(0, "ana")
	p.Notify("one")
	p.Notify("two")

	snap := p.Snapshot()
	assert.Equal(t, []string{"one", "two"}, p.DrainMessages())
	assert.Empty(t, p.Messages)
	assert.Equal(t, []string{"one", "two"}, snap.Messages)
}

func TestSnapshotIsDetached(t *testing.T) {
	p := New(0, "ana")
	p.AddCards([]card.Card{card.New(1, card.Blue, 1)})

	snap := p.Snapshot()
	snap.Hand[0] = card.New(2, card.Red, 2)
	assert.Equal(t, card.New(1, card.Blue, 1), p.Hand[0])
}
