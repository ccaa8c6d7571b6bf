package card

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayable(t *testing.T) {
	top := New(7, Blue, 1)

	cases := []struct {
		name      string
		candidate Card
		want      bool
	}{
		{"same color", New(5, Blue, 2), true},
		{"same face", New(7, Green, 3), true},
		{"different color and face", New(8, Green, 4), false},
		{"action on matching color", New(DrawTwo, Blue, 5), true},
		{"action on other color", New(Reverse, Yellow, 6), false},
		{"wild", New(Wild, None, 7), true},
		{"wild draw four", New(WildDrawFour, None, 8), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Playable(tc.candidate, top))
		})
	}

	t.Run("colorless top accepts anything", func(t *testing.T) {
		assert.True(t, Playable(New(3, Red, 9), New(Wild, None, 10)))
	})

	t.Run("colored wild top constrains color", func(t *testing.T) {
		top := New(Wild, None, 11).WithColor(Red)
		assert.True(t, Playable(New(3, Red, 12), top))
		assert.False(t, Playable(New(3, Green, 13), top))
	})
}

func TestLessOrdersByColorThenFace(t *testing.T) {
	hand := []Card{
		New(Wild, None, 1),
		New(5, Red, 2),
		New(Skip, Blue, 3),
		New(2, Blue, 4),
		New(9, Yellow, 5),
		New(0, Green, 6),
		New(5, Red, 7),
	}
	sort.Slice(hand, func(i, j int) bool { return hand[i].Less(hand[j]) })

	require.Equal(t, []Card{
		New(2, Blue, 4),
		New(Skip, Blue, 3),
		New(0, Green, 6),
		New(9, Yellow, 5),
		New(5, Red, 2),
		New(5, Red, 7),
		New(Wild, None, 1),
	}, hand)
}

func TestString(t *testing.T) {
	assert.Equal(t, "Red 5", New(5, Red, 1).String())
	assert.Equal(t, "Blue SKIP", New(Skip, Blue, 1).String())
	assert.Equal(t, "Green +2", New(DrawTwo, Green, 1).String())
	assert.Equal(t, "WILD+4", New(WildDrawFour, None, 1).String())
	assert.Equal(t, "WILD (Yellow)", New(Wild, None, 1).WithColor(Yellow).String())
}

func TestWithColorLeavesOriginal(t *testing.T) {
	wild := New(Wild, None, 4)
	played := wild.WithColor(Green)

	assert.Equal(t, None, wild.Color)
	assert.Equal(t, Green, played.Color)
	assert.Equal(t, wild, played.Uncolored())
	assert.Equal(t, New(3, Red, 5), New(3, Red, 5).Uncolored())
}

func TestParseColor(t *testing.T) {
	for _, in := range []string{"r", "R", "red", "Red", "RED"} {
		c, err := ParseColor(in)
		require.NoError(t, err)
		assert.Equal(t, Red, c)
	}
	_, err := ParseColor("purple")
	assert.Error(t, err)
}
