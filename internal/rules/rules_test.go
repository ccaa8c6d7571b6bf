package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	rs := Defaults()
	require.Len(t, rs.Rules(), 10)

	for i, r := range rs.Rules() {
		assert.Equal(t, ID(i), r.ID, "rule %s out of place", r.Name)
		got, ok := rs.Get(r.Name)
		require.True(t, ok)
		assert.Equal(t, r, got)
	}

	assert.Equal(t, 1, rs.Value(Decks))
	assert.Equal(t, 7, rs.Value(InitialCards))
	assert.True(t, rs.Enabled(DrawsSkip))
	assert.True(t, rs.Enabled(ReversesSkip))
	assert.False(t, rs.Enabled(MustPlay))
	assert.True(t, rs.Enabled(Callouts))
	assert.False(t, rs.Enabled(AutoPlayAfterDraw))
	assert.True(t, rs.Enabled(AutoPassTurns))
}

func TestGetIgnoresCase(t *testing.T) {
	rs := Defaults()
	r, ok := rs.Get("  initial CARDS ")
	require.True(t, ok)
	assert.Equal(t, InitialCards, r.ID)

	_, ok = rs.Get("house party")
	assert.False(t, ok)
}

func TestSet(t *testing.T) {
	t.Run("in bounds values stick", func(t *testing.T) {
		rs := Defaults()
		for _, r := range rs.Rules() {
			want := r.Max
			if r.Type == Boolean {
				want = 1 - r.Value
			}
			require.NoError(t, rs.Set(r.Name, want))
			got, _ := rs.Get(r.Name)
			assert.Equal(t, want, got.Value, r.Name)
		}
	})

	t.Run("integer out of bounds", func(t *testing.T) {
		rs := Defaults()
		assert.ErrorIs(t, rs.Set("Decks", 0), ErrOutOfBounds)
		assert.ErrorIs(t, rs.Set("Decks", 9), ErrOutOfBounds)
		assert.Equal(t, 1, rs.Value(Decks))
	})

	t.Run("boolean outside zero and one", func(t *testing.T) {
		rs := Defaults()
		assert.ErrorIs(t, rs.Set("Must Play", 2), ErrTypeMismatch)
		assert.ErrorIs(t, rs.Set("Must Play", -1), ErrTypeMismatch)
		assert.False(t, rs.Enabled(MustPlay))
	})

	t.Run("unknown rule", func(t *testing.T) {
		rs := Defaults()
		assert.ErrorIs(t, rs.Set("Stacking", 1), ErrNotFound)
	})
}

func TestUpdate(t *testing.T) {
	t.Run("applies decoded values", func(t *testing.T) {
		rs := Defaults()
		err := rs.Update(map[string]interface{}{
			"decks":           float64(2),
			"Must Play":       true,
			"Callout Penalty": 4,
			"Callouts":        nil,
		})
		require.NoError(t, err)
		assert.Equal(t, 2, rs.Value(Decks))
		assert.True(t, rs.Enabled(MustPlay))
		assert.Equal(t, 4, rs.Value(CalloutPenalty))
		assert.True(t, rs.Enabled(Callouts))
	})

	t.Run("all or nothing", func(t *testing.T) {
		rs := Defaults()
		err := rs.Update(map[string]interface{}{
			"Decks":         float64(3),
			"Initial Cards": float64(0),
		})
		assert.ErrorIs(t, err, ErrOutOfBounds)
		assert.Equal(t, 1, rs.Value(Decks))
		assert.Equal(t, 7, rs.Value(InitialCards))
	})

	t.Run("type mismatches", func(t *testing.T) {
		rs := Defaults()
		assert.ErrorIs(t, rs.Update(map[string]interface{}{"Decks": true}), ErrTypeMismatch)
		assert.ErrorIs(t, rs.Update(map[string]interface{}{"Decks": "two"}), ErrTypeMismatch)
		assert.ErrorIs(t, rs.Update(map[string]interface{}{"Decks": 1.5}), ErrTypeMismatch)
	})
}

func TestRuleString(t *testing.T) {
	r, _ := Defaults().Get("Draws Skip")
	assert.Equal(t, "*Draws Skip*\nType: boolean\nValue: 1\n\nWhether pickup cards (+2, +4) should also skip the next person's turn.", r.String())
}
