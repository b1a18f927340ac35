package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRateMapOrder(t *testing.T) {
	m := NewRateMap().
		Add("k.O.ads", Once(MustState(SiteAt("a", 0)))).
		Add("k.CO.ads").
		Add("k.O.des", Once(MustState(SiteAt("b", 1))))

	assert.Equal(t, []Rate{"k.O.ads", "k.CO.ads", "k.O.des"}, m.Keys())

	// An empty registration still holds its place in the order.
	states, ok := m.Get("k.CO.ads")
	assert.True(t, ok)
	assert.Empty(t, states)

	// Re-adding appends without moving the key.
	m.Add("k.O.ads", Once(MustState(SiteAt("c", 2))))
	states, _ = m.Get("k.O.ads")
	assert.Len(t, states, 2)
	assert.Equal(t, []Rate{"k.O.ads", "k.CO.ads", "k.O.des"}, m.Keys())
}

func TestNewEquation(t *testing.T) {
	target := MustState(SiteAt("a", 0), SiteAt("b", 1))

	t.Run("matching key sets pass", func(t *testing.T) {
		creation := NewRateMap().Add("k1", Weighted(target, 2))
		decay := NewRateMap().Add("k1")

		eq, err := NewEquation(target, creation, decay)
		assert.NoError(t, err)
		assert.Equal(t, []Rate{"k1"}, eq.Rates())
		assert.True(t, eq.Target().Equal(target))
	})

	t.Run("missing decay key rejected even when empty", func(t *testing.T) {
		creation := NewRateMap().Add("k1").Add("k2")
		decay := NewRateMap().Add("k1")

		_, err := NewEquation(target, creation, decay)
		assert.Error(t, err)

		var keyErr *KeySetError
		assert.True(t, errors.As(err, &keyErr))
		assert.Equal(t, []Rate{"k1", "k2"}, keyErr.Creation)
		assert.Equal(t, []Rate{"k1"}, keyErr.Decay)
	})

	t.Run("same keys in different order pass", func(t *testing.T) {
		creation := NewRateMap().Add("k1").Add("k2")
		decay := NewRateMap().Add("k2").Add("k1")

		eq, err := NewEquation(target, creation, decay)
		assert.NoError(t, err)
		// Clause order follows the creation map.
		assert.Equal(t, []Rate{"k1", "k2"}, eq.Rates())
	})

	t.Run("nil maps rejected", func(t *testing.T) {
		_, err := NewEquation(target, nil, NewRateMap())
		assert.Error(t, err)
		_, err = NewEquation(target, NewRateMap(), nil)
		assert.Error(t, err)
	})

	t.Run("zero target rejected", func(t *testing.T) {
		_, err := NewEquation(State{}, NewRateMap(), NewRateMap())
		assert.Error(t, err)
	})
}

func TestNewWeightedState(t *testing.T) {
	st := MustState(SiteAt("a", 0))

	ws, err := NewWeightedState(st, 3)
	assert.NoError(t, err)
	assert.Equal(t, 3, ws.Count())

	_, err = NewWeightedState(st, 0)
	assert.Error(t, err)
	_, err = NewWeightedState(st, -1)
	assert.Error(t, err)

	assert.Equal(t, 1, Once(st).Count())
}

func TestNewConstraint(t *testing.T) {
	target := MustState(SiteAt("a", 1))
	member := MustState(SiteAt("a", 1), SiteAt("b", 2))

	t.Run("members required", func(t *testing.T) {
		_, err := NewConstraint(target)
		assert.Error(t, err)
	})

	t.Run("member order preserved", func(t *testing.T) {
		other := MustState(SiteAt("a", 1), SiteAt("c", 2))
		c, err := NewConstraint(target, member, other)
		assert.NoError(t, err)
		got := c.Members()
		assert.Len(t, got, 2)
		assert.True(t, got[0].Equal(member))
		assert.True(t, got[1].Equal(other))
	})
}

func TestRateSymbol(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"k.O.ads", "KOADS"},
		{"k.CO.dif", "KCODIF"},
		{"k.COO.er", "KCOOER"},
		{"plain", "PLAIN"},
		{"a.b.c.d", "ABCD"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Rate(tt.token).Symbol())
	}

	_, err := NewRate("  ")
	assert.Error(t, err)
}
