package circlex

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupCentered(t *testing.T) {
	g := Group{Circ(0, 0, 1), Circ(2, 0, 2), Circ(2, 4, 3), Circ(0, 4, 4)}
	diff(t, Group{Circ(-1, -2, 1), Circ(1, -2, 2), Circ(1, 2, 3), Circ(-1, 2, 4)}, g.Centered())

	// the input is left alone
	assert.Equal(t, Circ(0, 0, 1), g[0])
	assert.Nil(t, Group(nil).Centered())
}

func TestGroupLerp(t *testing.T) {
	a := Group{Circ(0, 0, 1), Circ(10, 10, 1)}
	b := Group{Circ(10, 0, 3), Circ(0, 10, 1), Circ(5, 5, 5)}

	diff(t, a, a.Lerp(b, 0))
	diff(t, b[:2], a.Lerp(b, 1))
	diff(t, Group{Circ(5, 0, 2), Circ(5, 10, 1)}, a.Lerp(b, 0.5))
}

func TestEase(t *testing.T) {
	for _, k := range []float64{1, 2, 18} {
		assert.InDelta(t, 0, Ease(0, k), 1e-12)
		assert.InDelta(t, 0.5, Ease(0.5, k), 1e-12)
		assert.InDelta(t, 1, Ease(1, k), 1e-12)
		assert.InDelta(t, 1-Ease(0.2, k), Ease(0.8, k), 1e-12, "symmetric for k=%v", k)
	}

	// linear when nonLinearity is 1
	assert.InDelta(t, 0.3, Ease(0.3, 1), 1e-12)
}

func TestAnimation(t *testing.T) {
	groups := []Group{
		{Circ(0, 0, 1), Circ(2, 0, 1)},
		{Circ(5, 5, 3), Circ(5, 9, 3)},
	}

	a := NewAnimation(groups).Frames(4).NonLinearity(1)
	assert.Equal(t, 2, a.Len())
	assert.Equal(t, []int{0, 1}, a.Order())

	diff(t, Group{Circ(-1, 0, 1), Circ(1, 0, 1)}, a.Current())

	a.Step()
	a.Step()
	diff(t, Group{Circ(-0.5, -1, 2), Circ(0.5, 1, 2)}, a.Current())

	a.Step()
	a.Step()
	// second group, on its way back to the first one
	diff(t, Group{Circ(0, -2, 3), Circ(0, 2, 3)}, a.Current())

	for i := 0; i < 4; i++ {
		a.Step()
	}
	diff(t, Group{Circ(-1, 0, 1), Circ(1, 0, 1)}, a.Current())
}

func TestAnimationShuffle(t *testing.T) {
	groups := make([]Group, 10)
	for i := range groups {
		groups[i] = Group{Circ(0, 0, float64(i))}
	}

	a := NewAnimation(groups).Shuffle(rand.New(rand.NewSource(1)))
	order := a.Order()
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, order)
	assert.Equal(t, float64(order[0]), a.Current()[0].R)
}

func TestAnimationEmpty(t *testing.T) {
	a := NewAnimation(nil)
	assert.Nil(t, a.Current())
	a.Step()
	assert.Equal(t, 0, a.Len())
}
