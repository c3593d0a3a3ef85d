package circlex

import (
	"math"
	"math/rand"
)

const (
	// DefaultFrames is 2.7s at 60 ticks per second.
	DefaultFrames       = 162
	DefaultNonLinearity = 18.0
)

// Centered returns a copy of g translated so that the mean of its centers is (0, 0).
func (g Group) Centered() Group {
	if len(g) == 0 {
		return nil
	}

	var mx, my float64
	for _, c := range g {
		mx += c.X
		my += c.Y
	}

	mx /= float64(len(g))
	my /= float64(len(g))

	result := make(Group, len(g))
	for i, c := range g {
		result[i] = Circ(c.X-mx, c.Y-my, c.R)
	}

	return result
}

// Lerp interpolates every circle of g towards the circle at the same index
// in other. t=0 gives g, t=1 gives other. Circles without a counterpart are dropped.
func (g Group) Lerp(other Group, t float64) Group {
	n := min(len(g), len(other))
	result := make(Group, n)
	for i := 0; i < n; i++ {
		a, b := g[i], other[i]
		result[i] = Circ(
			a.X*(1-t)+b.X*t,
			a.Y*(1-t)+b.Y*t,
			a.R*(1-t)+b.R*t,
		)
	}

	return result
}

// Ease maps t in [0,1] onto a symmetric ease-in/ease-out curve.
// Higher nonLinearity keeps the result near 0 and 1 for longer.
func Ease(t, nonLinearity float64) float64 {
	if t < 0.5 {
		return 0.5 * math.Pow(2*t, nonLinearity)
	}

	return 1 - 0.5*math.Pow(2*(1-t), nonLinearity)
}

// Animation cycles through groups, easing from each group to the next one.
type Animation struct {
	groups       []Group
	order        []int
	frames       int
	nonLinearity float64

	current, frame int
}

// NewAnimation centers every group and plays them in input order.
func NewAnimation(groups []Group) *Animation {
	result := &Animation{
		groups:       make([]Group, len(groups)),
		order:        make([]int, len(groups)),
		frames:       DefaultFrames,
		nonLinearity: DefaultNonLinearity,
	}

	for i, g := range groups {
		result.groups[i] = g.Centered()
		result.order[i] = i
	}

	return result
}

// Shuffle randomizes the order groups are shown in.
func (a *Animation) Shuffle(r *rand.Rand) *Animation {
	r.Shuffle(len(a.order), func(i, j int) {
		a.order[i], a.order[j] = a.order[j], a.order[i]
	})

	return a
}

// Frames sets the number of steps a transition takes (at least 1).
func (a *Animation) Frames(n int) *Animation {
	a.frames = max(1, n)
	a.frame %= a.frames

	return a
}

// NonLinearity sets the easing exponent, see Ease.
func (a *Animation) NonLinearity(k float64) *Animation {
	a.nonLinearity = k
	return a
}

// Len returns the number of groups.
func (a *Animation) Len() int {
	return len(a.groups)
}

// Order returns the indices of groups in the order they are shown.
func (a *Animation) Order() []int {
	return append([]int(nil), a.order...)
}

// Current returns the interpolated group for the current frame, or nil without groups.
func (a *Animation) Current() Group {
	if len(a.groups) == 0 {
		return nil
	}

	from := a.groups[a.order[a.current]]
	to := a.groups[a.order[(a.current+1)%len(a.order)]]

	return from.Lerp(to, Ease(float64(a.frame)/float64(a.frames), a.nonLinearity))
}

// Step advances one frame, moving on to the next group after a full transition.
func (a *Animation) Step() {
	if len(a.groups) == 0 {
		return
	}

	a.frame = (a.frame + 1) % a.frames
	if a.frame == 0 {
		a.current = (a.current + 1) % len(a.groups)
	}
}
