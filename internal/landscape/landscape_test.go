package landscape

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/errgo.v1"

	"landscapes/internal/core"
)

func newLandscape(t *testing.T, w, h int, family Family, rule uint32, top Topology) *Landscape {
	t.Helper()
	l, err := New(Config{Width: w, Height: h, Family: family, Rule: rule, Topology: top})
	require.NoError(t, err)
	return l
}

// alivePoints lists live cells in row-major order.
func alivePoints(l *Landscape) [][2]int {
	var pts [][2]int
	cells := l.Cells()
	w := l.Size().W
	for i, v := range cells {
		if v != 0 {
			pts = append(pts, [2]int{i % w, i / w})
		}
	}
	return pts
}

func TestNewRejectsBadSizes(t *testing.T) {
	for _, size := range []core.Size{{W: 0, H: 10}, {W: 10, H: -1}, {W: MaxCells, H: 2}} {
		_, err := New(Config{Width: size.W, Height: size.H})
		require.Error(t, err)
		assert.Equal(t, ErrInvalidSize, errgo.Cause(err))
	}
}

func TestNewIsZeroFilled(t *testing.T) {
	l := newLandscape(t, 7, 3, Elementary, Rule110, Clamped)
	assert.Equal(t, make([]uint8, 21), l.Cells())
	assert.Equal(t, core.Size{W: 7, H: 3}, l.Size())
	assert.Equal(t, uint64(0), l.Generation())
}

func TestTorusResolveIsModulo(t *testing.T) {
	g := core.NewByteGrid(6, 4)
	for x := -6; x < 12; x++ {
		for y := -4; y < 8; y++ {
			rx, ry := Torus.Resolve(g, x, y)
			assert.Equal(t, [2]int{((x % 6) + 6) % 6, ((y % 4) + 4) % 4}, [2]int{rx, ry})
		}
	}
}

func TestClampedResolveIsNearestPoint(t *testing.T) {
	g := core.NewByteGrid(6, 4)
	nearest := func(v, n int) int { return max(0, min(v, n-1)) }
	for x := -3; x < 9; x++ {
		for y := -3; y < 7; y++ {
			rx, ry := Clamped.Resolve(g, x, y)
			assert.Equal(t, [2]int{nearest(x, 6), nearest(y, 4)}, [2]int{rx, ry})
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	l := newLandscape(t, 5, 5, LifeLike, Conway, Torus)
	l.PaintSingle(2, 1)
	l.PaintSingle(2, 2)
	l.PaintSingle(2, 3)

	l.Step()
	assert.Equal(t, [][2]int{{1, 2}, {2, 2}, {3, 2}}, alivePoints(l))

	l.Step()
	assert.Equal(t, [][2]int{{2, 1}, {2, 2}, {2, 3}}, alivePoints(l))
	assert.Equal(t, uint64(2), l.Generation())
}

func TestGliderTranslatesDiagonally(t *testing.T) {
	l := newLandscape(t, 8, 8, LifeLike, Conway, Torus)
	l.PaintGlider(3, 3)
	start := alivePoints(l)
	require.Len(t, start, 5)

	for i := 0; i < 4; i++ {
		l.Step()
	}

	want := make([][2]int, len(start))
	for i, p := range start {
		want[i] = [2]int{p[0] + 1, p[1] + 1}
	}
	assert.ElementsMatch(t, want, alivePoints(l))
}

func TestGliderCrossesTorusSeam(t *testing.T) {
	l := newLandscape(t, 8, 8, LifeLike, Conway, Torus)
	l.PaintGlider(3, 3)
	start := l.Cells()
	for i := 0; i < 32; i++ {
		l.Step()
	}
	assert.Equal(t, start, l.Cells(), "eight diagonal moves return the glider home on an 8x8 torus")
}

func TestAllDeadGridStaysDead(t *testing.T) {
	rules := []uint32{Conway, 0, SurviveBit(0), 1<<18 - 1 - BirthBit(0)}
	rng := rand.New(rand.NewPCG(3, 0))
	for i := 0; i < 20; i++ {
		rules = append(rules, rng.Uint32()&^BirthBit(0))
	}
	for _, rule := range rules {
		for _, top := range []Topology{Torus, Clamped} {
			l := newLandscape(t, 9, 6, LifeLike, rule, top)
			l.Step()
			require.Equal(t, make([]uint8, 54), l.Cells(), "rule %s", FormatLifeLike(rule))
		}
	}
}

func TestBirthOnZeroFillsEmptyGrid(t *testing.T) {
	l := newLandscape(t, 4, 4, LifeLike, BirthBit(0), Torus)
	l.Step()
	for _, v := range l.Cells() {
		require.Equal(t, uint8(1), v)
	}
}

func TestStepIsDeterministicAcrossPasses(t *testing.T) {
	build := func(workers int) *Landscape {
		l, err := New(Config{Width: 33, Height: 21, Family: LifeLike, Rule: Conway, Topology: Torus, Workers: workers})
		require.NoError(t, err)
		l.Randomize(42)
		return l
	}
	seq := build(1)
	again := build(1)
	banded := build(4)
	oversubscribed := build(64)
	for i := 0; i < 12; i++ {
		seq.Step()
		again.Step()
		banded.Step()
		oversubscribed.Step()
		require.Equal(t, seq.Cells(), again.Cells(), "step %d", i)
		require.Equal(t, seq.Cells(), banded.Cells(), "step %d", i)
		require.Equal(t, seq.Cells(), oversubscribed.Cells(), "step %d", i)
	}
}

func TestElementaryRule110Rows(t *testing.T) {
	l := newLandscape(t, 9, 5, Elementary, Rule110, Clamped)
	l.Reset()
	require.Equal(t, [][2]int{{4, 0}}, alivePoints(l))

	l.Step()
	assert.Equal(t, [][2]int{{4, 0}, {3, 1}, {4, 1}}, alivePoints(l))

	l.Step()
	assert.Equal(t, [][2]int{{4, 0}, {3, 1}, {4, 1}, {2, 2}, {3, 2}, {4, 2}}, alivePoints(l))
}

func TestElementaryIgnoresHighRuleBits(t *testing.T) {
	a := newLandscape(t, 16, 8, Elementary, Rule110, Clamped)
	b := newLandscape(t, 16, 8, Elementary, Rule110|0xffff00, Clamped)
	a.Reset()
	b.Reset()
	for i := 0; i < 8; i++ {
		a.Step()
		b.Step()
	}
	assert.Equal(t, a.Cells(), b.Cells())
}

func TestElementaryFreezesBoundary(t *testing.T) {
	for _, rule := range []uint32{0, 30, Rule110, 255} {
		l := newLandscape(t, 12, 7, Elementary, rule, Clamped)
		l.Randomize(int64(rule) + 1)
		before := l.Cells()
		for i := 0; i < 10; i++ {
			l.Step()
		}
		after := l.Cells()
		w, h := 12, 7
		for x := 0; x < w; x++ {
			require.Equal(t, before[x], after[x], "row 0, x=%d, rule %d", x, rule)
		}
		for y := 0; y < h; y++ {
			require.Equal(t, before[y*w], after[y*w], "column 0, y=%d, rule %d", y, rule)
			require.Equal(t, before[y*w+w-1], after[y*w+w-1], "last column, y=%d, rule %d", y, rule)
		}
	}
}

func TestPaintingIsImmediate(t *testing.T) {
	l := newLandscape(t, 6, 6, LifeLike, Conway, Torus)
	l.PaintSingle(2, 2)
	assert.Equal(t, uint8(1), l.Get(2, 2))

	shown := l.Cells()
	l.Step()
	assert.Equal(t, uint8(1), shown[2*6+2], "a step never rewrites a generation already read")
	assert.Equal(t, uint8(0), l.Get(2, 2), "a lone cell dies")
}

func TestPaintResolvesThroughTopology(t *testing.T) {
	l := newLandscape(t, 8, 8, LifeLike, Conway, Torus)
	l.PaintGlider(0, 0)
	assert.ElementsMatch(t, [][2]int{{7, 1}, {0, 7}, {0, 1}, {1, 0}, {1, 1}}, alivePoints(l))

	l.Reset()
	l.SetTopology(Clamped)
	l.PaintGlider(0, 0)
	assert.ElementsMatch(t, [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, alivePoints(l))

	l.Reset()
	l.PaintSingle(-5, 20)
	assert.Equal(t, [][2]int{{0, 7}}, alivePoints(l))
}

func TestToggleAndSetCurrent(t *testing.T) {
	l := newLandscape(t, 4, 4, LifeLike, Conway, Torus)
	l.Toggle(1, 1)
	assert.Equal(t, uint8(1), l.Get(1, 1))
	l.Toggle(5, 5)
	assert.Equal(t, uint8(0), l.Get(1, 1), "(5, 5) wraps onto (1, 1)")

	l.SetCurrent(2, 3, 9)
	assert.Equal(t, uint8(1), l.Get(2, 3), "stored values are normalized to 0 or 1")
}

func TestCountLiveNeighbors(t *testing.T) {
	l := newLandscape(t, 5, 5, LifeLike, Conway, Torus)
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			l.SetCurrent(x, y, 1)
		}
	}
	assert.Equal(t, 8, l.CountLiveNeighbors(0, 0))
	l.SetCurrent(4, 4, 0)
	assert.Equal(t, 7, l.CountLiveNeighbors(0, 0), "the corner neighbour wraps")

	n := l.Neighbourhood(0, 0)
	assert.Equal(t, [3][3]uint8{{0, 1, 1}, {1, 1, 1}, {1, 1, 1}}, n)
}

func TestResetSeedsElementaryRow(t *testing.T) {
	l := newLandscape(t, 10, 4, LifeLike, Conway, Torus)
	l.Randomize(9)
	l.Step()
	l.Reset()
	assert.Equal(t, make([]uint8, 40), l.Cells())
	assert.Equal(t, uint64(0), l.Generation())

	l.Apply(Rule110Preset())
	l.Reset()
	assert.Equal(t, [][2]int{{5, 0}}, alivePoints(l))
}

func TestRuleSettings(t *testing.T) {
	l := newLandscape(t, 4, 4, LifeLike, Conway, Torus)
	assert.Equal(t, "B3/S23", l.RuleString())
	assert.Equal(t, Conway+1, l.AdjustRule(1))
	assert.Equal(t, "B3/S023", l.RuleString())

	l.SetRule(0)
	assert.Equal(t, ^uint32(0), l.AdjustRule(-1), "rules wrap as unsigned integers")

	l.SetFamily(Elementary)
	assert.Equal(t, Elementary, l.Family())
	assert.Equal(t, "255", l.RuleString())
}
