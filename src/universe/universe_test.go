package universe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifepad/src/grid"
)

func settled(coords ...[2]int) *Universe {
	u := New()
	for _, c := range coords {
		u.Set(grid.New(c[0], c[1]), Alive)
	}
	return u
}

func TestCell_Not(t *testing.T) {
	assert.Equal(t, Dead, Alive.Not())
	assert.Equal(t, Alive, Dead.Not())
	assert.Equal(t, Alive, Alive.Not().Not())
	assert.Equal(t, Dead, Dead.Not().Not())
}

func TestNew_AllDead(t *testing.T) {
	u := New()
	for p := range grid.Points() {
		require.Equal(t, Dead, u.Get(p))
	}
	assert.Zero(t, u.LiveCells())
}

func TestSetGet(t *testing.T) {
	u := New()
	origin := grid.New(0, 0)
	assert.Equal(t, Dead, u.Get(origin))
	u.Set(origin, Alive)
	assert.Equal(t, Alive, u.Get(origin))
	assert.Equal(t, Alive, u.Get(grid.New(10, -10)))
}

func TestGet_NeighbourhoodOffsets(t *testing.T) {
	u := New()
	u.Set(grid.New(9, 9), Alive)
	assert.NotPanics(t, func() {
		for _, d := range grid.Neighbourhood() {
			u.Get(d)
		}
	})
	assert.Equal(t, Alive, u.Get(grid.Neighbourhood()[0]))
}

func TestToggle_Involution(t *testing.T) {
	u := settled([2]int{4, 4})
	for p := range grid.Points() {
		before := u.Get(p)
		first := u.Toggle(p)
		assert.Equal(t, before.Not(), first)
		u.Toggle(p)
		require.Equal(t, before, u.Get(p), "toggling %v twice", p)
	}
}

func TestLiveNeighbours(t *testing.T) {
	u := New()
	origin := grid.New(0, 0)

	u.Set(origin, Alive)
	assert.Equal(t, 0, u.LiveNeighbours(origin))

	u.Set(origin.Add(grid.New(1, 0)), Alive)
	assert.Equal(t, 1, u.LiveNeighbours(origin))

	u.Set(origin.Add(grid.New(-1, 0)), Alive)
	assert.Equal(t, 2, u.LiveNeighbours(origin))

	u.Set(origin.Add(grid.New(0, 1)), Alive)
	assert.Equal(t, 3, u.LiveNeighbours(origin))

	u.Set(origin.Add(grid.New(0, -1)), Alive)
	assert.Equal(t, 4, u.LiveNeighbours(origin))
}

func TestLiveNeighbours_Corners(t *testing.T) {
	u := settled([2]int{9, 9}, [2]int{0, 9}, [2]int{9, 0})
	assert.Equal(t, 3, u.LiveNeighbours(grid.New(0, 0)))
	assert.Equal(t, 2, u.LiveNeighbours(grid.New(9, 9)))

	for p := range grid.Points() {
		u.Set(p, Alive)
	}
	for p := range grid.Points() {
		require.Equal(t, 8, u.LiveNeighbours(p))
	}
}

func TestNextState(t *testing.T) {
	tests := []struct {
		cur  Cell
		n    int
		next Cell
	}{
		{Alive, 0, Dead},
		{Alive, 1, Dead},
		{Alive, 2, Alive},
		{Alive, 3, Alive},
		{Alive, 4, Dead},
		{Alive, 8, Dead},
		{Dead, 2, Dead},
		{Dead, 3, Alive},
		{Dead, 4, Dead},
		{Dead, 0, Dead},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.next, NextState(tc.cur, tc.n), "%v with %d neighbours", tc.cur, tc.n)
	}
}

func TestStep_Underpopulation(t *testing.T) {
	u := settled([2]int{2, 2})
	u.Step()
	assert.Equal(t, Dead, u.Get(grid.New(2, 2)))
}

func TestStep_Stable(t *testing.T) {
	u := settled([2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})
	u.Step()
	assert.Equal(t, Alive, u.Get(grid.New(2, 2)))

	u.Set(grid.New(2, 3), Alive)
	assert.Equal(t, Alive, u.Get(grid.New(2, 2)))
	u.Step()
	assert.Equal(t, Alive, u.Get(grid.New(2, 2)))
}

func TestStep_Overpopulation(t *testing.T) {
	u := settled([2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2}, [2]int{2, 3}, [2]int{2, 1})
	require.Equal(t, 4, u.LiveNeighbours(grid.New(2, 2)))
	u.Step()
	assert.Equal(t, Dead, u.Get(grid.New(2, 2)))
}

func TestStep_Reproduction(t *testing.T) {
	u := settled([2]int{1, 2}, [2]int{3, 2}, [2]int{2, 3})
	u.Step()
	assert.Equal(t, Alive, u.Get(grid.New(2, 2)))
}

func TestStep_ReadsConsistentSnapshot(t *testing.T) {
	//a blinker only survives when every cell is evaluated against the same generation
	u := settled([2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})
	st := u.Step()
	assert.Equal(t, Stats{Live: 3, Changed: true}, st)
	for p := range grid.Points() {
		expected := p == grid.New(1, 2) || p == grid.New(2, 2) || p == grid.New(3, 2)
		require.Equal(t, Cell(expected), u.Get(p), "cell %v", p)
	}
}

func TestStep_Stats(t *testing.T) {
	u := settled([2]int{0, 0}, [2]int{1, 0}, [2]int{0, 1}, [2]int{1, 1})
	assert.Equal(t, Stats{Live: 4, Changed: false}, u.Step())

	u = New()
	assert.Equal(t, Stats{}, u.Step())
}

func TestStep_WrapsAroundEdges(t *testing.T) {
	//a blinker placed across the corner
	u := settled([2]int{9, 0}, [2]int{0, 0}, [2]int{1, 0})
	u.Step()
	assert.Equal(t, Alive, u.Get(grid.New(0, 9)))
	assert.Equal(t, Alive, u.Get(grid.New(0, 0)))
	assert.Equal(t, Alive, u.Get(grid.New(0, 1)))
	assert.Equal(t, 3, u.LiveCells())
}

func TestClear(t *testing.T) {
	u := settled([2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})
	u.Step()
	u.Clear()
	assert.Zero(t, u.LiveCells())
	u.Step()
	assert.Zero(t, u.LiveCells())
}

func TestRandomize(t *testing.T) {
	a, b := New(), New()
	a.Randomize(42, 0.3)
	b.Randomize(42, 0.3)
	for p := range grid.Points() {
		require.Equal(t, a.Get(p), b.Get(p))
	}

	a.Randomize(1, 0)
	assert.Zero(t, a.LiveCells())
	a.Randomize(1, 1)
	assert.Equal(t, grid.Size, a.LiveCells())
}
