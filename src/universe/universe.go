package universe

import (
	"math/rand"

	"lifepad/src/grid"
)

//Cell is the state of one pad of the universe
type Cell bool

const (
	Dead  Cell = false
	Alive Cell = true
)

//Not returns the opposite cell state
func (c Cell) Not() Cell {
	return !c
}

func (c Cell) String() string {
	if c {
		return "alive"
	}
	return "dead"
}

//Stats describes the outcome of one simulation step
type Stats struct {
	Live    int  //live cells in the new generation
	Changed bool //at least one cell has changed its state
}

//Universe is the double buffered Game of Life field on the grid torus
//only the active buffer is visible, the other one receives the next generation
type Universe struct {
	buffers [2][grid.Size]Cell
	active  int
}

//New creates the universe with all cells dead
func New() *Universe {
	return &Universe{}
}

//Get returns the cell state at point p
func (u *Universe) Get(p grid.Point) Cell {
	return u.buffers[u.active][p.Index()]
}

//Set sets the cell state at point p
func (u *Universe) Set(p grid.Point, c Cell) {
	u.buffers[u.active][p.Index()] = c
}

//Toggle inverses the cell state at point p and returns the new state
func (u *Universe) Toggle(p grid.Point) Cell {
	c := u.Get(p).Not()
	u.Set(p, c)
	return c
}

//LiveNeighbours counts the live cells around p, the grid edges are wrapped
func (u *Universe) LiveNeighbours(p grid.Point) int {
	n := 0
	for _, d := range grid.Neighbourhood() {
		if u.Get(p.Add(d)) == Alive {
			n++
		}
	}
	return n
}

//Step calculates the next generation
//all cells are read from the active buffer and written to the inactive one,
//the buffers are switched only when the whole generation is ready
func (u *Universe) Step() (st Stats) {
	next := 1 - u.active
	for p := range grid.Points() {
		cur := u.Get(p)
		c := NextState(cur, u.LiveNeighbours(p))
		if c == Alive {
			st.Live++
		}
		st.Changed = st.Changed || c != cur
		u.buffers[next][p.Index()] = c
	}
	u.active = next
	return
}

//NextState applies the Game of Life rules to a cell with n live neighbours
func NextState(c Cell, n int) Cell {
	switch {
	case c == Alive && n < 2:
		return Dead //underpopulation
	case c == Alive && (n == 2 || n == 3):
		return Alive
	case c == Alive && n > 3:
		return Dead //overpopulation
	case c == Dead && n == 3:
		return Alive //reproduction
	}
	return c
}

//LiveCells calculates the count of live cells
func (u *Universe) LiveCells() int {
	n := 0
	for _, c := range u.buffers[u.active] {
		if c == Alive {
			n++
		}
	}
	return n
}

//Clear kills all cells in both buffers
func (u *Universe) Clear() {
	u.buffers = [2][grid.Size]Cell{}
	u.active = 0
}

//Settle makes the cells at the given points alive
func (u *Universe) Settle(points ...grid.Point) {
	for _, p := range points {
		u.Set(p, Alive)
	}
}

//Randomize replaces the active generation with random data
//density is the probability of a cell to be alive, the same seed gives the same field
func (u *Universe) Randomize(seed int64, density float64) {
	r := rand.New(rand.NewSource(seed))
	for p := range grid.Points() {
		u.Set(p, Cell(r.Float64() < density))
	}
}
