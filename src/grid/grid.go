// Package grid is the coordinate model of the pad surface: a fixed 10x10 torus
// addressed either by wrapped (x, y) points or by a row-major linear index.
package grid

import (
	"fmt"
	"iter"
)

//the grid dimensions are fixed by the hardware
const (
	Width  = 10
	Height = 10
	Size   = Width * Height
)

//Point is a position on the grid, always inside [0,Width) x [0,Height)
type Point struct {
	x int8
	y int8
}

//the 8 compass unit offsets, negative steps are stored wrapped like any other point
var neighbourhood = [8]Point{
	New(-1, -1), New(0, -1), New(1, -1),
	New(-1, 0), New(1, 0),
	New(-1, 1), New(0, 1), New(1, 1),
}

//Neighbourhood returns the offsets of the 8 neighbours, add them to a point with Add
func Neighbourhood() [8]Point {
	return neighbourhood
}

//New creates the point, coordinates outside the grid are wrapped around
func New(x int, y int) Point {
	return Point{x: int8(wrap(x, Width)), y: int8(wrap(y, Height))}
}

//FromIndex creates the point from the linear index in the range [0, Size)
//indices outside of the range are wrapped as well
func FromIndex(i int) Point {
	return New(i%Width, i/Width)
}

func wrap(v int, dim int) int {
	return ((v % dim) + dim) % dim
}

//X returns the x coordinate
func (p Point) X() int { return int(p.x) }

//Y returns the y coordinate
func (p Point) Y() int { return int(p.y) }

//Index returns the linear index of the point
func (p Point) Index() int {
	return int(p.y)*Width + int(p.x)
}

//Add returns the sum of two points wrapped around the grid edges
func (p Point) Add(q Point) Point {
	return New(int(p.x)+int(q.x), int(p.y)+int(q.y))
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.x, p.y)
}

//Points returns the sequence of all grid points in row-major order starting at (0,0)
func Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for i := 0; i < Size; i++ {
			if !yield(FromIndex(i)) {
				return
			}
		}
	}
}
