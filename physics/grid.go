package physics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Cell is an integer cube of side CellSize.
type Cell struct {
	X, Y, Z int
}

// CellOf returns the cell containing p.
func CellOf(p r3.Vec, size float64) Cell {
	return Cell{
		X: int(math.Floor(p.X / size)),
		Y: int(math.Floor(p.Y / size)),
		Z: int(math.Floor(p.Z / size)),
	}
}

// Grid buckets visible positions by cell. Buckets hold positions in the
// visible subset, in insertion order.
type Grid struct {
	size  float64
	cells map[Cell][]int
}

func NewGrid(size float64) *Grid {
	return &Grid{size: size, cells: make(map[Cell][]int)}
}

func (g *Grid) Insert(i int, p r3.Vec) {
	c := CellOf(p, g.size)
	g.cells[c] = append(g.cells[c], i)
}

// Len returns the number of occupied cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// Near calls fn for every index in the 3x3x3 block of cells around p.
func (g *Grid) Near(p r3.Vec, fn func(j int)) {
	c := CellOf(p, g.size)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				for _, j := range g.cells[Cell{c.X + dx, c.Y + dy, c.Z + dz}] {
					fn(j)
				}
			}
		}
	}
}
