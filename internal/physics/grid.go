package physics

import "math"

// SpatialGrid is a uniform grid for broad-phase collision detection in a
// bounded arena. Items are inserted by position and index, then nearby items
// are found through a 3x3 neighbourhood lookup.
//
// Cell size must be >= the maximum interaction distance between any two
// colliding objects so that all potential collisions are found within
// the 3x3 neighbourhood. Positions outside the arena are clamped onto the
// edge cells, which keeps the lookup conservative.
type SpatialGrid struct {
	cellSize    float64
	invCellSize float64 // 1 / cellSize
	width       float64
	height      float64
	cols        int
	rows        int
	cells       []gridCell
}

// gridCell stores the indices of items that fall within a cell.
// The slice is reused between ticks (reset to [:0]).
type gridCell struct {
	items []int
}

// NewSpatialGrid creates a grid covering a width x height arena.
func NewSpatialGrid(width, height, cellSize float64) *SpatialGrid {
	cols := int(math.Ceil(width / cellSize))
	rows := int(math.Ceil(height / cellSize))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	return &SpatialGrid{
		cellSize:    cellSize,
		invCellSize: 1.0 / cellSize,
		width:       width,
		height:      height,
		cols:        cols,
		rows:        rows,
		cells:       make([]gridCell, cols*rows),
	}
}

// Covers reports whether the grid was built for the given arena size.
func (g *SpatialGrid) Covers(width, height float64) bool {
	return g.width == width && g.height == height
}

// Clear removes all items without releasing cell memory.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i].items = g.cells[i].items[:0]
	}
}

// Insert adds an item (identified by index) at the given position.
func (g *SpatialGrid) Insert(x, y float64, index int) {
	col, row := g.posToCell(x, y)
	idx := row*g.cols + col
	g.cells[idx].items = append(g.cells[idx].items, index)
}

// QueryAround calls fn for each item index in the 3x3 neighbourhood around
// the given position. Indices are not visited in any particular order.
// If fn returns true, iteration stops early.
func (g *SpatialGrid) QueryAround(x, y float64, fn func(index int) bool) {
	col, row := g.posToCell(x, y)

	for r := row - 1; r <= row+1; r++ {
		if r < 0 || r >= g.rows {
			continue
		}
		rowOffset := r * g.cols
		for c := col - 1; c <= col+1; c++ {
			if c < 0 || c >= g.cols {
				continue
			}
			for _, itemIdx := range g.cells[rowOffset+c].items {
				if fn(itemIdx) {
					return
				}
			}
		}
	}
}

// posToCell converts a position to cell coordinates, clamped to the grid.
func (g *SpatialGrid) posToCell(x, y float64) (col, row int) {
	col = clampInt(int(math.Floor(x*g.invCellSize)), 0, g.cols-1)
	row = clampInt(int(math.Floor(y*g.invCellSize)), 0, g.rows-1)
	return col, row
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
