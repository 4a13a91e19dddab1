package engine

import (
	"fmt"
	"math"
)

// cellKey identifies one grid cell by its integer cell coordinates.
type cellKey struct {
	X, Y int
}

// SpatialGrid is the broad-phase index: a uniform grid mapping cells to
// the groups whose bounding box overlaps them. It is rebuilt from the
// registry before each render pass and stays read-only during one, so
// concurrent passes each build their own.
type SpatialGrid struct {
	cellSize float64
	cells    map[cellKey][]*Group
}

// NewSpatialGrid creates an empty grid. The cell size must be positive and
// should approximate the scale of the groups it will hold.
func NewSpatialGrid(cellSize float64) (*SpatialGrid, error) {
	if cellSize <= 0 {
		return nil, fmt.Errorf("%w: cell size %g must be positive", ErrInvalidConfig, cellSize)
	}
	return &SpatialGrid{
		cellSize: cellSize,
		cells:    make(map[cellKey][]*Group),
	}, nil
}

// cellAt converts world coordinates to cell coordinates. Floor division
// keeps negative coordinates in their own cells instead of folding them
// toward zero.
func (sg *SpatialGrid) cellAt(x, y float64) cellKey {
	return cellKey{
		X: int(math.Floor(x / sg.cellSize)),
		Y: int(math.Floor(y / sg.cellSize)),
	}
}

// Insert adds the group to the bucket of every cell its bounding box
// overlaps; a group spanning several cells appears in each of them. A
// group with no shapes has no bounds and is skipped.
func (sg *SpatialGrid) Insert(g *Group) {
	b, ok := g.Bounds()
	if !ok {
		return
	}
	lo := sg.cellAt(b.MinX, b.MinY)
	hi := sg.cellAt(b.MaxX, b.MaxY)
	for cx := lo.X; cx <= hi.X; cx++ {
		for cy := lo.Y; cy <= hi.Y; cy++ {
			sg.add(cellKey{cx, cy}, g)
		}
	}
}

// add appends the group to the cell's bucket unless already present.
func (sg *SpatialGrid) add(key cellKey, g *Group) {
	bucket := sg.cells[key]
	for _, have := range bucket {
		if have == g {
			return
		}
	}
	sg.cells[key] = append(bucket, g)
}

// Query returns the bucket of the cell containing (x, y), empty when no
// group overlaps it. The result is a candidate superset: the grid is
// coarser than shape boundaries, so callers must re-test candidates with
// the group's exact Collides.
func (sg *SpatialGrid) Query(x, y float64) []*Group {
	return sg.cells[sg.cellAt(x, y)]
}
