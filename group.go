package kmap

import (
	"github.com/kmaptool/kmap/debug"
	"github.com/kmaptool/kmap/geom"
)

// shapes is the group catalogue for maps of up to 4 variables:
//
//	1.     2.         3.
//	x      x x        x
//	                  x
//	       4.
//	       x x x x
//
//	5.     6.         7.
//	x x    x x x x    x x
//	x x    x x x x    x x
//	                  x x
//	8.           9.   x x
//	x x x x      x
//	x x x x      x
//	x x x x      x
//	x x x x      x
//
// denoted by their x and y sizes.
var shapes = []geom.Vec2{
	{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 2},
	{X: 4, Y: 1}, {X: 1, Y: 4}, {X: 2, Y: 2},
	{X: 4, Y: 2}, {X: 2, Y: 4}, {X: 4, Y: 4},
}

// Groups enumerates every catalogue-shaped rectangle, at every start
// position that keeps it inside the grid, whose covered cells all hold
// outcome v.  Coordinates without a loaded cell impose no constraint.
// Rectangles never wrap around a grid edge, so groupings that are only
// adjacent modulo the Karnaugh ordering are not found.
func (m *Map) Groups(v bool) []geom.Rect {
	var res []geom.Rect
	for _, mask := range shapes {
		for x := 0; x < m.SizeX()-mask.X+1; x++ {
			for y := 0; y < m.SizeY()-mask.Y+1; y++ {
				g := geom.Rect{Start: geom.Vec2{X: x, Y: y}, Size: mask}
				if m.uniform(g, v) {
					res = append(res, g)
				}
			}
		}
	}
	if debug.Groups() {
		debug.Logf("groups(%t): %v\n", v, res)
	}
	return res
}

// uniform reports whether every covered coordinate that has a cell holds
// outcome v.
func (m *Map) uniform(g geom.Rect, v bool) bool {
	for _, p := range g.Points() {
		if fv, ok := m.ValueAt(p.X, p.Y); ok && fv != v {
			return false
		}
	}
	return true
}

// cellsIn returns the loaded cells covered by g, in the group's x-major
// point order.
func (m *Map) cellsIn(g geom.Rect) []*Cell {
	var res []*Cell
	for _, p := range g.Points() {
		if c, ok := m.CellAt(p.X, p.Y); ok {
			res = append(res, c)
		}
	}
	return res
}
