package kmap

import (
	"github.com/kmaptool/kmap/debug"
	"github.com/kmaptool/kmap/geom"
)

// Cover reduces the raw group list for outcome v to an irredundant cover.
//
// The first pass drops any group lying fully inside a different group:
//
//	x x x x
//	x o o x
//	x o o x
//	x x x x
//
// group o is inside group x and goes away.  The second pass keeps a
// survivor only if it covers at least one coordinate no other survivor
// covers:
//
//	.[x x]x      . x[x x]      . x x[x]
//	. . . x      . . . x       . . .[x]
//
// here the middle group loses all its coordinates to the other two and is
// dropped.  The selection is greedy, not a minimum cover: mutually
// redundant survivors can eliminate each other.
func (m *Map) Cover(v bool) []geom.Rect {
	groups := m.Groups(v)

	var kept []geom.Rect
	for i, g := range groups {
		isIn := false
		for j, b := range groups {
			if i != j && g.In(b) {
				isIn = true
				break
			}
		}
		if !isIn {
			kept = append(kept, g)
		}
	}

	var res []geom.Rect
	for i, g := range kept {
		others := map[geom.Vec2]bool{}
		for j, b := range kept {
			if i == j {
				continue
			}
			for _, p := range b.Points() {
				others[p] = true
			}
		}
		for _, p := range g.Points() {
			if !others[p] {
				res = append(res, g)
				break
			}
		}
	}
	if debug.Cover() {
		debug.Logf("cover(%t): contained pass %v, essential pass %v\n", v, kept, res)
	}
	return res
}
