package kmap

import (
	"testing"

	"github.com/kmaptool/kmap/geom"
)

func coverTables(t *testing.T) []Table {
	return []Table{
		orTable(t),
		constTable(t, "1"),
		constTable(t, "0"),
		andTable3(t),
		threeVarTable(t, func(a, b, c bool) bool { return !b }),
		fourVarTable(t, func(a, b, c, d bool) bool { return b }),
		fourVarTable(t, func(a, b, c, d bool) bool { return a && b || c && d }),
		fourVarTable(t, func(a, b, c, d bool) bool { return a != b }),
	}
}

func TestCoverContainment(t *testing.T) {
	for _, tbl := range coverTables(t) {
		m := mustMap(t, tbl)
		for _, v := range []bool{true, false} {
			cover := m.Cover(v)
			for i, g := range cover {
				for j, b := range cover {
					if i != j && g.In(b) {
						t.Errorf("cover(%t): %s still inside %s", v, g, b)
					}
				}
			}
		}
	}
}

func TestCoverEssentiality(t *testing.T) {
	for _, tbl := range coverTables(t) {
		m := mustMap(t, tbl)
		for _, v := range []bool{true, false} {
			cover := m.Cover(v)
			for i, g := range cover {
				others := map[geom.Vec2]bool{}
				for j, b := range cover {
					if i == j {
						continue
					}
					for _, p := range b.Points() {
						others[p] = true
					}
				}
				private := false
				for _, p := range g.Points() {
					if !others[p] {
						private = true
						break
					}
				}
				if !private {
					t.Errorf("cover(%t): %s has no private coordinate", v, g)
				}
			}
		}
	}
}

func TestCoverOr(t *testing.T) {
	m := mustMap(t, orTable(t))
	want := []geom.Rect{
		{Start: geom.Vec2{X: 0, Y: 1}, Size: geom.Vec2{X: 2, Y: 1}},
		{Start: geom.Vec2{X: 1, Y: 0}, Size: geom.Vec2{X: 1, Y: 2}},
	}
	cover := m.Cover(true)
	if len(cover) != len(want) {
		t.Fatalf("got %v, want %v", cover, want)
	}
	for i := range want {
		if cover[i] != want[i] {
			t.Errorf("cover %d = %s, want %s", i, cover[i], want[i])
		}
	}
}

func TestCoverConstant(t *testing.T) {
	whole := geom.Rect{Size: geom.Vec2{X: 2, Y: 2}}

	m := mustMap(t, constTable(t, "1"))
	if cover := m.Cover(true); len(cover) != 1 || cover[0] != whole {
		t.Errorf("all-true cover(true) = %v, want [%s]", cover, whole)
	}
	if cover := m.Cover(false); len(cover) != 0 {
		t.Errorf("all-true cover(false) = %v, want none", cover)
	}

	m = mustMap(t, constTable(t, "0"))
	if cover := m.Cover(true); len(cover) != 0 {
		t.Errorf("all-false cover(true) = %v, want none", cover)
	}
	if cover := m.Cover(false); len(cover) != 1 || cover[0] != whole {
		t.Errorf("all-false cover(false) = %v, want [%s]", cover, whole)
	}
}
