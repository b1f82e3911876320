package kmap

import (
	"testing"

	"github.com/kmaptool/kmap/geom"
)

func TestGroupsUniformity(t *testing.T) {
	tables := []Table{
		orTable(t),
		constTable(t, "1"),
		constTable(t, "0"),
		andTable3(t),
		fourVarTable(t, func(a, b, c, d bool) bool { return b }),
		fourVarTable(t, func(a, b, c, d bool) bool { return a && b || c && d }),
	}
	for _, tbl := range tables {
		m := mustMap(t, tbl)
		for _, v := range []bool{true, false} {
			for _, g := range m.Groups(v) {
				for _, p := range g.Points() {
					fv, ok := m.ValueAt(p.X, p.Y)
					if ok && fv != v {
						t.Errorf("group %s for %t covers %s holding %t", g, v, p, fv)
					}
				}
			}
		}
	}
}

func TestGroupsOr(t *testing.T) {
	m := mustMap(t, orTable(t))
	groups := m.Groups(true)
	want := []geom.Rect{
		{Start: geom.Vec2{X: 0, Y: 1}, Size: geom.Vec2{X: 1, Y: 1}},
		{Start: geom.Vec2{X: 1, Y: 0}, Size: geom.Vec2{X: 1, Y: 1}},
		{Start: geom.Vec2{X: 1, Y: 1}, Size: geom.Vec2{X: 1, Y: 1}},
		{Start: geom.Vec2{X: 0, Y: 1}, Size: geom.Vec2{X: 2, Y: 1}},
		{Start: geom.Vec2{X: 1, Y: 0}, Size: geom.Vec2{X: 1, Y: 2}},
	}
	if len(groups) != len(want) {
		t.Fatalf("got %d groups %v, want %d", len(groups), groups, len(want))
	}
	for i := range want {
		if groups[i] != want[i] {
			t.Errorf("group %d = %s, want %s", i, groups[i], want[i])
		}
	}
}

// Karnaugh adjacency would let a group span the first and last column;
// the enumerator deliberately never wraps.
func TestGroupsNoWrap(t *testing.T) {
	// true exactly when B is false: x columns 0 (00) and 3 (10).
	m := mustMap(t, threeVarTable(t, func(a, b, c bool) bool { return !b }))
	for _, g := range m.Groups(true) {
		if g.Size.X > 1 {
			t.Errorf("group %s spans columns that are only wrap-adjacent", g)
		}
	}
}

func TestGroupsMissingCellsDoNotDisqualify(t *testing.T) {
	m := mustMap(t, table(t, "A B", "0 0 1"))
	found := false
	for _, g := range m.Groups(true) {
		if g.Size == (geom.Vec2{X: 2, Y: 2}) {
			found = true
		}
	}
	if !found {
		t.Error("unloaded coordinates should not constrain group shapes")
	}
}

// threeVarTable enumerates all 8 rows of f over A, B, C.
func threeVarTable(t *testing.T, f func(a, b, c bool) bool) Table {
	t.Helper()
	tbl := Table{Vars: []byte{'A', 'B', 'C'}}
	for i := 0; i < 8; i++ {
		a, b, c := i&4 != 0, i&2 != 0, i&1 != 0
		tbl.Rows = append(tbl.Rows, Row{
			Inputs:  []bool{a, b, c},
			Outcome: f(a, b, c),
		})
	}
	return tbl
}

// fourVarTable enumerates all 16 rows of f over A, B, C, D.
func fourVarTable(t *testing.T, f func(a, b, c, d bool) bool) Table {
	t.Helper()
	tbl := Table{Vars: []byte{'A', 'B', 'C', 'D'}}
	for i := 0; i < 16; i++ {
		a, b, c, d := i&8 != 0, i&4 != 0, i&2 != 0, i&1 != 0
		tbl.Rows = append(tbl.Rows, Row{
			Inputs:  []bool{a, b, c, d},
			Outcome: f(a, b, c, d),
		})
	}
	return tbl
}

// andTable3 is A and B over three variables: a single 1x2 column group.
func andTable3(t *testing.T) Table {
	return threeVarTable(t, func(a, b, c bool) bool { return a && b })
}
