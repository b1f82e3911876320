package kmap

import (
	"slices"

	"github.com/kmaptool/kmap/geom"
)

// Axis selects one of the two grid axes.  The first half of the declared
// variables (rounded up) lands on [AxisX], the rest on [AxisY].
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// Assignment maps variable names to the state they hold at some cell, for
// the variables of a single axis.
type Assignment map[byte]bool

// AxisPos is one half of a cell's identity: the assignment of one axis's
// variables together with the grid position that assignment occupies in
// the Karnaugh ordering.
type AxisPos struct {
	Assignment Assignment
	Pos        int
}

// Cell is one loaded truth-table row, placed on the grid.  Cells are
// created by [New] and immutable afterwards.
type Cell struct {
	Value bool
	X, Y  AxisPos
}

// At returns the cell's grid coordinate.
func (c *Cell) At() geom.Vec2 {
	return geom.Vec2{X: c.X.Pos, Y: c.Y.Pos}
}

// State returns the state variable v holds at this cell, looking at the x
// axis assignment first.  The second return is false when neither axis
// carries v.
func (c *Cell) State(v byte) (bool, bool) {
	if s, ok := c.X.Assignment[v]; ok {
		return s, true
	}
	if s, ok := c.Y.Assignment[v]; ok {
		return s, true
	}
	return false, false
}

// Map is an indexed Karnaugh map.  Lookups that miss report a false found
// flag rather than a default value, so callers can tell "no cell here"
// from "cell holds false".
type Map struct {
	vars  []byte
	axis  [2][]byte
	cells []*Cell
}

// New indexes a table into a map.  The declared variables are split in
// half across the two axes (x axis takes the extra one for odd counts) and
// ordered by name within each axis; every row becomes one cell.  Tables
// needing more than two variables on an axis are rejected with
// [ErrAxisTooLarge], rows whose input count disagrees with the header with
// [ErrRowArity].
func New(t Table) (*Map, error) {
	m := &Map{vars: slices.Clone(t.Vars)}
	if dup, ok := firstDup(t.Vars); ok {
		return nil, duplicateVarErr(dup)
	}
	half := (len(t.Vars) + 1) / 2
	m.axis[AxisX] = slices.Clone(t.Vars[:half])
	m.axis[AxisY] = slices.Clone(t.Vars[half:])
	for a := AxisX; a <= AxisY; a++ {
		slices.Sort(m.axis[a])
		if len(m.axis[a]) > 2 {
			return nil, axisTooLargeErr(a, m.axis[a])
		}
	}
	for i, r := range t.Rows {
		if len(r.Inputs) != len(t.Vars) {
			return nil, rowArityErr(i, len(r.Inputs), len(t.Vars))
		}
		m.cells = append(m.cells, &Cell{
			Value: r.Outcome,
			X:     m.axisPos(AxisX, t, r),
			Y:     m.axisPos(AxisY, t, r),
		})
	}
	return m, nil
}

func (m *Map) axisPos(a Axis, t Table, r Row) AxisPos {
	vars := m.axis[a]
	as := make(Assignment, len(vars))
	key := make([]bool, 0, len(vars))
	for _, v := range vars {
		s := r.Inputs[slices.Index(t.Vars, v)]
		as[v] = s
		key = append(key, s)
	}
	pos := 0
	for i, o := range grayOrder(len(vars)) {
		if slices.Equal(o, key) {
			pos = i
			break
		}
	}
	return AxisPos{Assignment: as, Pos: pos}
}

// grayOrder is the Karnaugh traversal of an axis's assignments: position 0
// is all false, neighbors differ in one variable.  It is tabulated rather
// than derived because sizes beyond 2 need distinct row and column orders,
// which this map does not support.
func grayOrder(n int) [][]bool {
	switch n {
	case 0:
		return [][]bool{{}}
	case 1:
		return [][]bool{{false}, {true}}
	case 2:
		return [][]bool{
			{false, false}, {false, true}, {true, true}, {true, false},
		}
	}
	return nil
}

// GrayOrder returns the Karnaugh position ordering for an axis of n
// variables: entry i holds the variable states (in the axis's name order)
// at position i.  Only n ≤ 2 is defined; larger axes return
// [ErrAxisTooLarge].
func GrayOrder(n int) ([][]bool, error) {
	o := grayOrder(n)
	if o == nil {
		return nil, ErrAxisTooLarge
	}
	res := make([][]bool, len(o))
	for i := range o {
		res[i] = slices.Clone(o[i])
	}
	return res, nil
}

// Vars returns the declared variables in declaration order.
func (m *Map) Vars() []byte {
	return slices.Clone(m.vars)
}

// AxisVars returns axis a's variables in the axis's (name) order.
func (m *Map) AxisVars(a Axis) []byte {
	return slices.Clone(m.axis[a])
}

// Cells returns the loaded cells in input order.
func (m *Map) Cells() []*Cell {
	return slices.Clone(m.cells)
}

func (m *Map) SizeX() int { return 1 << len(m.axis[AxisX]) }
func (m *Map) SizeY() int { return 1 << len(m.axis[AxisY]) }
func (m *Map) Size() int  { return m.SizeX() * m.SizeY() }

// Empty reports whether the map was built with no variables at all.
func (m *Map) Empty() bool { return len(m.vars) == 0 }

// ValueAt returns the outcome at (x, y) and whether a cell occupies that
// coordinate.
func (m *Map) ValueAt(x, y int) (bool, bool) {
	c, ok := m.CellAt(x, y)
	if !ok {
		return false, false
	}
	return c.Value, true
}

// CellAt returns the cell at (x, y), if any.
func (m *Map) CellAt(x, y int) (*Cell, bool) {
	for _, c := range m.cells {
		if c.X.Pos == x && c.Y.Pos == y {
			return c, true
		}
	}
	return nil, false
}

// AxisAssignment returns the assignment of axis a's variables at axis
// position pos, scanning cells until one matches.  It reports false when
// no loaded cell uses that position.
func (m *Map) AxisAssignment(pos int, a Axis) (Assignment, bool) {
	for _, c := range m.cells {
		ap := c.X
		if a == AxisY {
			ap = c.Y
		}
		if ap.Pos == pos {
			return ap.Assignment, true
		}
	}
	return nil, false
}

func firstDup(vars []byte) (byte, bool) {
	sorted := slices.Clone(vars)
	slices.Sort(sorted)
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return sorted[i], true
		}
	}
	return 0, false
}
