package geom

import "fmt"

// Vec2 is a 2D integer point, also used for rectangle sizes.
type Vec2 struct {
	X, Y int
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%d, %d)", v.X, v.Y)
}

// Rect is an axis-aligned rectangle over grid cells, described by its
// top-left cell and its size in cells.
type Rect struct {
	Start, Size Vec2
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d@%s", r.Size.X, r.Size.Y, r.Start)
}

// In reports whether every cell of r is also a cell of o.  The comparison
// is bounds inclusive, so r.In(r) is true.
func (r Rect) In(o Rect) bool {
	return r.Start.X >= o.Start.X &&
		r.Start.Y >= o.Start.Y &&
		r.Start.X+r.Size.X <= o.Start.X+o.Size.X &&
		r.Start.Y+r.Size.Y <= o.Start.Y+o.Size.Y
}

// Points enumerates the cells covered by r, x-major.
func (r Rect) Points() []Vec2 {
	res := make([]Vec2, 0, r.Size.X*r.Size.Y)
	for x := 0; x < r.Size.X; x++ {
		for y := 0; y < r.Size.Y; y++ {
			res = append(res, Vec2{X: r.Start.X + x, Y: r.Start.Y + y})
		}
	}
	return res
}

// Contains reports whether p is one of the cells covered by r.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Start.X && p.X < r.Start.X+r.Size.X &&
		p.Y >= r.Start.Y && p.Y < r.Start.Y+r.Size.Y
}
