// Package geom provides the integer plane primitives used to describe
// Karnaugh-map groups.
//
// [Vec2] is a 2D integer point and [Rect] an axis-aligned rectangle given by
// a start point and a size.  Rectangles are compared and enumerated in cell
// units, bounds inclusive.
package geom
