// Package kmap minimizes boolean functions with the Karnaugh-map grouping
// method.
//
// A truth [Table] is indexed into a [Map]: the declared variables are split
// across the two grid axes and every row becomes a grid cell whose axis
// positions follow the Karnaugh (Gray code) ordering, so that neighboring
// cells differ in exactly one variable.  [Map.Groups] enumerates the
// rectangular groupings of equal outcome, [Map.Cover] reduces them to an
// irredundant cover, and [Map.Formula] and [Map.Render] turn the cover into
// a sum-of-products (outcome true) or product-of-sums (outcome false)
// expression.
//
// The axis ordering is defined for at most two variables per axis, so maps
// are limited to four variables in total.  Groups do not wrap around grid
// edges, and the cover is a greedy irredundant one, not a guaranteed
// minimum.
package kmap
