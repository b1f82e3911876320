// Package encode writes truth tables and Karnaugh-map grid views.
//
// [Encode] produces the canonical text or YAML form of a [kmap.Table];
// [Grid] renders an indexed [kmap.Map] as a human-oriented grid with the
// axis labels in Karnaugh order, optionally colorized for terminals.
package encode
