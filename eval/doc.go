// Package eval executes synthesized formulas against variable
// assignments.
//
// [Compile] turns the terms from [kmap.Map.Formula] into an executable
// boolean program; [Check] uses it to re-evaluate both the SOP and POS
// renderings of a map against every row of the source table.
package eval
