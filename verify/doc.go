// Package verify proves synthesized formulas equivalent to their source
// truth table with a SAT solver.
//
// The formula and the table's exact minterm expansion are built as one
// combinational circuit whose XOR is asserted; unsatisfiability of the
// miter is the equivalence proof, and a satisfying assignment is a
// counterexample.
package verify
