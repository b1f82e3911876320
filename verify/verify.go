package verify

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/kmaptool/kmap"
	"github.com/kmaptool/kmap/debug"
)

const (
	satisfiable   = 1
	unsatisfiable = -1
)

// Equivalent proves that the formula synthesized from m for outcome v
// computes exactly the function m's cells define.  It returns nil on
// equivalence and [ErrNotEquivalent] with a witness assignment otherwise.
func Equivalent(m *kmap.Map, v bool) error {
	return Check(m, m.Formula(v), v)
}

// Check proves the given terms (read as SOP for v true, POS for v false)
// equivalent to the function defined by m's cells.  Split from
// [Equivalent] so callers can check covers they did not synthesize
// themselves.
func Check(m *kmap.Map, terms []kmap.Term, v bool) error {
	c := logic.NewC()
	ins := make(map[byte]z.Lit, len(m.Vars()))
	for _, vr := range m.Vars() {
		ins[vr] = c.Lit()
	}

	miter := c.Xor(formulaLit(c, ins, terms, v), tableLit(c, ins, m))
	g := gini.New()
	c.ToCnfFrom(g, miter)
	// the conversion leaves the constant variable free; pin it so a
	// miter folded to a constant is decided rather than guessed
	g.Add(c.T)
	g.Add(0)
	g.Assume(miter)
	res := g.Solve()
	if debug.Verify() {
		debug.Logf("verify(%t): solver result %d\n", v, res)
	}
	switch res {
	case unsatisfiable:
		return nil
	case satisfiable:
		witness := make(kmap.Assignment, len(ins))
		for vr, in := range ins {
			witness[vr] = g.Value(in)
		}
		return notEquivalentErr(v, witness)
	}
	return ErrUndecided
}

// formulaLit builds the circuit of the synthesized terms: an OR of AND
// terms for SOP, an AND of OR terms for POS.  Empty terms are the
// identity of their connective, no terms the identity of the outer one.
func formulaLit(c *logic.C, ins map[byte]z.Lit, terms []kmap.Term, v bool) z.Lit {
	if v {
		f := c.F
		for _, t := range terms {
			f = c.Or(f, termLit(c, ins, t, v))
		}
		return f
	}
	f := c.T
	for _, t := range terms {
		f = c.And(f, termLit(c, ins, t, v))
	}
	return f
}

func termLit(c *logic.C, ins map[byte]z.Lit, t kmap.Term, v bool) z.Lit {
	res := c.T
	if !v {
		res = c.F
	}
	for _, l := range t {
		var in z.Lit
		switch l.State {
		case kmap.Asserted:
			in = ins[l.Var]
		case kmap.Negated:
			in = ins[l.Var].Not()
		default:
			continue
		}
		if v {
			res = c.And(res, in)
		} else {
			res = c.Or(res, in)
		}
	}
	return res
}

// tableLit builds the exact function the cells define: the OR of one
// minterm per true cell.  Variables a cell cannot resolve constrain
// nothing, mirroring the lookup behavior of the grouping pipeline.
func tableLit(c *logic.C, ins map[byte]z.Lit, m *kmap.Map) z.Lit {
	f := c.F
	for _, cell := range m.Cells() {
		if !cell.Value {
			continue
		}
		t := c.T
		for _, vr := range m.Vars() {
			s, ok := cell.State(vr)
			if !ok {
				continue
			}
			in := ins[vr]
			if !s {
				in = in.Not()
			}
			t = c.And(t, in)
		}
		f = c.Or(f, t)
	}
	return f
}
