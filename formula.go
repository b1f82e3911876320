package kmap

import "strings"

// Literal is how a variable participates in one term of the synthesized
// formula.
type Literal int

const (
	// Irrelevant variables vary across the term's group and are left out
	// of the rendering.
	Irrelevant Literal = iota
	// Asserted variables hold a constant state equal to the group's
	// outcome.
	Asserted
	// Negated variables hold a constant state opposite to the group's
	// outcome.
	Negated
)

func (l Literal) String() string {
	switch l {
	case Asserted:
		return "asserted"
	case Negated:
		return "negated"
	}
	return "irrelevant"
}

// Lit is one variable's literal within a term.
type Lit struct {
	Var   byte
	State Literal
}

// Term is one product (SOP) or sum (POS) of the synthesized formula, with
// one literal per declared variable, in declaration order.
type Term []Lit

// State returns the term's literal for variable v.
func (t Term) State(v byte) Literal {
	for _, l := range t {
		if l.Var == v {
			return l.State
		}
	}
	return Irrelevant
}

// Formula synthesizes one term per cover group for outcome v.  For each
// declared variable, the variable's state is read at every covered cell:
// a state missing from both axis assignments or varying across the group
// makes the variable irrelevant; a constant state equal to the group's
// outcome asserts it, an opposite constant state negates it.
func (m *Map) Formula(v bool) []Term {
	var res []Term
	for _, g := range m.Cover(v) {
		cells := m.cellsIn(g)
		term := make(Term, 0, len(m.vars))
		for _, vr := range m.vars {
			term = append(term, Lit{Var: vr, State: literalFor(cells, vr)})
		}
		res = append(res, term)
	}
	return res
}

func literalFor(cells []*Cell, vr byte) Literal {
	if len(cells) == 0 {
		return Irrelevant
	}
	rep := cells[0].Value
	var state bool
	for i, c := range cells {
		s, ok := c.State(vr)
		if !ok {
			return Irrelevant
		}
		if i > 0 && s != state {
			return Irrelevant
		}
		state = s
	}
	if state == rep {
		return Asserted
	}
	return Negated
}

// Render synthesizes and renders the formula for outcome v.  SOP
// (v true) joins terms with ` + ` and literals with ` x `; POS (v false)
// swaps the connectives.  See [RenderTerms].
func (m *Map) Render(v bool) string {
	return RenderTerms(m.Formula(v), v)
}

// RenderTerms renders terms as an SOP (v true) or POS (v false)
// expression.  Every term is parenthesized, negated literals carry a `!`
// prefix, irrelevant variables are omitted.  No terms renders as the
// empty string.
func RenderTerms(terms []Term, v bool) string {
	termSep, litSep := " + ", " x "
	if !v {
		termSep, litSep = " x ", " + "
	}
	var b strings.Builder
	for i, t := range terms {
		if i > 0 {
			b.WriteString(termSep)
		}
		b.WriteByte('(')
		first := true
		for _, l := range t {
			if l.State == Irrelevant {
				continue
			}
			if !first {
				b.WriteString(litSep)
			}
			if l.State == Negated {
				b.WriteByte('!')
			}
			b.WriteByte(l.Var)
			first = false
		}
		b.WriteByte(')')
	}
	return b.String()
}
