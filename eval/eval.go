package eval

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/kmaptool/kmap"
	"github.com/kmaptool/kmap/debug"
)

// Program is a compiled boolean formula, executable against variable
// assignments.
type Program struct {
	src string
	prg *vm.Program
}

// Compile builds a program from synthesized terms.  For v true the terms
// form a sum of products, for v false a product of sums, matching
// [kmap.RenderTerms].
func Compile(terms []kmap.Term, v bool) (*Program, error) {
	src := Source(terms, v)
	if debug.Eval() {
		debug.Logf("eval source: %s\n", src)
	}
	prg, err := expr.Compile(src, expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("could not compile %q: %w", src, err)
	}
	return &Program{src: src, prg: prg}, nil
}

// Source renders terms as an expression over the variable identifiers.
// An empty term is the identity of its connective (true for a product,
// false for a sum), no terms the identity of the outer connective.
func Source(terms []kmap.Term, v bool) string {
	termSep, litSep, empty := " || ", " && ", "true"
	if !v {
		termSep, litSep, empty = " && ", " || ", "false"
	}
	if len(terms) == 0 {
		if v {
			return "false"
		}
		return "true"
	}
	parts := make([]string, 0, len(terms))
	for _, t := range terms {
		var lits []string
		for _, l := range t {
			switch l.State {
			case kmap.Asserted:
				lits = append(lits, string(l.Var))
			case kmap.Negated:
				lits = append(lits, "!"+string(l.Var))
			}
		}
		if len(lits) == 0 {
			parts = append(parts, "("+empty+")")
			continue
		}
		parts = append(parts, "("+strings.Join(lits, litSep)+")")
	}
	return strings.Join(parts, termSep)
}

// Eval runs the program against one joint assignment.
func (p *Program) Eval(a kmap.Assignment) (bool, error) {
	env := make(map[string]any, len(a))
	for k, v := range a {
		env[string(k)] = v
	}
	out, err := expr.Run(p.prg, env)
	if err != nil {
		return false, fmt.Errorf("could not evaluate %q: %w", p.src, err)
	}
	return out.(bool), nil
}

func (p *Program) String() string {
	return p.src
}

// Check re-evaluates the map's SOP and POS formulas against every row of
// the table it was built from.  Both must reproduce the row outcome
// exactly; the first disagreement is returned as an [ErrRoundTrip].
func Check(m *kmap.Map, t kmap.Table) error {
	for _, v := range []bool{true, false} {
		prg, err := Compile(m.Formula(v), v)
		if err != nil {
			return err
		}
		for i, r := range t.Rows {
			got, err := prg.Eval(t.Assignment(i))
			if err != nil {
				return err
			}
			if got != r.Outcome {
				return roundTripErr(v, i, got, r.Outcome)
			}
		}
	}
	return nil
}
