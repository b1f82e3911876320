package eval

import (
	"errors"
	"testing"

	"github.com/kmaptool/kmap"
)

// enumTable enumerates all rows of f over the given variables.
func enumTable(vars string, f func([]bool) bool) kmap.Table {
	tbl := kmap.Table{Vars: []byte(vars)}
	n := len(vars)
	for i := 0; i < 1<<n; i++ {
		inputs := make([]bool, n)
		for j := 0; j < n; j++ {
			inputs[j] = i&(1<<(n-1-j)) != 0
		}
		tbl.Rows = append(tbl.Rows, kmap.Row{Inputs: inputs, Outcome: f(inputs)})
	}
	return tbl
}

func fixtures() []kmap.Table {
	return []kmap.Table{
		enumTable("AB", func(in []bool) bool { return in[0] || in[1] }),
		enumTable("AB", func(in []bool) bool { return in[0] != in[1] }),
		enumTable("AB", func(in []bool) bool { return true }),
		enumTable("AB", func(in []bool) bool { return false }),
		enumTable("ABC", func(in []bool) bool { return in[0] && in[1] }),
		enumTable("ABC", func(in []bool) bool { return !in[1] }),
		enumTable("ABCD", func(in []bool) bool { return in[1] }),
		enumTable("ABCD", func(in []bool) bool {
			return in[0] && in[1] || in[2] && in[3]
		}),
	}
}

func TestCheck(t *testing.T) {
	for i, tbl := range fixtures() {
		m, err := kmap.New(tbl)
		if err != nil {
			t.Fatalf("fixture %d: %v", i, err)
		}
		if err := Check(m, tbl); err != nil {
			t.Errorf("fixture %d: %v", i, err)
		}
	}
}

func TestCheckCatchesWrongFormula(t *testing.T) {
	// AND table, but with a formula claiming the function is A
	tbl := enumTable("AB", func(in []bool) bool { return in[0] && in[1] })
	prg, err := Compile([]kmap.Term{{{Var: 'A', State: kmap.Asserted}}}, true)
	if err != nil {
		t.Fatal(err)
	}
	bad := 0
	for i, r := range tbl.Rows {
		got, err := prg.Eval(tbl.Assignment(i))
		if err != nil {
			t.Fatal(err)
		}
		if got != r.Outcome {
			bad++
		}
	}
	if bad == 0 {
		t.Error("a wrong formula should disagree with the table somewhere")
	}
}

func TestSource(t *testing.T) {
	and := kmap.Term{
		{Var: 'A', State: kmap.Asserted},
		{Var: 'B', State: kmap.Negated},
		{Var: 'C', State: kmap.Irrelevant},
	}
	b := kmap.Term{
		{Var: 'B', State: kmap.Asserted},
	}
	for _, tc := range []struct {
		terms []kmap.Term
		v     bool
		want  string
	}{
		{terms: nil, v: true, want: "false"},
		{terms: nil, v: false, want: "true"},
		{terms: []kmap.Term{{}}, v: true, want: "(true)"},
		{terms: []kmap.Term{{}}, v: false, want: "(false)"},
		{terms: []kmap.Term{and}, v: true, want: "(A && !B)"},
		{terms: []kmap.Term{and, b}, v: true, want: "(A && !B) || (B)"},
		{terms: []kmap.Term{and, b}, v: false, want: "(A || !B) && (B)"},
	} {
		if got := Source(tc.terms, tc.v); got != tc.want {
			t.Errorf("Source(%v, %t) = %q, want %q", tc.terms, tc.v, got, tc.want)
		}
	}
}

func TestEval(t *testing.T) {
	prg, err := Compile([]kmap.Term{
		{
			{Var: 'A', State: kmap.Asserted},
			{Var: 'B', State: kmap.Negated},
		},
	}, true)
	if err != nil {
		t.Fatal(err)
	}
	for _, tc := range []struct {
		a, b, want bool
	}{
		{a: true, b: false, want: true},
		{a: true, b: true, want: false},
		{a: false, b: false, want: false},
	} {
		got, err := prg.Eval(kmap.Assignment{'A': tc.a, 'B': tc.b})
		if err != nil {
			t.Fatal(err)
		}
		if got != tc.want {
			t.Errorf("A=%t B=%t: got %t, want %t", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestCheckReportsRoundTrip(t *testing.T) {
	// an incomplete table whose lone cell groups the whole grid: the
	// formula is built from one cell but checked against a full table
	tbl := enumTable("AB", func(in []bool) bool { return !in[0] && !in[1] })
	partial := kmap.Table{Vars: tbl.Vars, Rows: tbl.Rows[:1]}
	m, err := kmap.New(partial)
	if err != nil {
		t.Fatal(err)
	}
	full := enumTable("AB", func(in []bool) bool { return true })
	if err := Check(m, full); !errors.Is(err, ErrRoundTrip) {
		t.Errorf("got %v, want ErrRoundTrip", err)
	}
}
