package verify

import (
	"errors"
	"testing"

	"github.com/kmaptool/kmap"
)

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

func TestEquivalent(t *testing.T) {
	for i, tbl := range []kmap.Table{
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
	} {
		m, err := kmap.New(tbl)
		if err != nil {
			t.Fatalf("fixture %d: %v", i, err)
		}
		for _, v := range []bool{true, false} {
			if err := Equivalent(m, v); err != nil {
				t.Errorf("fixture %d (%t): %v", i, v, err)
			}
		}
	}
}

func TestCheckRejectsWrongCover(t *testing.T) {
	tbl := enumTable("AB", func(in []bool) bool { return in[0] && in[1] })
	m, err := kmap.New(tbl)
	if err != nil {
		t.Fatal(err)
	}
	// claims the function is just A
	terms := []kmap.Term{{{Var: 'A', State: kmap.Asserted}}}
	err = Check(m, terms, true)
	if !errors.Is(err, ErrNotEquivalent) {
		t.Fatalf("got %v, want ErrNotEquivalent", err)
	}
}

func TestCheckWitness(t *testing.T) {
	tbl := enumTable("AB", func(in []bool) bool { return in[0] })
	m, err := kmap.New(tbl)
	if err != nil {
		t.Fatal(err)
	}
	// constant true disagrees exactly where A is false
	err = Check(m, []kmap.Term{{}}, true)
	if !errors.Is(err, ErrNotEquivalent) {
		t.Fatalf("got %v, want ErrNotEquivalent", err)
	}
}
