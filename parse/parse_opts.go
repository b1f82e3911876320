package parse

import (
	"fmt"

	"github.com/kmaptool/kmap"
)

type parseOpts struct {
	strict bool
	yaml   bool
}

type ParseOption func(*parseOpts)

// Strict requires a complete table: exactly 2^(variable count) rows, all
// with distinct inputs.  Without it, incomplete tables parse fine and the
// missing coordinates simply constrain nothing downstream.
func Strict() ParseOption {
	return func(o *parseOpts) { o.strict = true }
}

// YAML selects the YAML table format for [ParseFile].
func YAML() ParseOption {
	return func(o *parseOpts) { o.yaml = true }
}

func mkOpts(opts []ParseOption) *parseOpts {
	o := &parseOpts{}
	for _, f := range opts {
		f(o)
	}
	return o
}

func (o *parseOpts) check(t kmap.Table) error {
	if !o.strict {
		return nil
	}
	want := 1 << len(t.Vars)
	if len(t.Rows) != want {
		return fmt.Errorf("%w: %d rows, want %d", ErrIncompleteTable, len(t.Rows), want)
	}
	seen := map[string]bool{}
	for _, r := range t.Rows {
		key := rowKey(r.Inputs)
		if seen[key] {
			return fmt.Errorf("%w: inputs %s", ErrDuplicateRow, key)
		}
		seen[key] = true
	}
	return nil
}

func rowKey(inputs []bool) string {
	b := make([]byte, len(inputs))
	for i, v := range inputs {
		b[i] = '0'
		if v {
			b[i] = '1'
		}
	}
	return string(b)
}
