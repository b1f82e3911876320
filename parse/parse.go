package parse

import (
	"fmt"
	"os"
	"strings"

	"github.com/kmaptool/kmap"
)

// Parse reads the plain text truth-table format:
//
//	A B C
//	0 0 0 0
//	0 0 1 1
//	...
//
// The first non-blank line declares the variables; every following
// non-blank line gives one 0/1 input per variable, in declaration order,
// and a trailing 0/1 outcome.
func Parse(data []byte, opts ...ParseOption) (kmap.Table, error) {
	o := mkOpts(opts)
	var tbl kmap.Table
	header := false
	for i, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if !header {
			vars, err := parseHeader(i+1, fields)
			if err != nil {
				return kmap.Table{}, err
			}
			tbl.Vars = vars
			header = true
			continue
		}
		row, err := parseRow(i+1, fields, len(tbl.Vars))
		if err != nil {
			return kmap.Table{}, err
		}
		tbl.Rows = append(tbl.Rows, row)
	}
	if !header {
		return kmap.Table{}, ErrEmpty
	}
	if err := o.check(tbl); err != nil {
		return kmap.Table{}, err
	}
	return tbl, nil
}

// ParseFile reads a table from path in the format selected by opts.
func ParseFile(path string, opts ...ParseOption) (kmap.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return kmap.Table{}, fmt.Errorf("could not read %q: %w", path, err)
	}
	if mkOpts(opts).yaml {
		return ParseYAML(data, opts...)
	}
	return Parse(data, opts...)
}

func parseHeader(line int, fields []string) ([]byte, error) {
	vars := make([]byte, 0, len(fields))
	seen := map[byte]bool{}
	for _, f := range fields {
		if len(f) != 1 {
			return nil, fmt.Errorf("%w: line %d: %q", ErrVarName, line, f)
		}
		v := f[0]
		if seen[v] {
			return nil, fmt.Errorf("%w: line %d: %q", ErrDuplicateVar, line, v)
		}
		seen[v] = true
		vars = append(vars, v)
	}
	return vars, nil
}

func parseRow(line int, fields []string, nvars int) (kmap.Row, error) {
	if len(fields) != nvars+1 {
		return kmap.Row{}, rowArityErr(line, len(fields), nvars)
	}
	vals := make([]bool, 0, len(fields))
	for _, f := range fields {
		b, err := parseBit(line, f)
		if err != nil {
			return kmap.Row{}, err
		}
		vals = append(vals, b)
	}
	return kmap.Row{Inputs: vals[:nvars], Outcome: vals[nvars]}, nil
}

func parseBit(line int, tok string) (bool, error) {
	switch tok {
	case "0":
		return false, nil
	case "1":
		return true, nil
	}
	return false, badTokenErr(line, tok)
}
