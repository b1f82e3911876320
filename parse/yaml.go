package parse

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/kmaptool/kmap"
)

// yamlTable is the YAML table document:
//
//	variables: [A, B]
//	rows:
//	  - [0, 0, 0]
//	  - [0, 1, 1]
type yamlTable struct {
	Variables []string `yaml:"variables"`
	Rows      [][]int  `yaml:"rows"`
}

// ParseYAML reads the YAML truth-table format.  Row entries carry one 0/1
// per declared variable plus the trailing outcome, as in the text format.
func ParseYAML(data []byte, opts ...ParseOption) (kmap.Table, error) {
	o := mkOpts(opts)
	if len(bytes.TrimSpace(data)) == 0 {
		return kmap.Table{}, ErrEmpty
	}
	var yt yamlTable
	if err := yaml.Unmarshal(data, &yt); err != nil {
		return kmap.Table{}, fmt.Errorf("could not decode table: %w", err)
	}
	if len(yt.Variables) == 0 {
		return kmap.Table{}, ErrEmpty
	}
	vars, err := parseHeader(1, yt.Variables)
	if err != nil {
		return kmap.Table{}, err
	}
	tbl := kmap.Table{Vars: vars}
	for i, row := range yt.Rows {
		if len(row) != len(vars)+1 {
			return kmap.Table{}, rowArityErr(i+1, len(row), len(vars))
		}
		vals := make([]bool, 0, len(row))
		for _, n := range row {
			if n != 0 && n != 1 {
				return kmap.Table{}, badTokenErr(i+1, fmt.Sprint(n))
			}
			vals = append(vals, n == 1)
		}
		tbl.Rows = append(tbl.Rows, kmap.Row{
			Inputs:  vals[:len(vars)],
			Outcome: vals[len(vars)],
		})
	}
	if err := o.check(tbl); err != nil {
		return kmap.Table{}, err
	}
	return tbl, nil
}
