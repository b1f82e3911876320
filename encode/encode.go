package encode

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/kmaptool/kmap"
)

// Encode writes t in the canonical text form: the header line of variable
// names, then one line per row.  With [EncodeYAML] the equivalent YAML
// document is written instead.
func Encode(t kmap.Table, w io.Writer, opts ...EncodeOption) error {
	o := mkOpts(opts)
	if o.yaml {
		return encodeYAML(t, w)
	}
	for i, v := range t.Vars {
		if i > 0 {
			if _, err := io.WriteString(w, " "); err != nil {
				return err
			}
		}
		if _, err := w.Write([]byte{v}); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	for _, r := range t.Rows {
		line := make([]byte, 0, 2*(len(r.Inputs)+1))
		for _, in := range r.Inputs {
			line = append(line, bit(in), ' ')
		}
		line = append(line, bit(r.Outcome), '\n')
		if _, err := w.Write(line); err != nil {
			return err
		}
	}
	return nil
}

func encodeYAML(t kmap.Table, w io.Writer) error {
	doc := struct {
		Variables []string `yaml:"variables"`
		Rows      [][]int  `yaml:"rows"`
	}{}
	for _, v := range t.Vars {
		doc.Variables = append(doc.Variables, string(v))
	}
	for _, r := range t.Rows {
		row := make([]int, 0, len(r.Inputs)+1)
		for _, in := range r.Inputs {
			row = append(row, bitInt(in))
		}
		doc.Rows = append(doc.Rows, append(row, bitInt(r.Outcome)))
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("could not encode table: %w", err)
	}
	_, err = w.Write(data)
	return err
}

func bit(v bool) byte {
	if v {
		return '1'
	}
	return '0'
}

func bitInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
