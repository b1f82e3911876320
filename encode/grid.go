package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/kmaptool/kmap"
)

// Grid writes m as a Karnaugh grid: row labels are the x-axis variable
// states and column labels the y-axis states, both in Karnaugh order.
// Cells print 1, 0, or `.` for coordinates with no loaded row.  With
// [EncodeCover], the irredundant cover rectangles and their rendered
// terms are listed below the grid.
func Grid(m *kmap.Map, w io.Writer, opts ...EncodeOption) error {
	o := mkOpts(opts)
	xv, yv := m.AxisVars(kmap.AxisX), m.AxisVars(kmap.AxisY)
	xo, err := kmap.GrayOrder(len(xv))
	if err != nil {
		return err
	}
	yo, err := kmap.GrayOrder(len(yv))
	if err != nil {
		return err
	}

	header := o.colors.sprintf(HeaderColor)
	corner := string(xv) + ` \ ` + string(yv)
	left := len(corner)
	col := max(len(yv), 1)

	line := []string{header(pad(corner, left))}
	for _, states := range yo {
		line = append(line, header(pad(bits(states), col)))
	}
	if _, err := io.WriteString(w, strings.Join(line, "  ")+"\n"); err != nil {
		return err
	}

	for x, states := range xo {
		line = line[:0]
		line = append(line, header(pad(bits(states), left)))
		for y := range yo {
			line = append(line, o.cellString(m, x, y, col))
		}
		if _, err := io.WriteString(w, strings.Join(line, "  ")+"\n"); err != nil {
			return err
		}
	}

	for _, v := range o.cover {
		if err := o.writeCover(m, w, v); err != nil {
			return err
		}
	}
	return nil
}

func (o *encOpts) cellString(m *kmap.Map, x, y, col int) string {
	v, ok := m.ValueAt(x, y)
	switch {
	case !ok:
		return o.colors.sprintf(MissingColor)(pad(".", col))
	case v:
		return o.colors.sprintf(TrueColor)(pad("1", col))
	}
	return o.colors.sprintf(FalseColor)(pad("0", col))
}

func (o *encOpts) writeCover(m *kmap.Map, w io.Writer, v bool) error {
	kind := "sop"
	if !v {
		kind = "pos"
	}
	cover := m.Cover(v)
	terms := m.Formula(v)
	sprintf := o.colors.sprintf(CoverColor)
	if _, err := fmt.Fprintf(w, "%s\n", sprintf("cover %s:", kind)); err != nil {
		return err
	}
	for i, g := range cover {
		line := fmt.Sprintf("  %s  %s", g, kmap.RenderTerms(terms[i:i+1], v))
		if _, err := fmt.Fprintf(w, "%s\n", sprintf("%s", line)); err != nil {
			return err
		}
	}
	return nil
}

// bits renders axis states as 0/1 digits in the axis's variable order.
func bits(states []bool) string {
	b := make([]byte, len(states))
	for i, s := range states {
		b[i] = bit(s)
	}
	return string(b)
}

func pad(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}
