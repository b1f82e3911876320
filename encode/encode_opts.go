package encode

type encOpts struct {
	yaml   bool
	colors *Colors
	cover  []bool
}

type EncodeOption func(*encOpts)

// EncodeYAML selects the YAML table form for [Encode].
func EncodeYAML() EncodeOption {
	return func(o *encOpts) { o.yaml = true }
}

// EncodeColors colorizes [Grid] output with the given palette.
func EncodeColors(c *Colors) EncodeOption {
	return func(o *encOpts) { o.colors = c }
}

// EncodeCover makes [Grid] list the irredundant cover for outcome v below
// the grid.  May be given for both outcomes.
func EncodeCover(v bool) EncodeOption {
	return func(o *encOpts) { o.cover = append(o.cover, v) }
}

func mkOpts(opts []EncodeOption) *encOpts {
	o := &encOpts{}
	for _, f := range opts {
		f(o)
	}
	return o
}
