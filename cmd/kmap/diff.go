package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/kmaptool/kmap/encode"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff takes exactly two tables", cli.ErrUsage)
	}
	a, err := canonical(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	b, err := canonical(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(a, b, true)
	if f, ok := cc.Out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		fmt.Fprintln(cc.Out, diffCfg.DiffPrettyText(diffs))
		return nil
	}
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffInsert:
			fmt.Fprintf(cc.Out, "+%s", d.Text)
		case diffpatch.DiffDelete:
			fmt.Fprintf(cc.Out, "-%s", d.Text)
		case diffpatch.DiffEqual:
			fmt.Fprintf(cc.Out, "%s", d.Text)
		}
	}
	return nil
}

func canonical(cfg *MainConfig, cc *cli.Context, path string) (string, error) {
	tbl, err := getTableFile(cfg, cc, path)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := encode.Encode(tbl, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
