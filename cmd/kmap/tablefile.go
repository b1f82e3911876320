package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/kmaptool/kmap"
	"github.com/kmaptool/kmap/parse"
)

func getTableFile(cfg *MainConfig, cc *cli.Context, path string) (kmap.Table, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return kmap.Table{}, fmt.Errorf("could not open %q: %w", path, err)
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return kmap.Table{}, fmt.Errorf("error reading %q: %w", path, err)
	}
	if cfg.Y {
		return parse.ParseYAML(data, cfg.parseOpts()...)
	}
	return parse.Parse(data, cfg.parseOpts()...)
}

// eachTable runs fn once per file argument, or once on stdin when no
// files are given.
func eachTable(cfg *MainConfig, cc *cli.Context, args []string, fn func(kmap.Table) error) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, path := range args {
		tbl, err := getTableFile(cfg, cc, path)
		if err != nil {
			return err
		}
		if err := fn(tbl); err != nil {
			return fmt.Errorf("error processing %s: %w", path, err)
		}
	}
	return nil
}
