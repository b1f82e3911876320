package main

import (
	"github.com/scott-cotton/cli"

	"github.com/kmaptool/kmap"
	"github.com/kmaptool/kmap/encode"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachTable(cfg.MainConfig, cc, args, func(tbl kmap.Table) error {
		m, err := kmap.New(tbl)
		if err != nil {
			return err
		}
		return encode.Grid(m, cc.Out, cfg.encOpts(cc.Out)...)
	})
}
