package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/kmaptool/kmap"
	"github.com/kmaptool/kmap/eval"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachTable(cfg.MainConfig, cc, args, func(tbl kmap.Table) error {
		m, err := kmap.New(tbl)
		if err != nil {
			return err
		}
		if err := eval.Check(m, tbl); err != nil {
			return err
		}
		fmt.Fprintln(cc.Out, "ok")
		return nil
	})
}
