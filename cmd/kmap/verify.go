package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/kmaptool/kmap"
	"github.com/kmaptool/kmap/verify"
)

func verifyCmd(cfg *VerifyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Verify.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachTable(cfg.MainConfig, cc, args, func(tbl kmap.Table) error {
		m, err := kmap.New(tbl)
		if err != nil {
			return err
		}
		if err := verify.Equivalent(m, !cfg.Pos); err != nil {
			return err
		}
		fmt.Fprintln(cc.Out, "equivalent")
		return nil
	})
}
