package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/kmaptool/kmap"
)

func minimize(cfg *MinimizeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Minimize.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Pos && cfg.Both {
		return fmt.Errorf("%w: -pos and -both are exclusive", cli.ErrUsage)
	}
	return eachTable(cfg.MainConfig, cc, args, func(tbl kmap.Table) error {
		m, err := kmap.New(tbl)
		if err != nil {
			return err
		}
		if cfg.Both {
			fmt.Fprintf(cc.Out, "sop: %s\npos: %s\n", m.Render(true), m.Render(false))
			return nil
		}
		fmt.Fprintln(cc.Out, m.Render(!cfg.Pos))
		return nil
	})
}
