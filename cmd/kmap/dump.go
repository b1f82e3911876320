package main

import (
	"github.com/scott-cotton/cli"

	"github.com/kmaptool/kmap"
	"github.com/kmaptool/kmap/encode"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	var opts []encode.EncodeOption
	if cfg.YAMLOut {
		opts = append(opts, encode.EncodeYAML())
	}
	return eachTable(cfg.MainConfig, cc, args, func(tbl kmap.Table) error {
		return encode.Encode(tbl, cc.Out, opts...)
	})
}
