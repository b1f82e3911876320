package main

import (
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/kmaptool/kmap/encode"
	"github.com/kmaptool/kmap/parse"
)

type MainConfig struct {
	Y      bool `cli:"name=y aliases=yaml desc='read tables as yaml'"`
	Strict bool `cli:"name=strict desc='require complete truth tables'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	var res []parse.ParseOption
	if cfg.Y {
		res = append(res, parse.YAML())
	}
	if cfg.Strict {
		res = append(res, parse.Strict())
	}
	return res
}

type MinimizeConfig struct {
	*MainConfig
	Pos  bool `cli:"name=pos desc='produce the product-of-sums form'"`
	Both bool `cli:"name=both desc='produce both forms'"`

	Minimize *cli.Command
}

type ViewConfig struct {
	*MainConfig
	Color bool `cli:"name=color desc='view with color'"`
	Cover bool `cli:"name=cover desc='list the irredundant covers'"`

	View *cli.Command
}

func (cfg *ViewConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var res []encode.EncodeOption
	if cfg.Cover {
		res = append(res, encode.EncodeCover(true), encode.EncodeCover(false))
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type CheckConfig struct {
	*MainConfig

	Check *cli.Command
}

type VerifyConfig struct {
	*MainConfig
	Pos bool `cli:"name=pos desc='verify the product-of-sums form'"`

	Verify *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type DumpConfig struct {
	*MainConfig
	YAMLOut bool `cli:"name=oyaml desc='write the table as yaml'"`

	Dump *cli.Command
}
