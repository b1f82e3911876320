package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "kmap").
		WithSynopsis("kmap [opts] command [opts]").
		WithDescription("kmap minimizes truth tables with the Karnaugh-map method.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return kmapMain(cfg, cc, args)
		}).
		WithSubs(
			MinimizeCommand(cfg),
			ViewCommand(cfg),
			CheckCommand(cfg),
			VerifyCommand(cfg),
			DiffCommand(cfg),
			DumpCommand(cfg))
}

func MinimizeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MinimizeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Minimize, "minimize").
		WithAliases("m", "min").
		WithSynopsis("minimize [-pos|-both] [files]").
		WithDescription("print the minimized sum-of-products (default) or product-of-sums").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return minimize(cfg, cc, args)
		})
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view [-color] [-cover] [files]").
		WithDescription("view truth tables as Karnaugh grids").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check [files]").
		WithDescription("re-evaluate both minimized forms against every table row").
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func VerifyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &VerifyConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Verify, "verify").
		WithSynopsis("verify [-pos] [files]").
		WithDescription("prove the minimized form equivalent to the table with a SAT solver").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return verifyCmd(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff <a> <b>").
		WithDescription("diff the canonical encodings of two truth tables").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithSynopsis("dump [-oyaml] [files]").
		WithDescription("re-encode truth tables between the text and yaml forms").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
}
