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
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "f",
			Aliases:     []string{"format"},
			Description: "target format: json/j, yaml/y, toml/t (names the output file next to the input)",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.Format), "(format)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y, toml/t (default from input suffix)",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y, toml/t (default from output suffix)",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "scribe").
		WithSynopsis("scribe [opts] <input> [output]").
		WithDescription("scribe converts documents between json, yaml, and toml.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return scribeMain(cfg, cc, args)
		})
}
