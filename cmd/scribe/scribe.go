package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/scribe-format/scribe"
	"github.com/scribe-format/scribe/format"

	"github.com/scott-cotton/cli"
)

func scribeMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: need <input> [output]", cli.ErrUsage)
	}
	inPath := args[0]
	outPath := ""
	if len(args) == 2 {
		outPath = args[1]
	}
	if cfg.Stdout {
		return toStdout(cfg, cc, inPath, outPath)
	}
	if outPath == "" {
		if cfg.Format == nil {
			return fmt.Errorf("%w: need an output path or -f", cli.ErrUsage)
		}
		outPath = withSuffix(inPath, *cfg.Format)
	}
	to, err := cfg.outFormat(outPath)
	if err != nil {
		return fmt.Errorf("%w: output %q: %w", cli.ErrUsage, outPath, err)
	}
	opts := []scribe.Option{
		scribe.OutputFormat(to),
		scribe.WithVerify(cfg.Verify),
		scribe.WithEncodeOptions(cfg.fileEncOpts()...),
	}
	if cfg.InFormat != nil {
		opts = append(opts, scribe.InputFormat(*cfg.InFormat))
	}
	if err := scribe.ConvertFile(inPath, outPath, opts...); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "wrote %s to %s\n", to, outPath)
	return nil
}

func toStdout(cfg *MainConfig, cc *cli.Context, inPath, outPath string) error {
	var from format.Format
	if cfg.InFormat != nil {
		from = *cfg.InFormat
	} else {
		f, err := format.FromPath(inPath)
		if err != nil {
			return fmt.Errorf("%w: input %q: %w", cli.ErrUsage, inPath, err)
		}
		from = f
	}
	to, err := cfg.outFormat(outPath)
	if err != nil {
		if outPath != "" {
			return fmt.Errorf("%w: output %q: %w", cli.ErrUsage, outPath, err)
		}
		return fmt.Errorf("%w: need -f, -O, or an output path", cli.ErrUsage)
	}
	in, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}
	out, err := scribe.Convert(in, from, to, cfg.encOpts(cc.Out)...)
	if err != nil {
		return fmt.Errorf("%s: %w", inPath, err)
	}
	_, err = cc.Out.Write(out)
	return err
}

// withSuffix replaces path's extension with the format's suffix.
func withSuffix(path string, f format.Format) string {
	if i := strings.LastIndexByte(path, '.'); i > strings.LastIndexByte(path, '/') {
		path = path[:i]
	}
	return path + f.Suffix()
}
