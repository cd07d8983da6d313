package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scribe-format/scribe/encode"
	"github.com/scribe-format/scribe/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='encode with color'"`
	Wire   bool `cli:"name=wire desc='compact single-line output (json only)'"`
	Verify bool `cli:"name=verify desc='re-parse the output and check it against the input before writing'"`
	Stdout bool `cli:"name=stdout desc='write to stdout instead of a file'"`

	Format, InFormat, OutFormat *format.Format

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// outFormat resolves the target format from the flags and the output path,
// in that order of preference.
func (cfg *MainConfig) outFormat(outPath string) (format.Format, error) {
	switch {
	case cfg.OutFormat != nil:
		return *cfg.OutFormat, nil
	case cfg.Format != nil:
		return *cfg.Format, nil
	}
	return format.FromPath(outPath)
}

// fileEncOpts builds the encode options for file output: wire mode, plus
// colors only when explicitly requested, never from TTY detection.
func (cfg *MainConfig) fileEncOpts() []encode.EncodeOption {
	res := []encode.EncodeOption{encode.EncodeWire(cfg.Wire)}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeWire(cfg.Wire),
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}
