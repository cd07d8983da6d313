// Package scribe converts documents between JSON, YAML, and TOML by way of
// a shared in-memory representation (package ir).  Parsing and rendering
// live in the parse and encode packages; this package wires them together
// and adds file-level conveniences.
package scribe

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/scribe-format/scribe/debug"
	"github.com/scribe-format/scribe/encode"
	"github.com/scribe-format/scribe/format"
	"github.com/scribe-format/scribe/ir"
	"github.com/scribe-format/scribe/parse"
)

// ErrSameFormat is returned by ConvertFile when the resolved input and
// output formats are identical.
var ErrSameFormat = errors.New("input and output formats are identical")

type config struct {
	in, out *format.Format
	verify  bool
	encOpts []encode.EncodeOption
}

// Option configures ConvertFile.
type Option func(*config)

// InputFormat overrides the format inferred from the input path.
func InputFormat(f format.Format) Option {
	return func(c *config) { c.in = &f }
}

// OutputFormat overrides the format inferred from the output path.
func OutputFormat(f format.Format) Option {
	return func(c *config) { c.out = &f }
}

// WithVerify re-parses the rendered output and checks it for value
// equality with the parsed input before anything is written.
func WithVerify(v bool) Option {
	return func(c *config) { c.verify = v }
}

// WithEncodeOptions passes opts through to encode.Encode.  The output
// format always wins over any encode.EncodeFormat given here.
func WithEncodeOptions(opts ...encode.EncodeOption) Option {
	return func(c *config) { c.encOpts = append(c.encOpts, opts...) }
}

// Convert parses in as from and renders it as to.
func Convert(in []byte, from, to format.Format, encOpts ...encode.EncodeOption) ([]byte, error) {
	_, out, err := convert(in, from, to, encOpts...)
	return out, err
}

func convert(in []byte, from, to format.Format, encOpts ...encode.EncodeOption) (*ir.Node, []byte, error) {
	node, err := parse.Parse(in, parse.ParseFormat(from))
	if err != nil {
		return nil, nil, err
	}
	if debug.Convert() {
		debug.Logf("parsed %s document:\n%s\n", from, encode.MustString(node, encode.EncodeFormat(format.YAMLFormat)))
	}
	buf := bytes.NewBuffer(nil)
	opts := append(append([]encode.EncodeOption{}, encOpts...), encode.EncodeFormat(to))
	if err := encode.Encode(node, buf, opts...); err != nil {
		return nil, nil, err
	}
	return node, buf.Bytes(), nil
}

// ConvertFile reads inPath, converts it, and writes outPath.  Formats are
// resolved from the file suffixes unless overridden by options, and both
// must resolve before any file is touched.  Nothing is written on error.
func ConvertFile(inPath, outPath string, opts ...Option) error {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}
	from, err := resolveFormat(c.in, inPath)
	if err != nil {
		return fmt.Errorf("input %q: %w", inPath, err)
	}
	to, err := resolveFormat(c.out, outPath)
	if err != nil {
		return fmt.Errorf("output %q: %w", outPath, err)
	}
	if from == to {
		return fmt.Errorf("%w: %s", ErrSameFormat, from)
	}
	in, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}
	node, out, err := convert(in, from, to, c.encOpts...)
	if err != nil {
		return fmt.Errorf("%s: %w", inPath, err)
	}
	if c.verify {
		if err := Verify(node, out, to); err != nil {
			return err
		}
	}
	return os.WriteFile(outPath, out, 0644)
}

func resolveFormat(override *format.Format, path string) (format.Format, error) {
	if override != nil {
		return *override, nil
	}
	return format.FromPath(path)
}
