// Package parse provides the input adapters turning raw document bytes
// into ir.Node trees.
package parse

import (
	"fmt"

	"github.com/scribe-format/scribe/debug"
	"github.com/scribe-format/scribe/format"
	"github.com/scribe-format/scribe/ir"
)

// Parse parses d according to the format selected by opts (JSON when no
// format option is given) and returns the resulting value tree.
//
// Errors wrap ir.ErrParse for malformed input and ir.ErrUnsupportedFeature
// for well-formed input using constructs the value model cannot hold
// (multi-document YAML streams, TOML datetimes).
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{format: format.JSONFormat}
	for _, f := range opts {
		f(pOpts)
	}
	if debug.Parse() {
		debug.Logf("parse %d bytes of %s\n", len(d), pOpts.format)
	}
	switch pOpts.format {
	case format.JSONFormat:
		return parseJSON(d)
	case format.YAMLFormat:
		return parseYAML(d)
	case format.TOMLFormat:
		return parseTOML(d)
	}
	return nil, fmt.Errorf("%w: %d", format.ErrBadFormat, pOpts.format)
}
