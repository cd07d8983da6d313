package encode

import (
	"errors"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/scribe-format/scribe/debug"
	"github.com/scribe-format/scribe/format"
	"github.com/scribe-format/scribe/ir"
)

var ErrEncoding = errors.New("cannot encode")

type EncState struct {
	depth, indent int
	wire          bool

	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w in the format selected by opts (JSON when no
// format option is given).  Emission is all-or-nothing from the caller's
// point of view only if w buffers; the conversion driver encodes into memory
// before touching its output sink.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	if es.format != format.JSONFormat {
		// only JSON has a single-line wire form
		es.wire = false
	}
	if debug.Encode() {
		debug.Logf("encode %s node as %s\n", node.Type, es.format)
	}
	switch es.format {
	case format.JSONFormat:
		if err := encodeJSON(node, w, es); err != nil {
			return err
		}
	case format.YAMLFormat:
		if err := encodeYAML(node, w, es); err != nil {
			return err
		}
	case format.TOMLFormat:
		return encodeTOML(node, w, es)
	default:
		return format.ErrBadFormat
	}
	return writeString(w, "\n")
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

// writeNL starts a fresh line indented for the current depth; in wire mode
// output stays on one line.
func writeNL(w io.Writer, es *EncState) error {
	if es.wire {
		return nil
	}
	indentString := strings.Repeat(strings.Repeat(" ", es.indent), es.depth)
	return writeString(w, "\n"+indentString)
}

// formatFloat renders f so it round-trips to the same bit pattern and always
// re-parses as a float: integral values keep a trailing ".0" so the
// integer/float distinction survives re-parsing.
func formatFloat(f float64) string {
	v := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(v, ".eE") {
		v += ".0"
	}
	return v
}

func isSpecialFloat(f float64) bool {
	return math.IsNaN(f) || math.IsInf(f, 0)
}

// Color application helpers

func applyColor(es *EncState, nodeType ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}

func applyValueColor(es *EncState, nodeType ir.Type, v string) string {
	return applyColor(es, nodeType, ValueColor, v)
}
