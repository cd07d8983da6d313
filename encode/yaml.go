package encode

import (
	"io"
	"math"
	"strconv"

	"github.com/scribe-format/scribe/ir"
)

// encodeYAML writes block style throughout; flow style appears only for
// empty containers, which have no block spelling.
func encodeYAML(node *ir.Node, w io.Writer, es *EncState) error {
	switch {
	case node.Type == ir.ObjectType && len(node.Fields) > 0:
		return yamlObject(node, w, es, true)
	case node.Type == ir.ArrayType && len(node.Values) > 0:
		return yamlArray(node, w, es, true)
	default:
		return yamlScalar(node, w, es)
	}
}

// yamlObject writes the entries of node.  With hang set the first entry
// continues the current line (after a "- " marker or at document start);
// every other entry begins a fresh indented line.
func yamlObject(node *ir.Node, w io.Writer, es *EncState, hang bool) error {
	for i, field := range node.Fields {
		if i > 0 || !hang {
			if err := writeNL(w, es); err != nil {
				return err
			}
		}
		key := field.String
		if NeedsYAMLQuote(key) {
			key = Quote(key)
		}
		key = applyColor(es, ir.ObjectType, FieldColor, key)
		sep := applyColor(es, ir.ObjectType, SepColor, ":")
		if err := writeString(w, key+sep); err != nil {
			return err
		}
		val := node.Values[i]
		switch {
		case val.Type == ir.ObjectType && len(val.Fields) > 0:
			es.depth++
			if err := yamlObject(val, w, es, false); err != nil {
				return err
			}
			es.depth--
		case val.Type == ir.ArrayType && len(val.Values) > 0:
			es.depth++
			if err := yamlArray(val, w, es, false); err != nil {
				return err
			}
			es.depth--
		default:
			if err := writeString(w, " "); err != nil {
				return err
			}
			if err := yamlScalar(val, w, es); err != nil {
				return err
			}
		}
	}
	return nil
}

func yamlArray(node *ir.Node, w io.Writer, es *EncState, hang bool) error {
	for i, v := range node.Values {
		if i > 0 || !hang {
			if err := writeNL(w, es); err != nil {
				return err
			}
		}
		marker := applyColor(es, ir.ArrayType, SepColor, "-") + " "
		if err := writeString(w, marker); err != nil {
			return err
		}
		switch {
		case v.Type == ir.ObjectType && len(v.Fields) > 0:
			es.depth++
			if err := yamlObject(v, w, es, true); err != nil {
				return err
			}
			es.depth--
		case v.Type == ir.ArrayType && len(v.Values) > 0:
			es.depth++
			if err := yamlArray(v, w, es, true); err != nil {
				return err
			}
			es.depth--
		default:
			if err := yamlScalar(v, w, es); err != nil {
				return err
			}
		}
	}
	return nil
}

// yamlScalar also covers empty containers, which only have flow spellings.
func yamlScalar(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.NullType:
		return writeString(w, applyValueColor(es, ir.NullType, "null"))
	case ir.BoolType:
		return writeString(w, applyValueColor(es, ir.BoolType, strconv.FormatBool(node.Bool)))
	case ir.NumberType:
		return writeString(w, applyValueColor(es, ir.NumberType, yamlNumber(node)))
	case ir.StringType:
		v := node.String
		if NeedsYAMLQuote(v) {
			v = Quote(v)
		}
		return writeString(w, applyValueColor(es, ir.StringType, v))
	case ir.ObjectType:
		return writeString(w, "{}")
	case ir.ArrayType:
		return writeString(w, "[]")
	default:
		panic("type")
	}
}

func yamlNumber(node *ir.Node) string {
	if node.Int64 != nil {
		return strconv.FormatInt(*node.Int64, 10)
	}
	f := *node.Float64
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	return formatFloat(f)
}
