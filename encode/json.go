package encode

import (
	"fmt"
	"io"
	"strconv"

	"github.com/scribe-format/scribe/ir"
)

func encodeJSON(node *ir.Node, w io.Writer, es *EncState) error {
	return jsonValue(node, w, es)
}

func jsonValue(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.ObjectType:
		return jsonObject(node, w, es)
	case ir.ArrayType:
		return jsonArray(node, w, es)
	case ir.StringType:
		return writeString(w, applyValueColor(es, ir.StringType, Quote(node.String)))
	case ir.NumberType:
		return jsonNumber(node, w, es)
	case ir.BoolType:
		return writeString(w, applyValueColor(es, ir.BoolType, strconv.FormatBool(node.Bool)))
	case ir.NullType:
		return writeString(w, applyValueColor(es, ir.NullType, "null"))
	default:
		panic("type")
	}
}

func jsonObject(node *ir.Node, w io.Writer, es *EncState) error {
	n := len(node.Fields)
	if n == 0 {
		return writeString(w, "{}")
	}
	if err := writeString(w, "{"); err != nil {
		return err
	}
	es.depth++
	for i, field := range node.Fields {
		if err := writeNL(w, es); err != nil {
			return err
		}
		f := applyColor(es, ir.ObjectType, FieldColor, Quote(field.String))
		sep := applyColor(es, ir.ObjectType, SepColor, ":")
		if !es.wire {
			sep += " "
		}
		if err := writeString(w, f+sep); err != nil {
			return err
		}
		if err := jsonValue(node.Values[i], w, es); err != nil {
			return err
		}
		if i < n-1 {
			if err := writeString(w, applyColor(es, ir.ObjectType, SepColor, ",")); err != nil {
				return err
			}
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, "}")
}

func jsonArray(node *ir.Node, w io.Writer, es *EncState) error {
	n := len(node.Values)
	if n == 0 {
		return writeString(w, "[]")
	}
	if err := writeString(w, "["); err != nil {
		return err
	}
	es.depth++
	for i, v := range node.Values {
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := jsonValue(v, w, es); err != nil {
			return err
		}
		if i < n-1 {
			if err := writeString(w, applyColor(es, ir.ArrayType, SepColor, ",")); err != nil {
				return err
			}
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, "]")
}

func jsonNumber(node *ir.Node, w io.Writer, es *EncState) error {
	if node.Int64 != nil {
		v := strconv.FormatInt(*node.Int64, 10)
		return writeString(w, applyValueColor(es, ir.NumberType, v))
	}
	f := *node.Float64
	if isSpecialFloat(f) {
		return fmt.Errorf("%w: %v in %s", ErrEncoding, f, es.format)
	}
	return writeString(w, applyValueColor(es, ir.NumberType, formatFloat(f)))
}
