package encode

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/scribe-format/scribe/ir"
)

// encodeTOML writes node as a TOML document.  Only objects have a TOML
// document form.  Within each table, keyed values come before subtables so
// nothing is swallowed by a following header.
func encodeTOML(node *ir.Node, w io.Writer, es *EncState) error {
	if node.Type != ir.ObjectType {
		return fmt.Errorf("%w: %s root in %s", ErrEncoding, node.Type, es.format)
	}
	ts := &tomlState{w: w, es: es}
	return ts.table(node, nil)
}

type tomlState struct {
	w  io.Writer
	es *EncState
	// wrote marks that output has begun, so later headers get a blank
	// separator line.
	wrote bool
}

func (ts *tomlState) line(s string) error {
	ts.wrote = true
	return writeString(ts.w, s+"\n")
}

func (ts *tomlState) header(path []string, array bool) error {
	parts := make([]string, len(path))
	for i, p := range path {
		parts[i] = tomlKey(p)
	}
	h := strings.Join(parts, ".")
	if array {
		h = "[[" + h + "]]"
	} else {
		h = "[" + h + "]"
	}
	h = applyColor(ts.es, ir.ObjectType, SepColor, h)
	if ts.wrote {
		if err := writeString(ts.w, "\n"); err != nil {
			return err
		}
	}
	return ts.line(h)
}

func (ts *tomlState) table(node *ir.Node, path []string) error {
	var tables []int
	for i, v := range node.Values {
		if tomlTableClass(v) {
			tables = append(tables, i)
			continue
		}
		if err := ts.entry(node.Fields[i].String, v); err != nil {
			return err
		}
	}
	for _, i := range tables {
		sub := append(path[:len(path):len(path)], node.Fields[i].String)
		v := node.Values[i]
		if v.Type == ir.ObjectType {
			if err := ts.header(sub, false); err != nil {
				return err
			}
			if err := ts.table(v, sub); err != nil {
				return err
			}
			continue
		}
		for _, elem := range v.Values {
			if err := ts.header(sub, true); err != nil {
				return err
			}
			if err := ts.table(elem, sub); err != nil {
				return err
			}
		}
	}
	return nil
}

func (ts *tomlState) entry(key string, v *ir.Node) error {
	k := applyColor(ts.es, ir.ObjectType, FieldColor, tomlKey(key))
	eq := applyColor(ts.es, ir.ObjectType, SepColor, "=")
	var sb strings.Builder
	if err := tomlInline(v, &sb, ts.es); err != nil {
		return err
	}
	return ts.line(k + " " + eq + " " + sb.String())
}

// tomlTableClass reports whether v is emitted under a header rather than
// inline: a non-empty object becomes a [table], a non-empty all-object array
// becomes an [[array of tables]].
func tomlTableClass(v *ir.Node) bool {
	switch v.Type {
	case ir.ObjectType:
		return len(v.Fields) > 0
	case ir.ArrayType:
		if len(v.Values) == 0 {
			return false
		}
		for _, e := range v.Values {
			if e.Type != ir.ObjectType {
				return false
			}
		}
		return true
	}
	return false
}

func tomlKey(k string) string {
	if bareKey(k) {
		return k
	}
	return Quote(k)
}

func tomlInline(v *ir.Node, w io.Writer, es *EncState) error {
	switch v.Type {
	case ir.NullType:
		return fmt.Errorf("%w: null in %s", ErrEncoding, es.format)
	case ir.BoolType:
		return writeString(w, applyValueColor(es, ir.BoolType, strconv.FormatBool(v.Bool)))
	case ir.NumberType:
		return writeString(w, applyValueColor(es, ir.NumberType, tomlNumber(v)))
	case ir.StringType:
		return writeString(w, applyValueColor(es, ir.StringType, Quote(v.String)))
	case ir.ArrayType:
		if err := writeString(w, "["); err != nil {
			return err
		}
		for i, e := range v.Values {
			if i > 0 {
				if err := writeString(w, ", "); err != nil {
					return err
				}
			}
			if err := tomlInline(e, w, es); err != nil {
				return err
			}
		}
		return writeString(w, "]")
	case ir.ObjectType:
		if len(v.Fields) == 0 {
			return writeString(w, "{}")
		}
		if err := writeString(w, "{ "); err != nil {
			return err
		}
		for i, field := range v.Fields {
			if i > 0 {
				if err := writeString(w, ", "); err != nil {
					return err
				}
			}
			if err := writeString(w, tomlKey(field.String)+" = "); err != nil {
				return err
			}
			if err := tomlInline(v.Values[i], w, es); err != nil {
				return err
			}
		}
		return writeString(w, " }")
	default:
		panic("type")
	}
}

func tomlNumber(v *ir.Node) string {
	if v.Int64 != nil {
		return strconv.FormatInt(*v.Int64, 10)
	}
	f := *v.Float64
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return formatFloat(f)
}
