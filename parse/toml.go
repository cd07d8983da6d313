package parse

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/scribe-format/scribe/ir"
)

// parseTOML decodes d with BurntSushi/toml and rebuilds document order from
// MetaData.Keys, which lists every defined key (table headers included) in
// the order it appears.  The decoded map alone would lose that order.
func parseTOML(d []byte) (*ir.Node, error) {
	var v map[string]any
	meta, err := toml.Decode(string(d), &v)
	if err != nil {
		var pe toml.ParseError
		if errors.As(err, &pe) {
			return nil, fmt.Errorf("%w: toml: %s at line %d",
				ir.ErrParse, pe.Message, pe.Position.Line)
		}
		return nil, fmt.Errorf("%w: toml: %v", ir.ErrParse, err)
	}
	ord := newTOMLOrder(meta)
	return tomlObject(v, ord.root)
}

// tomlTable records the document order of a single table's direct children.
type tomlTable struct {
	keys     []string
	children map[string]*tomlEntry
}

// tomlEntry holds one ordered table per [[...]] element; plain tables and
// leaf values use a single element.
type tomlEntry struct {
	tables []*tomlTable
}

type tomlOrder struct {
	root *tomlTable
}

func newTable() *tomlTable {
	return &tomlTable{children: map[string]*tomlEntry{}}
}

func (t *tomlTable) entry(name string) *tomlEntry {
	e := t.children[name]
	if e == nil {
		e = &tomlEntry{}
		t.children[name] = e
		t.keys = append(t.keys, name)
	}
	return e
}

// table returns the order table for the i'th element under name, or nil
// when no order was recorded (inline values nested in arrays).
func (t *tomlTable) table(name string, i int) *tomlTable {
	if t == nil {
		return nil
	}
	e := t.children[name]
	if e == nil || i >= len(e.tables) {
		return nil
	}
	return e.tables[i]
}

func newTOMLOrder(meta toml.MetaData) *tomlOrder {
	o := &tomlOrder{root: newTable()}
	for _, key := range meta.Keys() {
		o.add(key, meta)
	}
	return o
}

// add walks one key path from the root, recording first-seen child order and
// opening a fresh table for each array-of-tables header so later keys attach
// to the element currently being defined.
func (o *tomlOrder) add(key toml.Key, meta toml.MetaData) {
	t := o.root
	for i, part := range key {
		e := t.entry(part)
		if i == len(key)-1 && meta.Type(key...) == "ArrayOfTables" {
			e.tables = append(e.tables, newTable())
			return
		}
		if len(e.tables) == 0 {
			e.tables = append(e.tables, newTable())
		}
		t = e.tables[len(e.tables)-1]
	}
}

func tomlObject(x map[string]any, tbl *tomlTable) (*ir.Node, error) {
	ordered := make([]string, 0, len(x))
	seen := map[string]bool{}
	if tbl != nil {
		for _, key := range tbl.keys {
			if _, ok := x[key]; !ok || seen[key] {
				continue
			}
			seen[key] = true
			ordered = append(ordered, key)
		}
	}
	// inline tables nested in arrays carry no order metadata; their keys
	// fall back to lexical order
	for _, key := range slices.Sorted(maps.Keys(x)) {
		if !seen[key] {
			ordered = append(ordered, key)
		}
	}

	kvs := make([]ir.KeyVal, 0, len(ordered))
	for _, key := range ordered {
		node, err := tomlValue(x[key], tbl, key)
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: ir.FromString(key), Val: node})
	}
	return ir.FromKeyVals(kvs), nil
}

func tomlValue(v any, tbl *tomlTable, key string) (*ir.Node, error) {
	switch x := v.(type) {
	case map[string]any:
		return tomlObject(x, tbl.table(key, 0))
	case []map[string]any:
		// array of tables
		elems := make([]*ir.Node, 0, len(x))
		for i, m := range x {
			sub, err := tomlObject(m, tbl.table(key, i))
			if err != nil {
				return nil, err
			}
			elems = append(elems, sub)
		}
		return ir.FromSlice(elems), nil
	case []any:
		elems := make([]*ir.Node, 0, len(x))
		for _, e := range x {
			sub, err := tomlValue(e, nil, "")
			if err != nil {
				return nil, err
			}
			elems = append(elems, sub)
		}
		return ir.FromSlice(elems), nil
	case string:
		return ir.FromString(x), nil
	case bool:
		return ir.FromBool(x), nil
	case int64:
		return ir.FromInt(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case time.Time:
		return nil, fmt.Errorf("%w: toml: datetime values have no representation",
			ir.ErrUnsupportedFeature)
	default:
		return nil, fmt.Errorf("%w: toml: cannot represent %T",
			ir.ErrUnsupportedFeature, v)
	}
}
