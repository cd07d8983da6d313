package parse

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
	"github.com/goccy/go-yaml/token"

	"github.com/scribe-format/scribe/ir"
)

// parseYAML accepts a single-document YAML stream in block or flow style.
// Anchors are resolved by expansion since the value model has no alias
// concept; merge keys are expanded with already-present keys winning.
func parseYAML(d []byte) (*ir.Node, error) {
	f, err := parser.ParseBytes(d, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: yaml: %v", ir.ErrParse, err)
	}
	if len(f.Docs) > 1 {
		return nil, fmt.Errorf("%w: yaml: multi-document stream (%d documents)",
			ir.ErrUnsupportedFeature, len(f.Docs))
	}
	if len(f.Docs) == 0 || f.Docs[0].Body == nil {
		return ir.Null(), nil
	}
	st := &yamlState{anchors: map[string]*ir.Node{}}
	return st.node(f.Docs[0].Body)
}

type yamlState struct {
	anchors map[string]*ir.Node
}

func (st *yamlState) node(n ast.Node) (*ir.Node, error) {
	switch x := n.(type) {
	case *ast.NullNode:
		return ir.Null(), nil
	case *ast.BoolNode:
		return ir.FromBool(x.Value), nil
	case *ast.IntegerNode:
		return yamlInteger(x)
	case *ast.FloatNode:
		return ir.FromFloat(x.Value), nil
	case *ast.InfinityNode:
		return ir.FromFloat(x.Value), nil
	case *ast.NanNode:
		return ir.FromFloat(math.NaN()), nil
	case *ast.StringNode:
		return yamlString(x), nil
	case *ast.LiteralNode:
		return ir.FromString(x.Value.Value), nil
	case *ast.MappingNode:
		return st.mapping(x.Values)
	case *ast.MappingValueNode:
		return st.mapping([]*ast.MappingValueNode{x})
	case *ast.SequenceNode:
		return st.sequence(x)
	case *ast.AnchorNode:
		v, err := st.node(x.Value)
		if err != nil {
			return nil, err
		}
		st.anchors[x.Name.GetToken().Value] = v
		return v, nil
	case *ast.AliasNode:
		name := x.Value.GetToken().Value
		v := st.anchors[name]
		if v == nil {
			return nil, fmt.Errorf("%w: yaml: undefined alias %q at %s",
				ir.ErrParse, name, yamlPos(n))
		}
		return v.Clone(), nil
	case *ast.TagNode:
		return st.tagged(x)
	case *ast.MappingKeyNode:
		return st.node(x.Value)
	default:
		return nil, fmt.Errorf("%w: yaml: %T node at %s",
			ir.ErrUnsupportedFeature, n, yamlPos(n))
	}
}

// yamlString covers the plain-scalar gap in goccy's implicit typing: an
// exponent-form literal without a dot (2e4) arrives as a string node even
// though it spells a number.  Quoted scalars always stay strings.
func yamlString(x *ast.StringNode) *ir.Node {
	tok := x.GetToken()
	if tok != nil {
		switch tok.Type {
		case token.SingleQuoteType, token.DoubleQuoteType:
			return ir.FromString(x.Value)
		}
	}
	if yamlExponentLiteral(x.Value) {
		return numberNode(x.Value)
	}
	return ir.FromString(x.Value)
}

// yamlExponentLiteral reports whether v is a numeric literal in exponent
// form.  The character filter keeps ParseFloat's inf/nan spellings out.
func yamlExponentLiteral(v string) bool {
	if !strings.ContainsAny(v, "eE") {
		return false
	}
	for _, r := range v {
		switch {
		case r >= '0' && r <= '9':
		case r == 'e', r == 'E', r == '+', r == '-', r == '.':
		default:
			return false
		}
	}
	_, err := strconv.ParseFloat(v, 64)
	return err == nil
}

func yamlInteger(x *ast.IntegerNode) (*ir.Node, error) {
	switch v := x.Value.(type) {
	case int64:
		return ir.FromInt(v), nil
	case uint64:
		if v <= math.MaxInt64 {
			return ir.FromInt(int64(v)), nil
		}
		return ir.FromFloat(float64(v)), nil
	case int:
		return ir.FromInt(int64(v)), nil
	default:
		return numberNode(x.GetToken().Value), nil
	}
}

func (st *yamlState) sequence(x *ast.SequenceNode) (*ir.Node, error) {
	elems := make([]*ir.Node, 0, len(x.Values))
	for _, e := range x.Values {
		v, err := st.node(e)
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
	}
	return ir.FromSlice(elems), nil
}

func (st *yamlState) mapping(values []*ast.MappingValueNode) (*ir.Node, error) {
	var kvs []ir.KeyVal
	var merges []*ir.Node
	for _, mv := range values {
		if _, ok := mv.Key.(*ast.MergeKeyNode); ok {
			src, err := st.node(mv.Value)
			if err != nil {
				return nil, err
			}
			merges = append(merges, src)
			continue
		}
		key, err := st.keyString(mv.Key)
		if err != nil {
			return nil, err
		}
		val, err := st.node(mv.Value)
		if err != nil {
			return nil, err
		}
		kvs = ir.Upsert(kvs, key, val)
	}
	// explicit keys win over merged ones regardless of position
	for _, m := range merges {
		switch m.Type {
		case ir.ObjectType:
			kvs = mergeInto(kvs, m)
		case ir.ArrayType:
			for _, e := range m.Values {
				if e.Type != ir.ObjectType {
					return nil, fmt.Errorf("%w: yaml: merge value must be a mapping, have %s",
						ir.ErrParse, e.Type)
				}
				kvs = mergeInto(kvs, e)
			}
		default:
			return nil, fmt.Errorf("%w: yaml: merge value must be a mapping, have %s",
				ir.ErrParse, m.Type)
		}
	}
	return ir.FromKeyVals(kvs), nil
}

func mergeInto(kvs []ir.KeyVal, obj *ir.Node) []ir.KeyVal {
	for i, f := range obj.Fields {
		if hasKey(kvs, f.String) {
			continue
		}
		kvs = append(kvs, ir.KeyVal{Key: ir.FromString(f.String), Val: obj.Values[i].Clone()})
	}
	return kvs
}

func hasKey(kvs []ir.KeyVal, key string) bool {
	for i := range kvs {
		if kvs[i].Key.String == key {
			return true
		}
	}
	return false
}

// keyString renders a mapping key as a string: the value model admits only
// string keys, so scalar keys of other kinds keep their literal spelling.
func (st *yamlState) keyString(n ast.Node) (string, error) {
	key, err := st.node(n)
	if err != nil {
		return "", err
	}
	switch key.Type {
	case ir.StringType:
		return key.String, nil
	case ir.BoolType:
		return strconv.FormatBool(key.Bool), nil
	case ir.NullType:
		return "null", nil
	case ir.NumberType:
		if key.Int64 != nil {
			return strconv.FormatInt(*key.Int64, 10), nil
		}
		return strconv.FormatFloat(*key.Float64, 'g', -1, 64), nil
	default:
		return "", fmt.Errorf("%w: yaml: %s mapping key at %s",
			ir.ErrUnsupportedFeature, key.Type, yamlPos(n))
	}
}

// tagged resolves the standard coercion tags; unknown application tags are
// dropped and their value converted as-is.
func (st *yamlState) tagged(x *ast.TagNode) (*ir.Node, error) {
	v, err := st.node(x.Value)
	if err != nil {
		return nil, err
	}
	switch x.Start.Value {
	case "!!str":
		if v.Type != ir.StringType && v.Type.IsLeaf() {
			return ir.FromString(x.Value.GetToken().Value), nil
		}
	}
	return v, nil
}

func yamlPos(n ast.Node) string {
	tok := n.GetToken()
	if tok == nil || tok.Position == nil {
		return "?"
	}
	return fmt.Sprintf("line %d, column %d", tok.Position.Line, tok.Position.Column)
}
