package parse

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/scribe-format/scribe/ir"
)

// parseJSON decodes d through encoding/json's token stream rather than into
// a map so that object key order survives.  UseNumber keeps numeric literals
// textual until numberNode decides between Int64 and Float64.
func parseJSON(d []byte) (*ir.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: json: empty document", ir.ErrParse)
		}
		return nil, jsonErr(err, dec)
	}
	node, err := jsonValue(dec, tok)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, jsonErr(err, dec)
		}
		return nil, fmt.Errorf("%w: json: trailing data at offset %d",
			ir.ErrParse, dec.InputOffset())
	}
	return node, nil
}

func jsonValue(dec *json.Decoder, tok json.Token) (*ir.Node, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return jsonObject(dec)
		case '[':
			return jsonArray(dec)
		default:
			return nil, fmt.Errorf("%w: json: unexpected %q at offset %d",
				ir.ErrParse, t.String(), dec.InputOffset())
		}
	case string:
		return ir.FromString(t), nil
	case bool:
		return ir.FromBool(t), nil
	case json.Number:
		return numberNode(string(t)), nil
	case nil:
		return ir.Null(), nil
	default:
		return nil, fmt.Errorf("%w: json: unexpected token %v", ir.ErrParse, tok)
	}
}

func jsonObject(dec *json.Decoder) (*ir.Node, error) {
	var kvs []ir.KeyVal
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, jsonErr(err, dec)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: json: object key %v at offset %d",
				ir.ErrParse, keyTok, dec.InputOffset())
		}
		valTok, err := dec.Token()
		if err != nil {
			return nil, jsonErr(err, dec)
		}
		val, err := jsonValue(dec, valTok)
		if err != nil {
			return nil, err
		}
		kvs = ir.Upsert(kvs, key, val)
	}
	// closing brace
	if _, err := dec.Token(); err != nil {
		return nil, jsonErr(err, dec)
	}
	return ir.FromKeyVals(kvs), nil
}

func jsonArray(dec *json.Decoder) (*ir.Node, error) {
	var elems []*ir.Node
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, jsonErr(err, dec)
		}
		v, err := jsonValue(dec, tok)
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
	}
	if _, err := dec.Token(); err != nil {
		return nil, jsonErr(err, dec)
	}
	return ir.FromSlice(elems), nil
}

// numberNode applies the literal-syntax rule: Int64 when the literal parses
// as a 64-bit signed integer, Float64 when it has a fractional part, an
// exponent, or overflows.
func numberNode(lit string) *ir.Node {
	if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
		return ir.FromInt(i)
	}
	f, _ := strconv.ParseFloat(lit, 64)
	return ir.FromFloat(f)
}

func jsonErr(err error, dec *json.Decoder) error {
	var serr *json.SyntaxError
	if errors.As(err, &serr) {
		return fmt.Errorf("%w: json: %s at offset %d", ir.ErrParse, serr.Error(), serr.Offset)
	}
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: json: unexpected end of input at offset %d",
			ir.ErrParse, dec.InputOffset())
	}
	return fmt.Errorf("%w: json: %v", ir.ErrParse, err)
}
