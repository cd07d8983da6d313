// Package encode renders IR nodes as JSON, YAML, or TOML text.
//
// # Usage
//
//	// Encode to JSON (the default)
//	node := ir.FromMap(map[string]*ir.Node{
//	    "name": ir.FromString("alice"),
//	    "age":  ir.FromInt(30),
//	})
//	err := encode.Encode(node, w)
//
//	// Encode to YAML with options
//	err := encode.Encode(node, w,
//	    encode.EncodeFormat(format.YAMLFormat),
//	    encode.Indent(2))
//
// Emitters walk the node tree directly so that object field order is
// written exactly as it appears in the IR.
//
// # Related Packages
//
//   - github.com/scribe-format/scribe/ir - IR representation
//   - github.com/scribe-format/scribe/parse - Parse text to IR
package encode
