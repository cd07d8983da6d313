// Package ir provides the intermediate value model documents convert through.
//
// A Node is a recursive tagged union holding any value expressible by the
// supported notations: null, bool, number (int64 or float64), string,
// array, and object.  For ObjectType nodes, Fields[i] is the key for the
// value at Values[i], so there are always as many fields as values and key
// order is the insertion order of the source document.
//
// Numbers are placed under:
//   - Int64: if the source literal is an integer fitting 64 signed bits
//   - Float64: otherwise (fractional part, exponent, or integer overflow)
//
// A Node tree is finite and acyclic.  Parsers build one tree per document,
// emitters consume it, and nothing is shared across conversions.
//
// # Related Packages
//
//   - github.com/scribe-format/scribe/parse - Parses text into Node trees
//   - github.com/scribe-format/scribe/encode - Encodes Node trees to text
package ir
