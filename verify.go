package scribe

import (
	"errors"
	"fmt"

	"github.com/scribe-format/scribe/encode"
	"github.com/scribe-format/scribe/format"
	"github.com/scribe-format/scribe/ir"
	"github.com/scribe-format/scribe/parse"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// ErrVerify is returned when rendered output does not re-parse to the same
// values as the input document.
var ErrVerify = errors.New("verification failed")

// Verify re-parses out as f and checks it for value equality with node.
// Comparison ignores object field order, since TOML rendering may hoist
// keyed values above subtables.  A mismatch carries a character diff of
// canonical renderings of the two trees.
func Verify(node *ir.Node, out []byte, f format.Format) error {
	back, err := parse.Parse(out, parse.ParseFormat(f))
	if err != nil {
		return fmt.Errorf("%w: output does not re-parse: %v", ErrVerify, err)
	}
	if ir.Compare(ir.Sorted(node), ir.Sorted(back)) == 0 {
		return nil
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(canonical(node), canonical(back), false)
	return fmt.Errorf("%w:\n%s", ErrVerify, dmp.DiffPrettyText(diffs))
}

// canonical renders a key-sorted copy of n as YAML, which can spell every
// value the model holds.
func canonical(n *ir.Node) string {
	return encode.MustString(ir.Sorted(n), encode.EncodeFormat(format.YAMLFormat))
}
