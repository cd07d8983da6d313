package scribe

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/scribe-format/scribe/encode"
	"github.com/scribe-format/scribe/format"
	"github.com/scribe-format/scribe/ir"
	"github.com/scribe-format/scribe/parse"
)

const seedJSON = `{
  "title": "demo",
  "count": 3,
  "ratio": 0.5,
  "exact": 2.0,
  "on": true,
  "tags": ["a", "b"],
  "server": {
    "host": "localhost",
    "port": 8080,
    "aliases": []
  },
  "points": [
    {"x": 1, "y": 2},
    {"x": 3, "y": 4}
  ]
}`

func TestConvertJSONToYAML(t *testing.T) {
	out, err := Convert([]byte(`{"a": 1, "b": [true, "yes"]}`),
		format.JSONFormat, format.YAMLFormat)
	if err != nil {
		t.Fatal(err)
	}
	want := "a: 1\nb:\n  - true\n  - \"yes\"\n"
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Errorf("yaml output (-want +got):\n%s", diff)
	}
}

func TestConvertYAMLToJSON(t *testing.T) {
	in := "a: 1\nb:\n  - true\n  - \"yes\"\n"
	out, err := Convert([]byte(in), format.YAMLFormat, format.JSONFormat)
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"a\": 1,\n  \"b\": [\n    true,\n    \"yes\"\n  ]\n}\n"
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Errorf("json output (-want +got):\n%s", diff)
	}
}

// Every format pair round-trips the seed document back to the same values,
// with integers staying integers and floats staying floats.
func TestRoundTrips(t *testing.T) {
	seedNode, err := parse.Parse([]byte(seedJSON), parse.ParseJSON())
	if err != nil {
		t.Fatal(err)
	}
	for _, from := range format.AllFormats() {
		in, err := Convert([]byte(seedJSON), format.JSONFormat, from)
		if from == format.JSONFormat {
			in = []byte(seedJSON)
			err = nil
		}
		if err != nil {
			t.Fatalf("seed to %s: %v", from, err)
		}
		for _, to := range format.AllFormats() {
			if to == from {
				continue
			}
			out, err := Convert(in, from, to)
			if err != nil {
				t.Errorf("%s to %s: %v", from, to, err)
				continue
			}
			back, err := parse.Parse(out, parse.ParseFormat(to))
			if err != nil {
				t.Errorf("%s to %s: output does not re-parse: %v", from, to, err)
				continue
			}
			if ir.Compare(ir.Sorted(seedNode), ir.Sorted(back)) != 0 {
				t.Errorf("%s to %s: values changed:\n%s", from, to,
					encode.MustString(back, encode.EncodeFormat(format.YAMLFormat)))
			}
		}
	}
}

func TestConvertKeepsKeyOrder(t *testing.T) {
	out, err := Convert([]byte(`{"z": 1, "a": 2, "m": 3}`),
		format.JSONFormat, format.YAMLFormat)
	if err != nil {
		t.Fatal(err)
	}
	want := "z: 1\na: 2\nm: 3\n"
	if string(out) != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestConvertArrayRootToTOMLFails(t *testing.T) {
	_, err := Convert([]byte(`[1, 2, 3]`), format.JSONFormat, format.TOMLFormat)
	if !errors.Is(err, encode.ErrEncoding) {
		t.Errorf("err = %v, want ErrEncoding", err)
	}
	// same document is fine in yaml
	out, err := Convert([]byte(`[1, 2, 3]`), format.JSONFormat, format.YAMLFormat)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "- 1\n- 2\n- 3\n" {
		t.Errorf("got %q", out)
	}
}

func TestConvertParseErrors(t *testing.T) {
	_, err := Convert([]byte(`{"a":`), format.JSONFormat, format.YAMLFormat)
	if !errors.Is(err, ir.ErrParse) {
		t.Errorf("err = %v, want ErrParse", err)
	}
	_, err = Convert([]byte("---\na: 1\n---\nb: 2\n"), format.YAMLFormat, format.JSONFormat)
	if !errors.Is(err, ir.ErrUnsupportedFeature) {
		t.Errorf("err = %v, want ErrUnsupportedFeature", err)
	}
}

func TestConvertFile(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.json")
	outPath := filepath.Join(dir, "out.yaml")
	if err := os.WriteFile(inPath, []byte(`{"a": 1}`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := ConvertFile(inPath, outPath, WithVerify(true)); err != nil {
		t.Fatal(err)
	}
	out, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "a: 1\n" {
		t.Errorf("got %q", out)
	}
}

func TestConvertFileFormatOverrides(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.txt")
	outPath := filepath.Join(dir, "out.txt")
	if err := os.WriteFile(inPath, []byte("a: 1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	err := ConvertFile(inPath, outPath,
		InputFormat(format.YAMLFormat),
		OutputFormat(format.TOMLFormat))
	if err != nil {
		t.Fatal(err)
	}
	out, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "a = 1\n" {
		t.Errorf("got %q", out)
	}
}

func TestConvertFileSameFormat(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.json")
	if err := os.WriteFile(inPath, []byte(`{}`), 0644); err != nil {
		t.Fatal(err)
	}
	err := ConvertFile(inPath, filepath.Join(dir, "out.json"))
	if !errors.Is(err, ErrSameFormat) {
		t.Errorf("err = %v, want ErrSameFormat", err)
	}
}

func TestConvertFileBadSuffixWritesNothing(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.json")
	outPath := filepath.Join(dir, "out.xml")
	if err := os.WriteFile(inPath, []byte(`{"a": 1}`), 0644); err != nil {
		t.Fatal(err)
	}
	err := ConvertFile(inPath, outPath)
	if !errors.Is(err, format.ErrBadFormat) {
		t.Errorf("err = %v, want ErrBadFormat", err)
	}
	if _, err := os.Stat(outPath); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("output file should not exist, stat err = %v", err)
	}
}

func TestConvertFileEncodingErrorWritesNothing(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.json")
	outPath := filepath.Join(dir, "out.toml")
	if err := os.WriteFile(inPath, []byte(`[1, 2]`), 0644); err != nil {
		t.Fatal(err)
	}
	err := ConvertFile(inPath, outPath)
	if !errors.Is(err, encode.ErrEncoding) {
		t.Errorf("err = %v, want ErrEncoding", err)
	}
	if _, err := os.Stat(outPath); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("output file should not exist, stat err = %v", err)
	}
}

func TestVerify(t *testing.T) {
	node, err := parse.Parse([]byte(seedJSON), parse.ParseJSON())
	if err != nil {
		t.Fatal(err)
	}
	out, err := Convert([]byte(seedJSON), format.JSONFormat, format.TOMLFormat)
	if err != nil {
		t.Fatal(err)
	}
	if err := Verify(node, out, format.TOMLFormat); err != nil {
		t.Errorf("Verify: %v", err)
	}
	if err := Verify(node, []byte(`other = 1`), format.TOMLFormat); !errors.Is(err, ErrVerify) {
		t.Errorf("err = %v, want ErrVerify", err)
	}
	if err := Verify(node, []byte(`= broken`), format.TOMLFormat); !errors.Is(err, ErrVerify) {
		t.Errorf("err = %v, want ErrVerify", err)
	}
}
