package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/scott-cotton/cli"

	"github.com/scribe-format/scribe/encode"
	"github.com/scribe-format/scribe/format"
)

func TestWithSuffix(t *testing.T) {
	cases := []struct {
		path string
		f    format.Format
		want string
	}{
		{path: "doc.json", f: format.YAMLFormat, want: "doc.yaml"},
		{path: "doc.yaml", f: format.TOMLFormat, want: "doc.toml"},
		{path: "dir/doc.toml", f: format.JSONFormat, want: "dir/doc.json"},
		{path: "noext", f: format.JSONFormat, want: "noext.json"},
		{path: "dir.v2/noext", f: format.YAMLFormat, want: "dir.v2/noext.yaml"},
		{path: "a.b.c.json", f: format.TOMLFormat, want: "a.b.c.toml"},
	}
	for _, c := range cases {
		if got := withSuffix(c.path, c.f); got != c.want {
			t.Errorf("withSuffix(%q, %s) = %q, want %q", c.path, c.f, got, c.want)
		}
	}
}

func TestFileEncOptsColor(t *testing.T) {
	apply := func(cfg *MainConfig) *encode.EncState {
		es := &encode.EncState{}
		for _, opt := range cfg.fileEncOpts() {
			opt(es)
		}
		return es
	}
	if es := apply(&MainConfig{}); es.Color != nil {
		t.Errorf("colors enabled without -color")
	}
	if es := apply(&MainConfig{Color: true}); es.Color == nil {
		t.Errorf("-color should carry into file output")
	}
}

func TestToStdoutBadOutputSuffix(t *testing.T) {
	cfg := &MainConfig{Stdout: true}
	err := toStdout(cfg, nil, "in.json", "out.xml")
	if !errors.Is(err, cli.ErrUsage) || !errors.Is(err, format.ErrBadFormat) {
		t.Fatalf("err = %v, want ErrUsage wrapping ErrBadFormat", err)
	}
	if !strings.Contains(err.Error(), "out.xml") {
		t.Errorf("error should name the output path: %v", err)
	}
	if err := toStdout(cfg, nil, "in.json", ""); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("err = %v, want ErrUsage", err)
	}
}
