package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse   bool
	Encode  bool
	Convert bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("SCRIBE_DEBUG_PARSE")
	d.Encode = boolEnv("SCRIBE_DEBUG_ENCODE")
	d.Convert = boolEnv("SCRIBE_DEBUG_CONVERT")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Encode() bool {
	return d.Encode
}
func Convert() bool {
	return d.Convert
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
