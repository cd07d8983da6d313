package encode

import (
	"encoding/hex"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Quote renders v as a double-quoted string with JSON-style escapes.  The
// result is also a valid YAML double-quoted scalar and TOML basic string.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	ucs := []byte{0, 0}
	cps := []byte{0, 0, 0, 0}
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) {
				ucs[0] = byte(r >> 8)
				ucs[1] = byte(r)
				cps = hex.AppendEncode(cps[:0], ucs)
				d = append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}

// NeedsYAMLQuote reports whether the string v must be quoted so that it
// re-parses as a string.  A plain scalar spelled like a bool, number, or
// null would come back with the wrong type; indicator characters and
// whitespace edges would change the document shape.
func NeedsYAMLQuote(v string) bool {
	if v == "" {
		return true
	}
	if strings.TrimSpace(v) != v {
		return true
	}
	if looksNumeric(v) {
		return true
	}
	switch strings.ToLower(v) {
	case "true", "false", "null", "~", "yes", "no", "on", "off",
		".inf", "-.inf", "+.inf", ".nan":
		return true
	}
	if strings.ContainsAny(v, "\n\r\t\"\\`") {
		return true
	}
	if strings.Contains(v, ": ") || strings.HasSuffix(v, ":") || strings.Contains(v, " #") {
		return true
	}
	switch v[0] {
	case '-', '?', '*', '&', '!', '%', '@', ':', '#', ',', '{', '}', '[', ']', '|', '>', '\'':
		return true
	}
	return false
}

func looksNumeric(v string) bool {
	if _, err := strconv.ParseInt(v, 10, 64); err == nil {
		return true
	}
	if _, err := strconv.ParseFloat(v, 64); err == nil {
		return true
	}
	rest := strings.TrimLeft(v, "+-")
	for _, p := range []string{"0x", "0X", "0o", "0O", "0b", "0B"} {
		if strings.HasPrefix(rest, p) {
			return true
		}
	}
	return false
}

// bareKey reports whether v may appear unquoted as a TOML key.
func bareKey(v string) bool {
	if v == "" {
		return false
	}
	for _, r := range v {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_', r == '-':
		default:
			return false
		}
	}
	return true
}
