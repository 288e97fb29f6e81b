package encode

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/signadot/yval/value"
)

// words a YAML reader resolves to null or a boolean, including the YAML 1.1
// spellings.
var reserved = map[string]bool{
	"~": true, "null": true, "Null": true, "NULL": true,
	"true": true, "True": true, "TRUE": true,
	"false": true, "False": true, "FALSE": true,
	"yes": true, "Yes": true, "YES": true, "no": true, "No": true, "NO": true,
	"on": true, "On": true, "ON": true, "off": true, "Off": true, "OFF": true,
	"y": true, "Y": true, "n": true, "N": true,
}

func quoteString(s string, inFlow bool) string {
	if needsQuote(s, inFlow) {
		return strconv.Quote(s)
	}
	return s
}

// needsQuote reports whether s would not read back as the same plain string.
func needsQuote(s string, inFlow bool) bool {
	if s == "" || reserved[s] {
		return true
	}
	if looksNumeric(s) {
		return true
	}
	switch s[0] {
	case '-', '?', ':', ',', '[', ']', '{', '}', '#', '&', '*', '!', '|', '>', '\'', '"', '%', '@', '`', ' ', '\t', '=', '<':
		if s != "<<" {
			return true
		}
	}
	if strings.HasPrefix(s, "---") || strings.HasPrefix(s, "...") {
		return true
	}
	switch s[len(s)-1] {
	case ' ', '\t', ':':
		return true
	}
	if strings.Contains(s, ": ") || strings.Contains(s, " #") {
		return true
	}
	if inFlow && strings.ContainsAny(s, ",[]{}") {
		return true
	}
	if !utf8.ValidString(s) {
		return true
	}
	for _, r := range s {
		if r != ' ' && !unicode.IsPrint(r) {
			return true
		}
	}
	return false
}

// looksNumeric catches numbers in any spelling a YAML reader may accept,
// such as 1_000 or 0x1F, not only those ParseNumber reads.
func looksNumeric(s string) bool {
	if _, err := value.ParseNumber(s); err == nil {
		return true
	}
	switch s[0] {
	case '+', '-', '.':
	default:
		if s[0] < '0' || s[0] > '9' {
			return false
		}
	}
	return strings.Trim(s, "0123456789+-._eEoOxXbBabcdefABCDEF:") == ""
}
