package value

import (
	"cmp"
	"fmt"
	"math"
	"strconv"
	"strings"
)

type numKind uint8

const (
	posInt numKind = iota
	negInt
	float
)

// Number is an integer or floating point YAML number.
//
// Integers are kept exactly: non-negative integers as uint64 and negative
// integers as int64, so the same integer built from a signed or an unsigned
// source is the same Number. Floats never equal integers.
type Number struct {
	kind numKind
	u    uint64
	i    int64
	f    float64
}

func NumberFromInt(i int64) Number {
	if i >= 0 {
		return Number{kind: posInt, u: uint64(i)}
	}
	return Number{kind: negInt, i: i}
}

func NumberFromUint(u uint64) Number {
	return Number{kind: posInt, u: u}
}

func NumberFromFloat(f float64) Number {
	return Number{kind: float, f: f}
}

func (n Number) IsInt64() bool {
	switch n.kind {
	case posInt:
		return n.u <= math.MaxInt64
	case negInt:
		return true
	}
	return false
}

func (n Number) IsUint64() bool {
	return n.kind == posInt
}

// IsFloat64 reports whether n is held as a float. Integers narrow to float64
// through AsFloat64 but are not floats.
func (n Number) IsFloat64() bool {
	return n.kind == float
}

func (n Number) AsInt64() (int64, bool) {
	switch n.kind {
	case posInt:
		if n.u <= math.MaxInt64 {
			return int64(n.u), true
		}
	case negInt:
		return n.i, true
	}
	return 0, false
}

func (n Number) AsUint64() (uint64, bool) {
	if n.kind == posInt {
		return n.u, true
	}
	return 0, false
}

func (n Number) AsFloat64() (float64, bool) {
	switch n.kind {
	case posInt:
		return float64(n.u), true
	case negInt:
		return float64(n.i), true
	default:
		return n.f, true
	}
}

func (n Number) IsNaN() bool {
	return n.kind == float && math.IsNaN(n.f)
}

func (n Number) IsInf() bool {
	return n.kind == float && math.IsInf(n.f, 0)
}

func (n Number) Equal(o Number) bool {
	if n.kind != o.kind {
		return false
	}
	switch n.kind {
	case posInt:
		return n.u == o.u
	case negInt:
		return n.i == o.i
	}
	if math.IsNaN(n.f) && math.IsNaN(o.f) {
		return true
	}
	return n.f == o.f
}

// Compare orders negative integers, then non-negative integers, then floats
// (NaN last among floats).
func (n Number) Compare(o Number) int {
	if n.kind != o.kind {
		return cmp.Compare(numRank(n.kind), numRank(o.kind))
	}
	switch n.kind {
	case posInt:
		return cmp.Compare(n.u, o.u)
	case negInt:
		return cmp.Compare(n.i, o.i)
	}
	nn, on := math.IsNaN(n.f), math.IsNaN(o.f)
	switch {
	case nn && on:
		return 0
	case nn:
		return 1
	case on:
		return -1
	}
	return cmp.Compare(n.f, o.f)
}

func numRank(k numKind) int {
	switch k {
	case negInt:
		return 0
	case posInt:
		return 1
	}
	return 2
}

// hashBits returns the bits hashed for n; equal numbers give equal bits.
func (n Number) hashBits() (numKind, uint64) {
	switch n.kind {
	case posInt:
		return posInt, n.u
	case negInt:
		return negInt, uint64(n.i)
	}
	switch {
	case math.IsNaN(n.f):
		return float, 0x7ff8000000000001
	case n.f == 0:
		return float, 0
	}
	return float, math.Float64bits(n.f)
}

func (n Number) String() string {
	switch n.kind {
	case posInt:
		return strconv.FormatUint(n.u, 10)
	case negInt:
		return strconv.FormatInt(n.i, 10)
	}
	switch {
	case math.IsNaN(n.f):
		return ".nan"
	case math.IsInf(n.f, 1):
		return ".inf"
	case math.IsInf(n.f, -1):
		return "-.inf"
	}
	s := strconv.FormatFloat(n.f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// ParseNumber parses the YAML 1.2 core schema spellings of integers and
// floats, plus 0b binary integers.
func ParseNumber(s string) (Number, error) {
	switch s {
	case ".nan", ".NaN", ".NAN":
		return NumberFromFloat(math.NaN()), nil
	case ".inf", ".Inf", ".INF", "+.inf", "+.Inf", "+.INF":
		return NumberFromFloat(math.Inf(1)), nil
	case "-.inf", "-.Inf", "-.INF":
		return NumberFromFloat(math.Inf(-1)), nil
	}
	if s == "" {
		return Number{}, fmt.Errorf("invalid number %q", s)
	}
	body := s
	neg := false
	switch body[0] {
	case '-':
		neg = true
		body = body[1:]
	case '+':
		body = body[1:]
	}
	if base, digits, ok := radixPrefix(body); ok {
		u, err := strconv.ParseUint(digits, base, 64)
		if err != nil {
			return Number{}, fmt.Errorf("invalid number %q: %w", s, err)
		}
		if !neg {
			return NumberFromUint(u), nil
		}
		if u > 1<<63 {
			return Number{}, fmt.Errorf("invalid number %q: out of range", s)
		}
		return NumberFromInt(int64(-u)), nil
	}
	if isDecimalInt(body) {
		if neg {
			i, err := strconv.ParseInt(s, 10, 64)
			if err == nil {
				return NumberFromInt(i), nil
			}
		} else {
			u, err := strconv.ParseUint(body, 10, 64)
			if err == nil {
				return NumberFromUint(u), nil
			}
		}
	}
	if !strings.ContainsAny(body, "0123456789") {
		return Number{}, fmt.Errorf("invalid number %q", s)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Number{}, fmt.Errorf("invalid number %q", s)
	}
	return NumberFromFloat(f), nil
}

func radixPrefix(s string) (int, string, bool) {
	if len(s) < 3 || s[0] != '0' {
		return 0, "", false
	}
	switch s[1] {
	case 'x', 'X':
		return 16, s[2:], true
	case 'o', 'O':
		return 8, s[2:], true
	case 'b', 'B':
		return 2, s[2:], true
	}
	return 0, "", false
}

func isDecimalInt(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
