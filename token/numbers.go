package token

import (
	"errors"
	"math"
	"math/big"
	"strconv"
	"strings"
)

type AtomKind int

const (
	AtomString AtomKind = iota
	AtomNull
	AtomBool
	AtomInteger
	AtomFloat
)

func (k AtomKind) String() string {
	switch k {
	case AtomNull:
		return "null"
	case AtomBool:
		return "bool"
	case AtomInteger:
		return "integer"
	case AtomFloat:
		return "float"
	default:
		return "string"
	}
}

// Atom is the classification of a bare token. Only the field matching Kind
// is meaningful.
type Atom struct {
	Kind  AtomKind
	Bool  bool
	Int   *big.Int
	Float float64
}

var (
	MaxInt128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	MinInt128 = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
)

// InInt128 reports whether i fits a 128-bit signed integer.
func InInt128(i *big.Int) bool {
	return i.Cmp(MinInt128) >= 0 && i.Cmp(MaxInt128) <= 0
}

// ClassifyAtom decides what the bare token s denotes. The rules apply in
// order: N is null, T and F are booleans, a decimal integer in the 128-bit
// signed range is an integer, a float literal is a float, anything else is
// a string.
func ClassifyAtom(s string) Atom {
	switch s {
	case "N":
		return Atom{Kind: AtomNull}
	case "T":
		return Atom{Kind: AtomBool, Bool: true}
	case "F":
		return Atom{Kind: AtomBool, Bool: false}
	}
	if i, ok := parseInteger(s); ok {
		return Atom{Kind: AtomInteger, Int: i}
	}
	if f, ok := parseFloat(s); ok {
		return Atom{Kind: AtomFloat, Float: f}
	}
	return Atom{Kind: AtomString}
}

func parseInteger(s string) (*big.Int, bool) {
	digits := s
	if len(digits) > 0 && (digits[0] == '+' || digits[0] == '-') {
		digits = digits[1:]
	}
	if digits == "" || asciiDigits(digits) != len(digits) {
		return nil, false
	}
	i, ok := new(big.Int).SetString(s, 10)
	if !ok || !InInt128(i) {
		return nil, false
	}
	return i, true
}

func parseFloat(s string) (float64, bool) {
	body := s
	sign := 1
	if len(body) > 0 && (body[0] == '+' || body[0] == '-') {
		if body[0] == '-' {
			sign = -1
		}
		body = body[1:]
	}
	switch strings.ToLower(body) {
	case "inf", "infinity":
		return math.Inf(sign), true
	case "nan":
		return math.NaN(), true
	}
	if !decimalFloat(body) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// out of range literals saturate to ±Inf or ±0
		if errors.Is(err, strconv.ErrRange) {
			return f, true
		}
		return 0, false
	}
	return f, true
}

// decimalFloat reports whether d is digits with an optional fraction and
// exponent. At least one mantissa digit is required, on either side of the
// point.
func decimalFloat(d string) bool {
	intDigits := asciiDigits(d)
	rest := d[intDigits:]
	fracDigits := 0
	if len(rest) > 0 && rest[0] == '.' {
		fracDigits = asciiDigits(rest[1:])
		rest = rest[1+fracDigits:]
	}
	if intDigits+fracDigits == 0 {
		return false
	}
	if len(rest) == 0 {
		return true
	}
	return exp(rest) == len(rest)
}

func asciiDigits(d string) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	default:
		return false
	}
}

func exp(d string) int {
	if len(d) < 2 {
		return 0
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1
	switch d[1] {
	case '+', '-':
		i++
	default:
	}
	if i == len(d) {
		return 0
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0
	}
	return n + i
}
