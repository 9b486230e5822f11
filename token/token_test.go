package token

import (
	"errors"
	"math"
	"math/big"
	"testing"
)

func TestClassifyAtom(t *testing.T) {
	tests := []struct {
		in   string
		kind AtomKind
	}{
		{"N", AtomNull},
		{"T", AtomBool},
		{"F", AtomBool},
		{"n", AtomString},
		{"true", AtomString},
		{"1", AtomInteger},
		{"-1", AtomInteger},
		{"+1", AtomInteger},
		{"007", AtomInteger},
		{"170141183460469231731687303715884105727", AtomInteger},
		{"-170141183460469231731687303715884105728", AtomInteger},
		{"170141183460469231731687303715884105728", AtomFloat},
		{"1.0", AtomFloat},
		{"1.", AtomFloat},
		{".5", AtomFloat},
		{"-.5e3", AtomFloat},
		{"1e5", AtomFloat},
		{"1E-5", AtomFloat},
		{"1e400", AtomFloat},
		{"inf", AtomFloat},
		{"-Infinity", AtomFloat},
		{"NaN", AtomFloat},
		{"+nan", AtomFloat},
		{".", AtomString},
		{"-", AtomString},
		{"+", AtomString},
		{"1e", AtomString},
		{"e5", AtomString},
		{"0x10", AtomString},
		{"0x1p4", AtomString},
		{"1_000", AtomString},
		{"1.2.3", AtomString},
		{"abc", AtomString},
		{"NN", AtomString},
	}
	for _, tt := range tests {
		got := ClassifyAtom(tt.in)
		if got.Kind != tt.kind {
			t.Errorf("ClassifyAtom(%q) = %s, want %s", tt.in, got.Kind, tt.kind)
		}
	}
}

func TestClassifyAtomValues(t *testing.T) {
	if a := ClassifyAtom("T"); !a.Bool {
		t.Errorf("T is not true")
	}
	if a := ClassifyAtom("F"); a.Bool {
		t.Errorf("F is not false")
	}
	if a := ClassifyAtom("-42"); a.Int.Cmp(big.NewInt(-42)) != 0 {
		t.Errorf("got %s", a.Int)
	}
	if a := ClassifyAtom("2.5"); a.Float != 2.5 {
		t.Errorf("got %v", a.Float)
	}
	if a := ClassifyAtom("-1e400"); !math.IsInf(a.Float, -1) {
		t.Errorf("got %v", a.Float)
	}
	if a := ClassifyAtom("1e-400"); a.Float != 0 {
		t.Errorf("got %v", a.Float)
	}
	if a := ClassifyAtom("nan"); !math.IsNaN(a.Float) {
		t.Errorf("got %v", a.Float)
	}
	a := ClassifyAtom(MaxInt128.String())
	if a.Int.Cmp(MaxInt128) != 0 {
		t.Errorf("got %s", a.Int)
	}
}

func TestDecodeHex(t *testing.T) {
	r, err := DecodeHex('4', '1')
	if err != nil {
		t.Fatal(err)
	}
	if r != 'A' {
		t.Errorf("got %q", r)
	}
	r, err = DecodeHex('f', 'F')
	if err != nil {
		t.Fatal(err)
	}
	if r != 0xff {
		t.Errorf("got %U", r)
	}
	if _, err := DecodeHex('g', '0'); !errors.Is(err, ErrBadHex) {
		t.Errorf("expected ErrBadHex, got %v", err)
	}
}

func TestQuoteUnquote(t *testing.T) {
	for _, s := range []string{
		"",
		"plain",
		"a b",
		`with "quotes"`,
		`back\slash`,
		"tab\tnl\ncr\r",
		"\x00\x01\x7f",
		"[1 2]",
		"ünïcödé ÿ",
	} {
		q := Quote(s)
		u, err := Unquote(q)
		if err != nil {
			t.Errorf("Unquote(%s): %v", q, err)
			continue
		}
		if u != s {
			t.Errorf("Unquote(Quote(%q)) = %q", s, u)
		}
	}
}

func TestUnquote(t *testing.T) {
	u, err := Unquote(`"a\tb\x41\q"`)
	if err != nil {
		t.Fatal(err)
	}
	if u != "a\tbAq" {
		t.Errorf("got %q", u)
	}
	for _, bad := range []string{`"abc`, `"\x4"`, `"\xzz"`, `abc`, `"a"b`, `"\`} {
		if _, err := Unquote(bad); err == nil {
			t.Errorf("Unquote(%s) succeeded", bad)
		}
	}
}

func TestNeedsQuote(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"abc", false},
		{"a-b.c/d", false},
		{"a b", true},
		{"a[", true},
		{"a)", true},
		{`a"`, true},
		{`a\`, true},
		{"1", true},
		{"1.5", true},
		{"N", true},
		{"T", true},
		{"nan", true},
		{"x\x01", true},
	}
	for _, tt := range tests {
		if got := NeedsQuote(tt.in); got != tt.want {
			t.Errorf("NeedsQuote(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBalancer(t *testing.T) {
	tests := []struct {
		lines    []string
		balanced bool
	}{
		{[]string{"1 2 3"}, true},
		{[]string{"[1 2"}, false},
		{[]string{"[1 2", "3]"}, true},
		{[]string{"(a [1", "2]", ")"}, true},
		{[]string{"{a 1"}, false},
		{[]string{`"abc`}, false},
		{[]string{`"abc`, `def"`}, true},
		{[]string{`"[" 1`}, true},
		{[]string{`"\"" [`}, false},
		{[]string{`"a\"`, `b`}, false},
		{[]string{`"a\`, `" closed`}, true},
		{[]string{"]"}, true},
	}
	for i, tt := range tests {
		b := &Balancer{}
		for _, ln := range tt.lines {
			b.Feed(ln + "\n")
		}
		if got := b.Balanced(); got != tt.balanced {
			t.Errorf("%d: %q balanced = %v, want %v", i, tt.lines, got, tt.balanced)
		}
		b.Reset()
		if !b.Balanced() || b.Depth() != 0 {
			t.Errorf("%d: reset did not clear state", i)
		}
	}
}

func TestPos(t *testing.T) {
	p := StartPos()
	for _, r := range "ab\ncd" {
		p.Advance(r)
	}
	if p.Offset != 5 || p.Line != 2 || p.Col != 3 {
		t.Errorf("got %+v", p)
	}
	if p.String() != "2:3" {
		t.Errorf("got %s", p)
	}
}
