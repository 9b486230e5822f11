package encode

import (
	"bytes"
	"math"
	"math/big"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pson-format/go-pson/format"
	"github.com/pson-format/go-pson/ir"
	"github.com/pson-format/go-pson/parse"
)

func sample() *ir.Node {
	return ir.FromMap(map[string]*ir.Node{
		"name": ir.FromString("alice smith"),
		"age":  ir.FromInt(30),
		"tags": ir.FromSlice([]*ir.Node{ir.FromString("a"), ir.FromString("N"), ir.FromString("")}),
		"ok":   ir.FromBool(true),
		"none": ir.Null(),
	})
}

type encodeTest struct {
	name string
	in   *ir.Node
	opts []EncodeOption
	out  string
}

func TestEncode(t *testing.T) {
	ets := []encodeTest{
		{
			name: "raw",
			in:   sample(),
			out:  "(age 30 name alice smith none N ok T tags [a N ])\n",
		},
		{
			name: "quoted",
			in:   sample(),
			opts: []EncodeOption{EncodeQuoted(true)},
			out:  "(age 30 name \"alice smith\" none N ok T tags [a \"N\" \"\"])\n",
		},
		{
			name: "quoted keys",
			in:   ir.FromMap(map[string]*ir.Node{"a b": ir.FromInt(1), "1": ir.FromInt(2)}),
			opts: []EncodeOption{EncodeQuoted(true)},
			out:  "(\"1\" 2 \"a b\" 1)\n",
		},
		{
			name: "escapes",
			in:   ir.FromString("x\ty\"\x01"),
			opts: []EncodeOption{EncodeQuoted(true)},
			out:  "\"x\\ty\\\"\\x01\"\n",
		},
		{
			name: "floats",
			in:   ir.FromSlice([]*ir.Node{ir.FromFloat(1), ir.FromFloat(2.5), ir.FromFloat(math.Inf(-1))}),
			out:  "[1 2.5 -Inf]\n",
		},
		{
			name: "indent",
			in: ir.FromSlice([]*ir.Node{
				ir.FromInt(1),
				ir.FromMap(map[string]*ir.Node{"k": ir.FromSlice(nil)}),
			}),
			opts: []EncodeOption{EncodeIndent(2)},
			out:  "[\n  1\n  (\n    k []\n  )\n]\n",
		},
		{
			name: "top level",
			in:   ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromString("a b")}),
			opts: []EncodeOption{EncodeTopLevel(true), EncodeQuoted(true)},
			out:  "1\n\"a b\"\n",
		},
		{
			name: "json",
			in:   sample(),
			opts: []EncodeOption{EncodeFormat(format.JSONFormat)},
			out:  `{"age":30,"name":"alice smith","none":null,"ok":true,"tags":["a","N",""]}` + "\n",
		},
		{
			name: "json indent",
			in:   ir.FromMap(map[string]*ir.Node{"a": ir.FromSlice([]*ir.Node{ir.FromInt(1)})}),
			opts: []EncodeOption{EncodeFormat(format.JSONFormat), EncodeIndent(2)},
			out:  "{\n  \"a\": [\n    1\n  ]\n}\n",
		},
		{
			name: "json lines",
			in:   ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromSlice(nil)}),
			opts: []EncodeOption{EncodeFormat(format.JSONFormat), EncodeTopLevel(true)},
			out:  "1\n[]\n",
		},
	}
	for _, et := range ets {
		buf := &bytes.Buffer{}
		if err := Encode(et.in, buf, et.opts...); err != nil {
			t.Errorf("%s: %v", et.name, err)
			continue
		}
		if diff := cmp.Diff(et.out, buf.String()); diff != "" {
			t.Errorf("%s: (-want +got):\n%s", et.name, diff)
		}
	}
}

func TestEncodeJSONNonFinite(t *testing.T) {
	err := Encode(ir.FromFloat(math.NaN()), &bytes.Buffer{}, EncodeFormat(format.JSONFormat))
	if err == nil {
		t.Fatal("NaN encoded as JSON")
	}
}

func TestEncodeYAML(t *testing.T) {
	big128, _ := new(big.Int).SetString("170141183460469231731687303715884105727", 10)
	big, err := ir.FromBigInt(big128)
	if err != nil {
		t.Fatal(err)
	}
	in := ir.FromMap(map[string]*ir.Node{
		"b":   ir.FromInt(1),
		"a":   ir.FromString("x"),
		"big": big,
	})
	buf := &bytes.Buffer{}
	if err := Encode(in, buf, EncodeFormat(format.YAMLFormat)); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	a, b := strings.Index(got, "a: x"), strings.Index(got, "b: 1")
	if a < 0 || b < 0 || a > b {
		t.Errorf("keys not sorted:\n%s", got)
	}
	if !strings.Contains(got, "big: 170141183460469231731687303715884105727\n") {
		t.Errorf("big integer:\n%s", got)
	}
}

func TestQuotedRoundTrip(t *testing.T) {
	ins := []string{
		`[1 -2 3.5 "a b" "" "N" "T" "12" "x\"y" "tab\there" (k "v w" "k 2" [N])]`,
		`("(" ")" "[" "]" "\\" "\x7f")`,
		`[[[]] () "é"]`,
	}
	for _, in := range ins {
		doc, err := parse.ParseString(in)
		if err != nil {
			t.Fatalf("%s: %v", in, err)
		}
		for _, indent := range []int{0, 2} {
			out := &bytes.Buffer{}
			if err := Encode(doc, out, EncodeQuoted(true), EncodeTopLevel(true), EncodeIndent(indent)); err != nil {
				t.Fatal(err)
			}
			again, err := parse.Parse(out.Bytes())
			if err != nil {
				t.Fatalf("%s: reparse %q: %v", in, out.String(), err)
			}
			if !ir.Equal(doc, again) {
				t.Errorf("%s: round trip gave %s", in, again.Render())
			}
		}
	}
}

func TestColors(t *testing.T) {
	c := NewColors()
	c.Map = map[Colorable]func(string, ...any) string{
		{Type: ir.IntegerType, Attr: ValueColor}: func(s string, _ ...any) string { return "<" + s + ">" },
	}
	buf := &bytes.Buffer{}
	if err := Encode(ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromString("s")}), buf, EncodeColors(c)); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "[<1> s]\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestMustString(t *testing.T) {
	if got, want := MustString(sample()), `(age 30 name "alice smith" none N ok T tags [a "N" ""])`; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestFormatFromOpts(t *testing.T) {
	if f := FormatFromOpts(EncodeQuoted(true), EncodeFormat(format.YAMLFormat)); f != format.YAMLFormat {
		t.Errorf("got %s", f)
	}
}
