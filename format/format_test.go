package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"pson", PSONFormat},
		{"JSON", JSONFormat},
		{"yaml", YAMLFormat},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if err != nil {
			t.Errorf("ParseFormat(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
	for _, bad := range []string{"tony", "p", "yml", ""} {
		if _, err := ParseFormat(bad); !errors.Is(err, ErrBadFormat) {
			t.Errorf("ParseFormat(%q): expected ErrBadFormat, got %v", bad, err)
		}
	}
}

func TestFormatText(t *testing.T) {
	for _, f := range Formats() {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var g Format
		if err := g.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if g != f {
			t.Errorf("text round trip %s -> %s", f, g)
		}
	}
	if _, err := Format(9).MarshalText(); !errors.Is(err, ErrBadFormat) {
		t.Errorf("unknown format marshalled: %v", err)
	}
	if s := Format(9).String(); s != "<format 9>" {
		t.Errorf("unknown format string %q", s)
	}
}

func TestFromPath(t *testing.T) {
	tests := []struct {
		in   string
		want Format
		ok   bool
	}{
		{"a.pson", PSONFormat, true},
		{"dir/b.JSON", JSONFormat, true},
		{"c.yml", YAMLFormat, true},
		{"d.yaml", YAMLFormat, true},
		{"e.txt", PSONFormat, false},
		{"-", PSONFormat, false},
	}
	for _, tt := range tests {
		got, ok := FromPath(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("FromPath(%q) = %s %t, want %s %t", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
