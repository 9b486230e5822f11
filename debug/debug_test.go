package debug

import (
	"bytes"
	"testing"

	"github.com/pson-format/go-pson/ir"
)

func TestReload(t *testing.T) {
	t.Setenv("PSON_DEBUG_SCAN", "1")
	t.Setenv("PSON_DEBUG_PATCH", "nope")
	Reload()
	defer func() {
		t.Setenv("PSON_DEBUG_SCAN", "")
		Reload()
	}()
	if !Scan() {
		t.Error("scan not enabled")
	}
	if Patch() {
		t.Error("unparseable bool enabled patch")
	}
	if Diff() || REPL() {
		t.Error("unset flags enabled")
	}
}

func TestLogf(t *testing.T) {
	buf := &bytes.Buffer{}
	prev := SetOutput(buf)
	defer SetOutput(prev)

	n := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromString("a b")})
	Logf("node %v nil %v\n", n, (*ir.Node)(nil))
	want := "node [1 a b] nil <nil>\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q want %q", got, want)
	}
}
