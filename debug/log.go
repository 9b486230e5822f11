package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pson-format/go-pson/ir"
)

var out io.Writer = os.Stderr

// SetOutput redirects Logf, returning the previous writer.
func SetOutput(w io.Writer) io.Writer {
	prev := out
	out = w
	return prev
}

// Logf writes a formatted message. Nodes are shown in PSON form and plain
// Go containers as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			if x == nil {
				args[i] = "<nil>"
				continue
			}
			args[i] = x.Render()
		}
	}
	fmt.Fprintf(out, msg, args...)
}
