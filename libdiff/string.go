package libdiff

import (
	"strings"

	"github.com/pson-format/go-pson/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// diffString records a Text change, unless the strings share so little
// that a plain Replace reads better.
func (d *differ) diffString(path []ir.PathElem, from, to *ir.Node) {
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(from.String, "\n") && strings.Contains(to.String, "\n")
	diffs := diffCfg.DiffMain(from.String, to.String, doMultiLine)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	diffSize := 0
	sb := &strings.Builder{}
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffInsert:
			sb.WriteString("{+")
			sb.WriteString(diff.Text)
			sb.WriteString("+}")
			diffSize += len(diff.Text)
		case diffpatch.DiffDelete:
			sb.WriteString("[-")
			sb.WriteString(diff.Text)
			sb.WriteString("-]")
			diffSize += len(diff.Text)
		case diffpatch.DiffEqual:
			sb.WriteString(diff.Text)
		}
	}
	if diffSize > min(len(from.String), len(to.String))/2 {
		d.add(Change{Path: path, Kind: Replace, From: from, To: to})
		return
	}
	d.add(Change{Path: path, Kind: Text, From: from, To: to, Text: sb.String()})
}
