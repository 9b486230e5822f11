package libdiff

import (
	"strconv"
	"unicode/utf8"

	"github.com/pson-format/go-pson/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// we diff arrays as rune sequences:
//
//  1. every element gets a summary: its type for arrays and maps, its
//     type and hash for scalars
//  2. each distinct summary is mapped to a rune and the rune sequences are
//     diffed
//  3. equal runs recurse, a deleted run followed by an inserted run is
//     paired up element by element, leftovers become removes or adds
func (d *differ) diffArray(path []ir.PathElem, from, to *ir.Node) {
	m := map[string]rune{}
	fromRunes := mapValues(m, from)
	toRunes := mapValues(m, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	fi, ti, ri := 0, 0, 0
	pending := 0
	at := func(i int) []ir.PathElem {
		return subPath(path, ir.PathElem{Index: i, IsIndex: true})
	}
	flush := func() {
		for ; pending > 0; pending-- {
			d.add(Change{Path: at(ri), Kind: Remove, From: from.Values[fi]})
			fi++
		}
	}
	for i := range diffs {
		diff := &diffs[i]
		n := utf8.RuneCountInString(diff.Text)
		switch diff.Type {
		case diffpatch.DiffDelete:
			pending += n
		case diffpatch.DiffInsert:
			for range n {
				if pending > 0 {
					d.diff(at(ri), from.Values[fi], to.Values[ti])
					pending--
					fi++
				} else {
					d.add(Change{Path: at(ri), Kind: Add, To: to.Values[ti]})
				}
				ri++
				ti++
			}
			flush()
		case diffpatch.DiffEqual:
			flush()
			for range n {
				d.diff(at(ri), from.Values[fi], to.Values[ti])
				ri++
				fi++
				ti++
			}
		}
	}
	flush()
}

func mapValues(m map[string]rune, node *ir.Node) []rune {
	rs := make([]rune, len(node.Values))
	for i, v := range node.Values {
		sum := summary(v)
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			if r >= 0xd800 {
				// skip surrogates
				r += 0x800
			}
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

func summary(v *ir.Node) string {
	if v.Type.IsContainer() {
		return v.Type.String()
	}
	return strconv.FormatUint(v.Hash(), 16)
}
