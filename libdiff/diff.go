package libdiff

import (
	"maps"
	"slices"

	"github.com/pson-format/go-pson/debug"
	"github.com/pson-format/go-pson/ir"
)

// Diff returns the changes turning from into to, or nil when the two are
// equal.
func Diff(from, to *ir.Node) []Change {
	d := &differ{}
	d.diff(nil, from, to)
	if debug.Diff() {
		debug.Logf("diff: %d changes between %v and %v\n", len(d.changes), from, to)
	}
	return d.changes
}

type differ struct {
	changes []Change
}

func (d *differ) add(c Change) {
	d.changes = append(d.changes, c)
}

func (d *differ) diff(path []ir.PathElem, from, to *ir.Node) {
	if ir.Equal(from, to) {
		return
	}
	switch {
	case from.Type == ir.StringType && to.Type == ir.StringType:
		d.diffString(path, from, to)
	case from.Type == ir.ArrayType && to.Type == ir.ArrayType:
		d.diffArray(path, from, to)
	case from.Type == ir.MapType && to.Type == ir.MapType:
		d.diffMap(path, from, to)
	default:
		d.add(Change{Path: path, Kind: Replace, From: from, To: to})
	}
}

// for every key only on one side add or remove it, for every shared key
// recurse on the values
func (d *differ) diffMap(path []ir.PathElem, from, to *ir.Node) {
	keys := map[string]bool{}
	for _, k := range from.Keys() {
		keys[k] = true
	}
	for _, k := range to.Keys() {
		keys[k] = true
	}
	for _, k := range slices.Sorted(maps.Keys(keys)) {
		f, t := from.Fields[k], to.Fields[k]
		sub := subPath(path, ir.PathElem{Field: k})
		switch {
		case t == nil:
			d.add(Change{Path: sub, Kind: Remove, From: f})
		case f == nil:
			d.add(Change{Path: sub, Kind: Add, To: t})
		default:
			d.diff(sub, f, t)
		}
	}
}

func subPath(path []ir.PathElem, e ir.PathElem) []ir.PathElem {
	res := make([]ir.PathElem, len(path), len(path)+1)
	copy(res, path)
	return append(res, e)
}
