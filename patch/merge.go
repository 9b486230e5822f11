package patch

import (
	"fmt"

	"github.com/pson-format/go-pson/debug"
	"github.com/pson-format/go-pson/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

// Merge applies a JSON Merge Patch: Map fields in m replace or, when Null,
// delete the fields of doc; anything else replaces doc.
func Merge(doc, m *ir.Node) (*ir.Node, error) {
	if debug.Patch() {
		debug.Logf("patch: merging %v into %v\n", m, doc)
	}
	d, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	md, err := m.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	out, err := jsonpatch.MergePatch(d, md)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	res, err := ir.FromJSON(out)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return res, nil
}

// CreateMerge returns a merge patch turning from into to. Both must be
// Maps, or both Arrays.
func CreateMerge(from, to *ir.Node) (*ir.Node, error) {
	if from.Type != to.Type || !from.Type.IsContainer() {
		return nil, fmt.Errorf("%w: cannot create a merge patch from %s to %s", ErrPatch, from.Type, to.Type)
	}
	fd, err := from.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	td, err := to.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	out, err := jsonpatch.CreateMergePatch(fd, td)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	res, err := ir.FromJSON(out)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return res, nil
}
