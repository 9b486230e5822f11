package patch

import (
	"errors"
	"fmt"

	"github.com/pson-format/go-pson/debug"
	"github.com/pson-format/go-pson/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

var (
	ErrPatch = errors.New("patch error")

	// ErrTestFailed is wrapped when a test operation does not hold.
	ErrTestFailed = fmt.Errorf("%w: %w", ErrPatch, jsonpatch.ErrTestFailed)
	// ErrMissing is wrapped when an operation refers to a missing path.
	ErrMissing = fmt.Errorf("%w: %w", ErrPatch, jsonpatch.ErrMissing)
)

// Patch is a decoded JSON Patch.
type Patch struct {
	node *ir.Node
	ops  jsonpatch.Patch
}

// Decode checks that ops is an Array of operation Maps and prepares it for
// application.
func Decode(ops *ir.Node) (*Patch, error) {
	vs, ok := ops.AsArray()
	if !ok {
		return nil, fmt.Errorf("%w: patch is a %s, not an Array", ErrPatch, ops.Type)
	}
	for i, v := range vs {
		if _, ok := v.AsMap(); !ok {
			return nil, fmt.Errorf("%w: operation %d is a %s, not a Map", ErrPatch, i, v.Type)
		}
	}
	d, err := ops.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	jops, err := jsonpatch.DecodePatch(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return &Patch{node: ops, ops: jops}, nil
}

func (p *Patch) Len() int {
	return len(p.ops)
}

// Apply returns the result of applying p to doc. doc is not modified.
// doc must be an Array or a Map.
func (p *Patch) Apply(doc *ir.Node) (*ir.Node, error) {
	if debug.Patch() {
		debug.Logf("patch: applying %v to %v\n", p.node, doc)
	}
	if !doc.Type.IsContainer() {
		return nil, fmt.Errorf("%w: cannot patch a %s", ErrPatch, doc.Type)
	}
	d, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	jOut, err := p.ops.Apply(d)
	if err != nil {
		return nil, wrapOpErr(err)
	}
	res, err := ir.FromJSON(jOut)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return res, nil
}

func wrapOpErr(err error) error {
	switch {
	case errors.Is(err, jsonpatch.ErrTestFailed):
		return fmt.Errorf("%w: %w", ErrTestFailed, err)
	case errors.Is(err, jsonpatch.ErrMissing):
		return fmt.Errorf("%w: %w", ErrMissing, err)
	}
	return fmt.Errorf("%w: %w", ErrPatch, err)
}

// Apply decodes ops and applies it to doc.
func Apply(doc, ops *ir.Node) (*ir.Node, error) {
	p, err := Decode(ops)
	if err != nil {
		return nil, err
	}
	return p.Apply(doc)
}
