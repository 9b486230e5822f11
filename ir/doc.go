// Package ir provides the value tree for PSON documents.
//
// # Overview
//
// Every PSON value, whether parsed from text or built in Go, is an
// *ir.Node. A Node is a tagged union: its Type says which field holds the
// value.
//
//   - NullType: no payload
//   - BoolType: Bool
//   - IntegerType: Int, a *big.Int within the 128-bit signed range
//   - FloatType: Float
//   - StringType: String
//   - ArrayType: Values, in order
//   - MapType: Fields, keyed by string; key order is not significant
//
// Containers own their children; there are no parent pointers and no
// sharing between trees.
//
// # Creating Nodes
//
//	n := ir.FromAtom("42")     // Integer 42
//	f := ir.FromAtom("4.2")    // Float 4.2
//	s := ir.FromString("42")   // String "42"
//	arr := ir.FromSlice([]*ir.Node{n, f, s})
//	obj := ir.FromMap(map[string]*ir.Node{"a": ir.Null()})
//
// FromAtom applies the bare token rules of the notation: N, T and F first,
// then integers, then floats, and finally the token text as a string.
//
// # Accessors
//
// The As methods narrow a node to one variant and report whether it holds
// that variant; they never panic, even on a nil node.
//
//	if i, ok := n.AsInteger(); ok {
//	    ...
//	}
//
// # Equality and Hashing
//
// Equal compares values structurally. Integers and Floats compare by
// numeric value, so FromInt(1) equals FromFloat(1) even though the
// accessors tell them apart. Hash agrees with Equal, including across the
// two numeric variants.
//
// # Rendering
//
// Render produces the canonical text: N, T, F, numbers in decimal, strings
// verbatim, [a b] for arrays and (k v) for maps. Strings are not quoted;
// use the encode package for output which must read back exactly.
//
// # Paths
//
// GetPath navigates with paths like a.b[0]:
//
//	v, err := root.GetPath(`[0].servers[1]."host name"`)
//
// # Thread Safety
//
// Nodes have no internal synchronisation. They are safe to read from
// several goroutines once built.
//
// # Related Packages
//
//   - github.com/pson-format/go-pson/parse - Parses text into IR nodes
//   - github.com/pson-format/go-pson/encode - Encodes IR nodes to text
package ir
