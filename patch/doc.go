// Package patch applies JSON Patch (RFC 6902) and JSON Merge Patch
// (RFC 7396) documents to value trees.
//
// # Usage
//
//	ops, _ := parse.ParseString(`[(op replace path /a value 2)]`)
//	res, err := patch.Apply(doc, ops.Values[0])
//
// Trees pass through JSON on the way, so they must not hold non-finite
// floats, and an integral Float comes back as an Integer.
//
// # Related Packages
//
//   - github.com/pson-format/go-pson/libdiff - compute patches from diffs
package patch
