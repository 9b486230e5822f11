// Package libdiff computes the differences between two value trees.
//
// # Usage
//
//	changes := libdiff.Diff(oldNode, newNode)
//	fmt.Print(libdiff.Format(changes))
//
//	// as a JSON Patch document, see package patch
//	ops := libdiff.ToPatch(changes)
//
// Changes are ordered. The path of each change refers to the document as
// it is after all earlier changes have been applied, so applying them in
// order turns the old tree into the new one.
//
// # Related Packages
//
//   - github.com/pson-format/go-pson/ir - value tree
//   - github.com/pson-format/go-pson/patch - apply JSON Patch documents
package libdiff
