// Package parse reads PSON text into IR nodes.
//
// # Usage
//
//	// Parse a whole document; the result is always an Array
//	// holding the top-level values.
//	node, err := parse.Parse([]byte(`1 [2 3] (a "x")`))
//	if err != nil {
//	    return err
//	}
//
//	// Drive a Scanner yourself.
//	sc := parse.NewScanner(bufio.NewReader(f), parse.WithFilename(name))
//	if err := sc.Parse(); err != nil {
//	    return err
//	}
//	node, err := sc.Get()
//
// An atom ends at whitespace, a closing bracket or a quote. An opening
// bracket does not end it: the atom carries on inside the new array or
// map, so a[b] reads as [[ab]].
//
// The scanner keeps open arrays and maps on an explicit stack, so nesting
// depth is bounded by memory rather than by the goroutine stack.
//
// # Related Packages
//
//   - github.com/pson-format/go-pson/ir - IR representation
//   - github.com/pson-format/go-pson/encode - Encode IR to text
//   - github.com/pson-format/go-pson/token - Lexical helpers
package parse
