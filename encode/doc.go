// Package encode writes value trees as PSON, JSON or YAML text.
//
// # Usage
//
//	node := ir.FromMap(map[string]*ir.Node{
//	    "name": ir.FromString("alice smith"),
//	    "age":  ir.FromInt(30),
//	})
//	// (age 30 name "alice smith")
//	err := encode.Encode(node, os.Stdout, encode.EncodeQuoted(true))
//
//	// indented, coloured
//	err = encode.Encode(node, os.Stdout,
//	    encode.EncodeIndent(2), encode.EncodeColors(encode.NewColors()))
//
//	// JSON
//	err = encode.Encode(node, os.Stdout, encode.EncodeFormat(format.JSONFormat))
//
// Without EncodeQuoted strings are written raw, which is the canonical
// rendering of ir.Node.Render. Map keys are always written in sorted order.
//
// # Related Packages
//
//   - github.com/pson-format/go-pson/ir - value tree
//   - github.com/pson-format/go-pson/parse - read text into a tree
package encode
