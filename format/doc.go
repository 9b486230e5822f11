// Package format names the text formats PSON values are read from and
// written to.
//
// # Usage
//
//	f, err := format.ParseFormat("json")
//	if err != nil {
//	    return err
//	}
//	err = encode.Encode(node, os.Stdout, encode.EncodeFormat(f))
//
// # Related Packages
//
//   - github.com/pson-format/go-pson/parse - Parse text to IR
//   - github.com/pson-format/go-pson/encode - Encode IR to text
package format
