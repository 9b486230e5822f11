package encode

import "github.com/pson-format/go-pson/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

// EncodeQuoted quotes strings which would not read back as the same
// string when written bare.
func EncodeQuoted(v bool) EncodeOption {
	return func(es *EncState) { es.quoted = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}

// EncodeIndent puts each element of a non-empty array or map on its own
// line, indented n spaces per level. 0 keeps everything on one line.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = max(n, 0) }
}

// EncodeTopLevel writes an Array as a sequence of documents: one value
// per line without the enclosing brackets, as the scanner reads a file.
func EncodeTopLevel(v bool) EncodeOption {
	return func(es *EncState) { es.topLevel = v }
}
