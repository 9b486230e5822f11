package parse

type parseOpts struct {
	bufCap   int
	filename string
}

type ParseOption func(*parseOpts)

// WithBufferCapacity sets the initial capacity in bytes of the buffer
// holding the atom or string being read.
func WithBufferCapacity(n int) ParseOption {
	return func(o *parseOpts) { o.bufCap = n }
}

// WithFilename names the input in error messages.
func WithFilename(name string) ParseOption {
	return func(o *parseOpts) { o.filename = name }
}
