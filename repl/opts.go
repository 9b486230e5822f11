package repl

import "github.com/pson-format/go-pson/encode"

type config struct {
	prompt  string
	cont    string
	banner  string
	encOpts []encode.EncodeOption
	maxLine int
}

type Option func(*config)

// WithPrompt sets the prompt shown before each new input, and the one
// shown while input is being accumulated.
func WithPrompt(prompt, cont string) Option {
	return func(c *config) {
		c.prompt = prompt
		c.cont = cont
	}
}

// WithBanner sets text shown once when the session starts.
func WithBanner(s string) Option {
	return func(c *config) { c.banner = s }
}

// WithEncodeOptions are applied when printing values, after the defaults
// of quoted strings and one value per line.
func WithEncodeOptions(opts ...encode.EncodeOption) Option {
	return func(c *config) { c.encOpts = append(c.encOpts, opts...) }
}

// WithMaxLine bounds the length in bytes of a single input line.
func WithMaxLine(n int) Option {
	return func(c *config) { c.maxLine = n }
}
