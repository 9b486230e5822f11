package token

// Balancer tracks whether accumulated input has every string closed and
// every opening delimiter matched. It does not check that delimiters match
// in kind; that is left to the scanner.
type Balancer struct {
	depth    int
	inString bool
	escaped  bool
}

// Feed advances the balance state over s.
func (b *Balancer) Feed(s string) {
	for _, r := range s {
		if b.inString {
			switch {
			case b.escaped:
				b.escaped = false
			case r == '\\':
				b.escaped = true
			case r == '"':
				b.inString = false
			}
			continue
		}
		switch {
		case r == '"':
			b.inString = true
		case IsOpen(r):
			b.depth++
		case IsClose(r):
			b.depth--
		}
	}
}

// Balanced reports whether the input fed so far can be handed to the
// scanner. Surplus closing delimiters count as balanced so that the
// scanner reports them.
func (b *Balancer) Balanced() bool {
	return !b.inString && b.depth <= 0
}

func (b *Balancer) InString() bool { return b.inString }

func (b *Balancer) Depth() int { return b.depth }

func (b *Balancer) Reset() {
	*b = Balancer{}
}
