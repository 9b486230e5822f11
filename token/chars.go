package token

// IsSpace reports whether r separates atoms.
func IsSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

func IsOpen(r rune) bool {
	switch r {
	case '[', '{', '(':
		return true
	}
	return false
}

func IsClose(r rune) bool {
	switch r {
	case ']', '}', ')':
		return true
	}
	return false
}

// Closer returns the delimiter closing open, or 0 if open is not an
// opening delimiter.
func Closer(open rune) rune {
	switch open {
	case '[':
		return ']'
	case '{':
		return '}'
	case '(':
		return ')'
	}
	return 0
}

// IsStructural reports whether r cannot appear inside a bare atom.
func IsStructural(r rune) bool {
	return IsSpace(r) || IsOpen(r) || IsClose(r) || r == '"'
}
