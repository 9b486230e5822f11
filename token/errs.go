package token

import (
	"errors"
)

var (
	ErrUnterminated = errors.New("unterminated string")
	ErrBadHex       = errors.New("invalid hex digits")
	ErrBadQuote     = errors.New("bad quoted string")
)
