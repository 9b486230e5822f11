package parse

import (
	"fmt"

	"github.com/pson-format/go-pson/ir"
	"github.com/pson-format/go-pson/token"
)

var (
	ErrParse = ir.ErrParse

	ErrUnmatchedClose     = fmt.Errorf("%w: unmatched close", ErrParse)
	ErrMismatchedClose    = fmt.Errorf("%w: mismatched close", ErrParse)
	ErrUnterminatedString = fmt.Errorf("%w: unterminated string", ErrParse)
	ErrBadHexEscape       = fmt.Errorf("%w: bad hex escape", ErrParse)
	ErrUnbalanced         = fmt.Errorf("%w: unclosed open", ErrParse)
	ErrConsumed           = fmt.Errorf("%w: scanner already consumed", ErrParse)
	ErrOddMap             = fmt.Errorf("%w: map with unpaired element", ErrParse)
	ErrMapKey             = fmt.Errorf("%w: map key is not a string", ErrParse)
)

// ParseError locates a parse failure in the input.
type ParseError struct {
	Err      error
	Pos      token.Pos
	Filename string
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Error() string {
	if e.Filename != "" {
		return fmt.Sprintf("%s:%s: %s", e.Filename, e.Pos, e.Err.Error())
	}
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos)
}
