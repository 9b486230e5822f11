package ir

import (
	"errors"
)

var (
	ErrParse = errors.New("parse error")
	ErrRange = errors.New("integer out of 128-bit range")
	ErrPath  = errors.New("bad path")
	ErrValue = errors.New("unsupported value")
)
