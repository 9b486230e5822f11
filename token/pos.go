package token

import "fmt"

// Pos is the position of a rune in scanner input. Offset counts runes from
// 0; Line and Col are 1-based.
type Pos struct {
	Offset int
	Line   int
	Col    int
}

func StartPos() Pos {
	return Pos{Line: 1, Col: 1}
}

// Advance moves p past r.
func (p *Pos) Advance(r rune) {
	p.Offset++
	if r == '\n' {
		p.Line++
		p.Col = 1
		return
	}
	p.Col++
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}
