package ir

import (
	"fmt"
	"maps"
	"math/big"
	"slices"

	"github.com/pson-format/go-pson/token"
)

// Node is a PSON value. Type selects which of the other fields holds the
// value: Bool for BoolType, Int for IntegerType, Float for FloatType,
// String for StringType, Values for ArrayType and Fields for MapType. A
// nil Int reads as zero.
//
// A Node owns its children. Nodes are not mutated by this package after
// construction.
type Node struct {
	Type Type

	Bool   bool
	Int    *big.Int
	Float  float64
	String string

	Values []*Node
	Fields map[string]*Node
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type: IntegerType,
		Int:  big.NewInt(v),
	}
}

// FromBigInt returns an Integer node holding a copy of v, which must fit
// 128 signed bits.
func FromBigInt(v *big.Int) (*Node, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: nil integer", ErrValue)
	}
	if !token.InInt128(v) {
		return nil, fmt.Errorf("%w: %s", ErrRange, v)
	}
	return &Node{
		Type: IntegerType,
		Int:  new(big.Int).Set(v),
	}, nil
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:  FloatType,
		Float: f,
	}
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

// FromSlice returns an Array node taking ownership of vs.
func FromSlice(vs []*Node) *Node {
	if vs == nil {
		vs = []*Node{}
	}
	return &Node{
		Type:   ArrayType,
		Values: vs,
	}
}

// FromMap returns a Map node taking ownership of m.
func FromMap(m map[string]*Node) *Node {
	if m == nil {
		m = map[string]*Node{}
	}
	return &Node{
		Type:   MapType,
		Fields: m,
	}
}

// FromAtom classifies a bare token: N is null, T and F are booleans, an
// integer literal in range is an integer, a float literal is a float and
// anything else is the token text as a string. It never fails.
func FromAtom(s string) *Node {
	a := token.ClassifyAtom(s)
	switch a.Kind {
	case token.AtomNull:
		return Null()
	case token.AtomBool:
		return FromBool(a.Bool)
	case token.AtomInteger:
		return &Node{Type: IntegerType, Int: a.Int}
	case token.AtomFloat:
		return FromFloat(a.Float)
	default:
		return FromString(s)
	}
}

func (y *Node) IsNull() bool {
	return y != nil && y.Type == NullType
}

func (y *Node) AsBool() (bool, bool) {
	if y == nil || y.Type != BoolType {
		return false, false
	}
	return y.Bool, true
}

// AsInteger returns a copy of the integer value.
func (y *Node) AsInteger() (*big.Int, bool) {
	if y == nil || y.Type != IntegerType {
		return nil, false
	}
	return new(big.Int).Set(y.integer()), true
}

// AsInt64 returns the integer value if it fits 64 bits.
func (y *Node) AsInt64() (int64, bool) {
	if y == nil || y.Type != IntegerType || !y.integer().IsInt64() {
		return 0, false
	}
	return y.integer().Int64(), true
}

var zeroInt = new(big.Int)

// integer is y.Int, reading a nil Int as zero so that a Node built as a
// struct literal still compares, hashes and renders.
func (y *Node) integer() *big.Int {
	if y.Int == nil {
		return zeroInt
	}
	return y.Int
}

func (y *Node) AsFloat() (float64, bool) {
	if y == nil || y.Type != FloatType {
		return 0, false
	}
	return y.Float, true
}

func (y *Node) AsString() (string, bool) {
	if y == nil || y.Type != StringType {
		return "", false
	}
	return y.String, true
}

func (y *Node) AsArray() ([]*Node, bool) {
	if y == nil || y.Type != ArrayType {
		return nil, false
	}
	return y.Values, true
}

func (y *Node) AsMap() (map[string]*Node, bool) {
	if y == nil || y.Type != MapType {
		return nil, false
	}
	return y.Fields, true
}

// Len is the number of elements of an Array or entries of a Map, and 0
// otherwise.
func (y *Node) Len() int {
	if y == nil {
		return 0
	}
	switch y.Type {
	case ArrayType:
		return len(y.Values)
	case MapType:
		return len(y.Fields)
	}
	return 0
}

// Keys returns the keys of a Map node in sorted order.
func (y *Node) Keys() []string {
	if y == nil || y.Type != MapType {
		return nil
	}
	return slices.Sorted(maps.Keys(y.Fields))
}

func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	res := &Node{
		Type:   y.Type,
		Bool:   y.Bool,
		Float:  y.Float,
		String: y.String,
	}
	if y.Int != nil {
		res.Int = new(big.Int).Set(y.Int)
	}
	if y.Values != nil {
		res.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			res.Values[i] = v.Clone()
		}
	}
	if y.Fields != nil {
		res.Fields = make(map[string]*Node, len(y.Fields))
		for k, v := range y.Fields {
			res.Fields[k] = v.Clone()
		}
	}
	return res
}
