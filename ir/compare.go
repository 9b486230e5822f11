package ir

import (
	"math/big"
)

// Equal reports whether a and b hold the same value. Values of the same
// type compare structurally. An Integer equals a Float when the integer
// widened to float64 equals the float. NaN equals nothing.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type != b.Type {
		switch {
		case a.Type == IntegerType && b.Type == FloatType:
			return intToFloat(a.integer()) == b.Float
		case a.Type == FloatType && b.Type == IntegerType:
			return a.Float == intToFloat(b.integer())
		}
		return false
	}
	switch a.Type {
	case NullType:
		return true
	case BoolType:
		return a.Bool == b.Bool
	case IntegerType:
		return a.integer().Cmp(b.integer()) == 0
	case FloatType:
		return a.Float == b.Float
	case StringType:
		return a.String == b.String
	case ArrayType:
		return equalArrays(a, b)
	case MapType:
		return equalMaps(a, b)
	}
	return false
}

func (y *Node) Equal(o *Node) bool {
	return Equal(y, o)
}

func equalArrays(a, b *Node) bool {
	if len(a.Values) != len(b.Values) {
		return false
	}
	for i := range a.Values {
		if !Equal(a.Values[i], b.Values[i]) {
			return false
		}
	}
	return true
}

func equalMaps(a, b *Node) bool {
	if len(a.Fields) != len(b.Fields) {
		return false
	}
	for k, av := range a.Fields {
		bv, ok := b.Fields[k]
		if !ok {
			return false
		}
		if !Equal(av, bv) {
			return false
		}
	}
	return true
}

// intToFloat widens i to the nearest float64, ties to even.
func intToFloat(i *big.Int) float64 {
	f, _ := new(big.Float).SetInt(i).Float64()
	return f
}
