package ir

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the node consistent with Equal: a type tag
// byte followed by the value. Integers and Floats share a tag and hash the
// float64 value of the number, so an Integer and a Float which are Equal
// hash the same. The seed is per process.
//
// It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("ir: Hash called on nil node")
	}

	var h maphash.Hash
	h.SetSeed(hashSeed)

	switch n.Type {
	case NullType:
		h.WriteByte(byte(NullType))
	case BoolType:
		h.WriteByte(byte(BoolType))
		if n.Bool {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case IntegerType:
		writeNumber(&h, intToFloat(n.integer()))
	case FloatType:
		writeNumber(&h, n.Float)
	case StringType:
		h.WriteByte(byte(StringType))
		h.WriteString(n.String)
	case ArrayType:
		h.WriteByte(byte(ArrayType))
		var b [8]byte
		for _, v := range n.Values {
			binary.LittleEndian.PutUint64(b[:], v.Hash())
			h.Write(b[:])
		}
	case MapType:
		h.WriteByte(byte(MapType))
		var b [8]byte
		for _, k := range n.Keys() {
			binary.LittleEndian.PutUint64(b[:], maphash.String(hashSeed, k))
			h.Write(b[:])
			binary.LittleEndian.PutUint64(b[:], n.Fields[k].Hash())
			h.Write(b[:])
		}
	}
	return h.Sum64()
}

func writeNumber(h *maphash.Hash, f float64) {
	h.WriteByte(byte(IntegerType))
	if f == 0 {
		// -0 == +0
		f = 0
	}
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], math.Float64bits(f))
	h.Write(b[:])
}
