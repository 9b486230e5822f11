package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"math/big"
)

// ToAny converts y to plain Go values: nil, bool, int64 (or *big.Int when
// the integer does not fit), float64, string, []any and map[string]any.
func ToAny(y *Node) any {
	if y == nil {
		return nil
	}
	switch y.Type {
	case BoolType:
		return y.Bool
	case IntegerType:
		if y.integer().IsInt64() {
			return y.integer().Int64()
		}
		return new(big.Int).Set(y.integer())
	case FloatType:
		return y.Float
	case StringType:
		return y.String
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = ToAny(v)
		}
		return res
	case MapType:
		res := make(map[string]any, len(y.Fields))
		for k, v := range y.Fields {
			res[k] = ToAny(v)
		}
		return res
	}
	return nil
}

// FromAny converts plain Go values, as produced by encoding/json (with or
// without UseNumber) and YAML decoders, into a Node. json.Number values are
// classified like bare atoms: integers first, then floats.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return x.Clone(), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case json.Number:
		n := FromAtom(x.String())
		if !n.Type.IsNumber() {
			return nil, fmt.Errorf("%w: bad number %q", ErrValue, x)
		}
		return n, nil
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt(int64(x)), nil
	case int16:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint:
		return FromBigInt(new(big.Int).SetUint64(uint64(x)))
	case uint8:
		return FromInt(int64(x)), nil
	case uint16:
		return FromInt(int64(x)), nil
	case uint32:
		return FromInt(int64(x)), nil
	case uint64:
		return FromBigInt(new(big.Int).SetUint64(x))
	case *big.Int:
		return FromBigInt(x)
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case []any:
		vs := make([]*Node, len(x))
		for i, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			vs[i] = n
		}
		return FromSlice(vs), nil
	case map[string]any:
		fs := make(map[string]*Node, len(x))
		for k, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			fs[k] = n
		}
		return FromMap(fs), nil
	case map[any]any:
		fs := make(map[string]*Node, len(x))
		for k, e := range x {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("%w: map key %v (%T) is not a string", ErrValue, k, k)
			}
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			fs[ks] = n
		}
		return FromMap(fs), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrValue, v)
}

// MarshalJSON encodes y as the natural JSON value. Non-finite floats have
// no JSON form and are an error.
func (y *Node) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := y.appendJSON(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (y *Node) appendJSON(buf *bytes.Buffer) error {
	switch y.Type {
	case NullType:
		buf.WriteString("null")
	case BoolType:
		if y.Bool {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case IntegerType:
		buf.WriteString(y.integer().String())
	case FloatType:
		if math.IsNaN(y.Float) || math.IsInf(y.Float, 0) {
			return fmt.Errorf("%w: %v has no JSON form", ErrValue, y.Float)
		}
		d, err := json.Marshal(y.Float)
		if err != nil {
			return err
		}
		buf.Write(d)
	case StringType:
		d, err := json.Marshal(y.String)
		if err != nil {
			return err
		}
		buf.Write(d)
	case ArrayType:
		buf.WriteByte('[')
		for i, v := range y.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := v.appendJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case MapType:
		buf.WriteByte('{')
		for i, k := range y.Keys() {
			if i > 0 {
				buf.WriteByte(',')
			}
			d, err := json.Marshal(k)
			if err != nil {
				return err
			}
			buf.Write(d)
			buf.WriteByte(':')
			if err := y.Fields[k].appendJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("%w: type %s", ErrValue, y.Type)
	}
	return nil
}

// UnmarshalJSON decodes any JSON value into y. Integers outside the 128-bit
// range become Floats.
func (y *Node) UnmarshalJSON(d []byte) error {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	n, err := FromAny(v)
	if err != nil {
		return err
	}
	*y = *n
	return nil
}

// FromJSON is a convenience for UnmarshalJSON.
func FromJSON(d []byte) (*Node, error) {
	y := &Node{}
	if err := y.UnmarshalJSON(d); err != nil {
		return nil, err
	}
	return y, nil
}
