package ir

import "fmt"

type Type int

const (
	NullType Type = iota
	BoolType
	IntegerType
	FloatType
	StringType
	ArrayType
	MapType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NullType:    "Null",
		BoolType:    "Boolean",
		IntegerType: "Integer",
		FloatType:   "Float",
		StringType:  "String",
		ArrayType:   "Array",
		MapType:     "Map",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Null":    NullType,
		"Boolean": BoolType,
		"Integer": IntegerType,
		"Float":   FloatType,
		"String":  StringType,
		"Array":   ArrayType,
		"Map":     MapType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func (t Type) IsNumber() bool {
	return t == IntegerType || t == FloatType
}

func (t Type) IsContainer() bool {
	return t == ArrayType || t == MapType
}

func Types() []Type {
	return []Type{
		NullType,
		BoolType,
		IntegerType,
		FloatType,
		StringType,
		ArrayType,
		MapType,
	}
}
