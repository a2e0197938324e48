package internal

import (
	"fmt"
	"strconv"
)

// ValueType is the tag of a TypedValue
type ValueType int

const (
	IntType ValueType = iota
	StringType
	BoolType
	FloatType
	CharType
)

func (t ValueType) String() string {
	switch t {
	case IntType:
		return "int"
	case StringType:
		return "string"
	case BoolType:
		return "bool"
	case FloatType:
		return "float"
	case CharType:
		return "char"
	}
	return fmt.Sprintf("ValueType(%d)", int(t))
}

// TypedValue is a tagged union over the values a variable can hold.
// Only the payload selected by the tag is set, so two values are equal
// exactly when their tag and payload match.
type TypedValue struct {
	kind ValueType
	i    int32
	s    string
	b    bool
	f    float64
	c    rune
}

func IntValue(v int32) TypedValue {
	return TypedValue{kind: IntType, i: v}
}

func StringValue(v string) TypedValue {
	return TypedValue{kind: StringType, s: v}
}

func BoolValue(v bool) TypedValue {
	return TypedValue{kind: BoolType, b: v}
}

func FloatValue(v float64) TypedValue {
	return TypedValue{kind: FloatType, f: v}
}

func CharValue(v rune) TypedValue {
	return TypedValue{kind: CharType, c: v}
}

// Type returns the variant tag
func (v TypedValue) Type() ValueType {
	return v.kind
}

// Int returns the integer payload and whether v is an int
func (v TypedValue) Int() (int32, bool) {
	return v.i, v.kind == IntType
}

// Equal reports whether both values hold the same variant and payload
func (v TypedValue) Equal(other TypedValue) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case IntType:
		return v.i == other.i
	case StringType:
		return v.s == other.s
	case BoolType:
		return v.b == other.b
	case FloatType:
		return v.f == other.f
	case CharType:
		return v.c == other.c
	}
	return false
}

func (v TypedValue) String() string {
	switch v.kind {
	case IntType:
		return strconv.FormatInt(int64(v.i), 10)
	case StringType:
		return strconv.Quote(v.s)
	case BoolType:
		return strconv.FormatBool(v.b)
	case FloatType:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case CharType:
		return strconv.QuoteRune(v.c)
	}
	return "<invalid>"
}

// Variable is a named binding inside an Env
type Variable struct {
	Name    string
	Value   TypedValue
	Mutable bool
}

func (v Variable) String() string {
	keyword := "const"
	if v.Mutable {
		keyword = "set"
	}
	return fmt.Sprintf("%s %s = %s", keyword, v.Name, v.Value)
}
