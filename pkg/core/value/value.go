package value

import (
	"fmt"
	"strconv"
)

// Type represents the tag in the Value tagged union.
type Type uint8

const (
	TypeInt Type = iota
	TypeString
)

func (t Type) String() string {
	switch t {
	case TypeInt:
		return "int"
	case TypeString:
		return "string"
	default:
		return fmt.Sprintf("value.Type(%d)", uint8(t))
	}
}

// Value is a tagged union. Only the payload selected by Type is meaningful.
type Value struct {
	Type Type
	Int  int32
	Str  string
}

// Int returns an integer value.
func Int(i int32) Value {
	return Value{Type: TypeInt, Int: i}
}

// String returns a string value.
func String(s string) Value {
	return Value{Type: TypeString, Str: s}
}

// IsInt reports whether v holds an integer.
func (v Value) IsInt() bool {
	return v.Type == TypeInt
}

// Text returns the bare text of v, as println shows it.
func (v Value) Text() string {
	if v.Type == TypeString {
		return v.Str
	}
	return strconv.FormatInt(int64(v.Int), 10)
}

// Quote returns v as the stack listing shows it: strings are wrapped in
// double quotes without escaping.
func (v Value) Quote() string {
	if v.Type == TypeString {
		return `"` + v.Str + `"`
	}
	return v.Text()
}
