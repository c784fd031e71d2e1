/*
File    : prose/internal/value/value.go
Package : value
*/

// Package value implements prose's dynamically-typed runtime value: a
// tagged union over Number, String, and Boolean, plus an Unknown variant
// for uninitialized variables. Binary and unary operators are resolved by
// a direct match on the operand Kinds rather than a double-dispatch
// visitor — Go's lack of function overloading makes a switch on a
// (left, right) Kind pair the natural idiom here, and it reads no
// differently than go-mix/objects.ExtractValue's type switch.
package value

import (
	"fmt"
	"strconv"
)

// Kind tags which variant a Value currently holds.
type Kind string

const (
	KindNumber  Kind = "Number"
	KindString  Kind = "String"
	KindBoolean Kind = "Boolean"
	KindUnknown Kind = "Unknown"
)

// Value is the runtime representation of every prose datum. It is always
// used behind a pointer — a *Value is the handle assignment and argument
// passing copy around as an O(1) pointer copy. Assigning to a variable
// overwrites the contents of the handle it is bound to (see
// environment.AssignVar), so every name sharing that handle sees the new
// value. No manual reference count is kept: Go's garbage collector
// already plays that role.
type Value struct {
	Kind Kind
	Num  float64
	Str  string
	Bool bool
}

// Unknown is the zero value every declared-but-unassigned variable holds.
func Unknown() *Value { return &Value{Kind: KindUnknown} }

// Number wraps a float64 as a Value.
func Number(n float64) *Value { return &Value{Kind: KindNumber, Num: n} }

// String wraps a string as a Value.
func String(s string) *Value { return &Value{Kind: KindString, Str: s} }

// Boolean wraps a bool as a Value.
func Boolean(b bool) *Value { return &Value{Kind: KindBoolean, Bool: b} }

// Display formats a Value the way the `Display`/`Print`/... builtins do:
// Numbers and Strings print their bare value; any other Kind is a misuse
// the caller must reject before calling Display.
func (v *Value) Display() string {
	switch v.Kind {
	case KindNumber:
		return FormatNumber(v.Num)
	case KindString:
		return v.Str
	default:
		return fmt.Sprintf("<%s>", v.Kind)
	}
}

// FormatNumber is the single definition of the default decimal
// representation `toString` and the print builtins share: shortest
// round-tripping decimal, so `5.0` prints as `5` and `1.5` prints as
// `1.5`.
func FormatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// ParseNumber implements the `toNumber` builtin's parse step.
func ParseNumber(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
