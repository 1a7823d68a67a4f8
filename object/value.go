/*
File    : golox/object/value.go

Package object defines the Value tagged union Lox evaluates to, and the
Callable contract shared by native builtins and user-defined functions.
*/
package object

import (
	"fmt"
	"strconv"
	"strings"
)

// Type identifies which variant of the Value union a concrete value is.
type Type string

const (
	NilType      Type = "nil"
	BoolType     Type = "bool"
	NumberType   Type = "number"
	StringType   Type = "string"
	CallableType Type = "callable"
	ClassType    Type = "class"
)

// Value is any Lox runtime value. Every concrete type below implements it.
type Value interface {
	Type() Type
	// String returns the display form used by print and REPL echoing:
	// numbers use shortest round-trip formatting, booleans print
	// true/false, Nil prints "nil", strings print unquoted.
	String() string
}

// Nil is Lox's null value. There is exactly one meaningful instance; Nil{}
// is always equal to itself and falsy.
type Nil struct{}

func (Nil) Type() Type     { return NilType }
func (Nil) String() string { return "nil" }

// Bool wraps a boolean. Only Nil and Bool(false) are falsy (see Truthy).
type Bool bool

func (Bool) Type() Type      { return BoolType }
func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

// Number wraps a float64. Lox has no separate integer type.
type Number float64

func (Number) Type() Type { return NumberType }

// String formats the number using the shortest representation that
// round-trips, trimming a trailing ".0" the way Lox's reference printer
// does for whole numbers (strconv's 'g' format already omits it for
// integral values, so no extra trimming is needed there).
func (n Number) String() string {
	f := float64(n)
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if strings.ContainsAny(s, "eE") {
		// Avoid scientific notation for values in Lox's typical range;
		// fall back to 'f' with trailing zeros trimmed.
		s = strconv.FormatFloat(f, 'f', -1, 64)
	}
	return s
}

// String wraps a Go string. Display form is unquoted.
type String string

func (String) Type() Type      { return StringType }
func (s String) String() string { return string(s) }

// Truthy implements Lox's truthiness rule: only Nil and Bool(false) are
// falsy; everything else (including 0 and "") is truthy.
func Truthy(v Value) bool {
	switch x := v.(type) {
	case Nil:
		return false
	case Bool:
		return bool(x)
	default:
		return true
	}
}

// Equal implements Lox's equality rule: structural equality within a
// variant, and always false across variants except Nil == Nil.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Bool:
		y, ok := b.(Bool)
		return ok && x == y
	case Number:
		y, ok := b.(Number)
		return ok && x == y
	case String:
		y, ok := b.(String)
		return ok && x == y
	default:
		// Callables compare by identity only.
		return a == b
	}
}

// Inspect renders a value the way a debugger or REPL "verbose" mode would,
// including its type tag. Unused by normal print/REPL echoing, which uses
// String() directly, but kept for error messages that need to name a
// value's type (e.g. ValueNotCallable).
func Inspect(v Value) string {
	return fmt.Sprintf("%s(%s)", v.Type(), v.String())
}
