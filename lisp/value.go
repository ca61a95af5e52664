package lisp

import (
	"fmt"
	"strconv"
	"strings"
)

// ValueType is the type of a Value.
type ValueType uint

// Possible ValueType values
const (
	VInvalid ValueType = iota
	VNumber
	VString
	VBool
	VNil
	VFun
)

var valueTypeStrings = []string{
	VInvalid: "INVALID",
	VNumber:  "number",
	VString:  "string",
	VBool:    "boolean",
	VNil:     "nil",
	VFun:     "function",
}

func (t ValueType) String() string {
	if int(t) >= len(valueTypeStrings) {
		return valueTypeStrings[VInvalid]
	}
	return valueTypeStrings[t]
}

// Builtin is a native procedure.  A Builtin receives its arguments already
// evaluated, in call order, and is responsible for validating their number
// and types.
type Builtin func(args []Value) (Value, error)

// Callable is the behavior behind a function value, either a native builtin
// or a lambda closed over the environment it was defined in.  A Callable is
// constructed once and never modified afterwards.
type Callable struct {
	name string // builtin name, for display only

	// Builtin is non-nil for native functions.
	Builtin Builtin

	// Variables needed for lambda values
	Params []string
	Body   []*Expr
	Env    *Env
}

func (fn *Callable) String() string {
	if fn.Builtin != nil {
		return fmt.Sprintf("#<builtin-function %s>", fn.name)
	}
	return fmt.Sprintf("#<lambda (%s)>", strings.Join(fn.Params, " "))
}

// Value is the result of evaluating an expression.
type Value struct {
	Type ValueType
	Num  float64
	Str  string
	Bool bool
	Fun  *Callable
}

// Number returns a Value representing the number x.
func Number(x float64) Value {
	return Value{
		Type: VNumber,
		Num:  x,
	}
}

// String returns a Value representing the string s.
func String(s string) Value {
	return Value{
		Type: VString,
		Str:  s,
	}
}

// Bool returns a Value representing the boolean b.
func Bool(b bool) Value {
	return Value{
		Type: VBool,
		Bool: b,
	}
}

// Nil returns the nil Value, the result of forms that produce nothing
// meaningful.
func Nil() Value {
	return Value{
		Type: VNil,
	}
}

// Function returns a Value wrapping the callable fn.
func Function(fn *Callable) Value {
	return Value{
		Type: VFun,
		Fun:  fn,
	}
}

// Equal reports whether v and u are equal as seen by the ``='' builtin.
// Numbers, strings and booleans compare structurally.  Nil equals only nil.
// Functions carry behavior, not data, so they are equal only when they wrap
// the identical Callable.
func (v Value) Equal(u Value) bool {
	if v.Type != u.Type {
		return false
	}
	switch v.Type {
	case VNumber:
		return v.Num == u.Num
	case VString:
		return v.Str == u.Str
	case VBool:
		return v.Bool == u.Bool
	case VNil:
		return true
	case VFun:
		return v.Fun == u.Fun
	default:
		return false
	}
}

// String returns the display form of v, the form written by the ``print''
// builtin.  Strings render without quotes.  A function renders as a symbolic
// placeholder that never exposes its captured environment.
func (v Value) String() string {
	switch v.Type {
	case VNumber:
		return formatNumber(v.Num)
	case VString:
		return v.Str
	case VBool:
		return strconv.FormatBool(v.Bool)
	case VNil:
		return "nil"
	case VFun:
		return v.Fun.String()
	default:
		return "#<invalid>"
	}
}

func formatNumber(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
