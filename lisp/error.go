package lisp

import "fmt"

// ErrKind classifies evaluation failures.
type ErrKind uint

// Possible ErrKind values
const (
	ErrUndefinedVariable ErrKind = iota
	ErrType
	ErrWrongNumArgs
	ErrNotCallable
	ErrSpecialForm
	ErrDivisionByZero

	numErrKinds
)

var errKindStrings = []string{
	ErrUndefinedVariable: "undefined variable",
	ErrType:              "type error",
	ErrWrongNumArgs:      "wrong number of arguments",
	ErrNotCallable:       "not a callable function",
	ErrSpecialForm:       "special form error",
	ErrDivisionByZero:    "division by zero",
}

func (k ErrKind) String() string {
	if k >= numErrKinds {
		return "INVALID"
	}
	return errKindStrings[k]
}

// EvalError is a failure produced while evaluating an expression.  A failed
// sub-expression aborts evaluation of its enclosing expression and the error
// propagates unchanged to the caller of Eval.
type EvalError struct {
	Kind ErrKind
	Msg  string // context; the variable name for ErrUndefinedVariable
	Val  Value  // the offending value for ErrNotCallable
}

func (e *EvalError) Error() string {
	switch e.Kind {
	case ErrUndefinedVariable:
		return fmt.Sprintf("undefined variable: '%s'", e.Msg)
	case ErrNotCallable:
		return fmt.Sprintf("not a callable function: %s", e.Val)
	case ErrDivisionByZero:
		return errKindStrings[ErrDivisionByZero]
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	}
}

func undefinedVariable(name string) *EvalError {
	return &EvalError{Kind: ErrUndefinedVariable, Msg: name}
}

func typeErrorf(format string, v ...interface{}) *EvalError {
	return &EvalError{Kind: ErrType, Msg: fmt.Sprintf(format, v...)}
}

func wrongNumArgsf(format string, v ...interface{}) *EvalError {
	return &EvalError{Kind: ErrWrongNumArgs, Msg: fmt.Sprintf(format, v...)}
}

func notCallable(v Value) *EvalError {
	return &EvalError{Kind: ErrNotCallable, Val: v}
}

func specialFormErrorf(format string, v ...interface{}) *EvalError {
	return &EvalError{Kind: ErrSpecialForm, Msg: fmt.Sprintf(format, v...)}
}

func divisionByZero() *EvalError {
	return &EvalError{Kind: ErrDivisionByZero}
}
