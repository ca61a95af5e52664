package lisp

import (
	"fmt"
	"io"
)

type builtinDef struct {
	name string
	fun  Builtin
}

var langBuiltins = []*builtinDef{
	{"+", builtinAdd},
	{"-", builtinSub},
	{"*", builtinMul},
	{"/", builtinDiv},
	{"=", builtinEq},
	{"!=", builtinNEq},
	{">", builtinGT},
	{"<", builtinLT},
	{">=", builtinGEq},
	{"<=", builtinLEq},
}

func checkNumArgs(name string, args []Value, expected int) error {
	if len(args) != expected {
		return wrongNumArgsf("%s expects %d arguments, but got %d", name, expected, len(args))
	}
	return nil
}

func checkMinArgs(name string, args []Value, min int) error {
	if len(args) < min {
		return wrongNumArgsf("%s expects at least %d arguments, but got %d", name, min, len(args))
	}
	return nil
}

func numArg(name string, v Value) (float64, error) {
	if v.Type != VNumber {
		return 0, typeErrorf("%s expects numbers", name)
	}
	return v.Num, nil
}

func twoNumArgs(name string, args []Value) (float64, float64, error) {
	if err := checkNumArgs(name, args, 2); err != nil {
		return 0, 0, err
	}
	a, err := numArg(name, args[0])
	if err != nil {
		return 0, 0, err
	}
	b, err := numArg(name, args[1])
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

// builtinAdd folds + over its arguments.  No arguments yields the additive
// identity 0.
func builtinAdd(args []Value) (Value, error) {
	sum := 0.0
	for _, arg := range args {
		x, err := numArg("+", arg)
		if err != nil {
			return Value{}, err
		}
		sum += x
	}
	return Number(sum), nil
}

// builtinSub negates a single argument and otherwise subtracts the sum of
// the remaining arguments from the first.
func builtinSub(args []Value) (Value, error) {
	if err := checkMinArgs("-", args, 1); err != nil {
		return Value{}, err
	}
	first, err := numArg("-", args[0])
	if err != nil {
		return Value{}, err
	}
	if len(args) == 1 {
		return Number(-first), nil
	}
	rest := 0.0
	for _, arg := range args[1:] {
		x, err := numArg("-", arg)
		if err != nil {
			return Value{}, err
		}
		rest += x
	}
	return Number(first - rest), nil
}

// builtinMul folds * over its arguments.  No arguments yields the
// multiplicative identity 1.
func builtinMul(args []Value) (Value, error) {
	product := 1.0
	for _, arg := range args {
		x, err := numArg("*", arg)
		if err != nil {
			return Value{}, err
		}
		product *= x
	}
	return Number(product), nil
}

func builtinDiv(args []Value) (Value, error) {
	numerator, denominator, err := twoNumArgs("/", args)
	if err != nil {
		return Value{}, err
	}
	if denominator == 0.0 {
		return Value{}, divisionByZero()
	}
	return Number(numerator / denominator), nil
}

func builtinEq(args []Value) (Value, error) {
	if err := checkNumArgs("=", args, 2); err != nil {
		return Value{}, err
	}
	return Bool(args[0].Equal(args[1])), nil
}

func builtinNEq(args []Value) (Value, error) {
	if err := checkNumArgs("!=", args, 2); err != nil {
		return Value{}, err
	}
	return Bool(!args[0].Equal(args[1])), nil
}

func builtinGT(args []Value) (Value, error) {
	a, b, err := twoNumArgs(">", args)
	if err != nil {
		return Value{}, err
	}
	return Bool(a > b), nil
}

func builtinLT(args []Value) (Value, error) {
	a, b, err := twoNumArgs("<", args)
	if err != nil {
		return Value{}, err
	}
	return Bool(a < b), nil
}

func builtinGEq(args []Value) (Value, error) {
	a, b, err := twoNumArgs(">=", args)
	if err != nil {
		return Value{}, err
	}
	return Bool(a >= b), nil
}

func builtinLEq(args []Value) (Value, error) {
	a, b, err := twoNumArgs("<=", args)
	if err != nil {
		return Value{}, err
	}
	return Bool(a <= b), nil
}

// builtinPrint returns the ``print'' builtin bound to w.  It writes the
// display form of every argument separated by single spaces, then a newline,
// and yields nil.  It is the only builtin with a side effect.
func builtinPrint(w io.Writer) Builtin {
	return func(args []Value) (Value, error) {
		for i, arg := range args {
			if i > 0 {
				fmt.Fprint(w, " ")
			}
			fmt.Fprint(w, arg)
		}
		fmt.Fprintln(w)
		return Nil(), nil
	}
}
