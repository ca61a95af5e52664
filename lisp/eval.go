package lisp

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Interpreter evaluates expressions against a root environment of its own.
// Independent interpreters share nothing, so a host may run several in one
// process.  An Interpreter is not safe for concurrent use; evaluation is
// single-threaded and recursive, and a program that recurses without bound
// exhausts the Go stack, which is fatal rather than a reported EvalError.
type Interpreter struct {
	global *Env
	output io.Writer
	reader Reader
}

// New initializes an Interpreter with a fresh root environment holding the
// default builtins, then applies the given configs.
func New(configs ...Config) *Interpreter {
	in := &Interpreter{
		global: NewEnv(nil),
		output: os.Stdout,
	}
	for _, config := range configs {
		config(in)
	}
	for _, def := range langBuiltins {
		in.Register(def.name, def.fun)
	}
	in.Register("print", builtinPrint(in.output))
	return in
}

// Global returns the interpreter's root environment.  Interactive hosts pass
// it to Eval so that bindings persist between expressions.
func (in *Interpreter) Global() *Env {
	return in.global
}

// Register binds fn to name in the root environment.  Hosts embedding the
// interpreter register additional builtins before evaluating any program.
func (in *Interpreter) Register(name string, fn Builtin) {
	in.global.Define(name, Function(&Callable{name: name, Builtin: fn}))
}

// EvalProgram evaluates exprs in order against the root environment and
// returns the value of the last expression, or nil for an empty program.
// The first failure aborts the remaining expressions.
func (in *Interpreter) EvalProgram(exprs []*Expr) (Value, error) {
	result := Nil()
	for _, expr := range exprs {
		var err error
		result, err = in.Eval(expr, in.global)
		if err != nil {
			return Value{}, err
		}
	}
	return result, nil
}

// EvalString parses src with the configured Reader and evaluates the
// resulting program.  The name identifies the source in syntax errors.
func (in *Interpreter) EvalString(name string, src string) (Value, error) {
	if in.reader == nil {
		return Value{}, fmt.Errorf("interpreter has no reader")
	}
	exprs, err := in.reader.Read(name, strings.NewReader(src))
	if err != nil {
		return Value{}, err
	}
	return in.EvalProgram(exprs)
}

// Eval evaluates a single expression in the scope of env.
func (in *Interpreter) Eval(expr *Expr, env *Env) (Value, error) {
	switch expr.Type {
	case ENumber:
		return Number(expr.Num), nil
	case EString:
		return String(expr.Str), nil
	case EBool:
		return Bool(expr.Bool), nil
	case ESymbol:
		return env.Get(expr.Str)
	case EList:
		return in.evalList(expr.List, env)
	default:
		return Value{}, typeErrorf("cannot evaluate %s expression", expr.Type)
	}
}

// evalList dispatches a parenthesized form.  A leading reserved-word symbol
// selects a special form; anything else is a function call.
func (in *Interpreter) evalList(cells []*Expr, env *Env) (Value, error) {
	if len(cells) == 0 {
		return Nil(), nil
	}
	head := cells[0]
	if head.Type == ESymbol {
		switch head.Str {
		case "if":
			return in.evalIf(cells[1:], env)
		case "let":
			return in.evalLet(cells[1:], env)
		case "lambda":
			return in.evalLambda(cells[1:], env)
		case "set!":
			return in.evalSet(cells[1:], env)
		}
	}
	return in.evalCall(cells, env)
}

// evalIf treats exactly the boolean true as truthy.  Every other value,
// boolean false included, selects the else branch.
func (in *Interpreter) evalIf(args []*Expr, env *Env) (Value, error) {
	if len(args) != 2 && len(args) != 3 {
		return Value{}, wrongNumArgsf("if expects 2 or 3 arguments (condition then-expr [else-expr])")
	}
	condition, err := in.Eval(args[0], env)
	if err != nil {
		return Value{}, err
	}
	if condition.Type == VBool && condition.Bool {
		return in.Eval(args[1], env)
	}
	if len(args) == 3 {
		return in.Eval(args[2], env)
	}
	return Nil(), nil
}

// evalLet binds a name in the current environment, shadowing outer bindings
// but never touching them.  let is a statement; it yields nil, not the bound
// value.
func (in *Interpreter) evalLet(args []*Expr, env *Env) (Value, error) {
	if len(args) != 2 {
		return Value{}, wrongNumArgsf("let expects 2 arguments (variable value)")
	}
	if args[0].Type != ESymbol {
		return Value{}, typeErrorf("let expects an identifier as variable name")
	}
	v, err := in.Eval(args[1], env)
	if err != nil {
		return Value{}, err
	}
	env.Define(args[0].Str, v)
	return Nil(), nil
}

// evalLambda builds a function value closed over the defining environment.
// The body is not evaluated until the function is called.
func (in *Interpreter) evalLambda(args []*Expr, env *Env) (Value, error) {
	if len(args) < 2 {
		return Value{}, wrongNumArgsf("lambda expects a parameter list and at least one body expression")
	}
	if args[0].Type != EList {
		return Value{}, typeErrorf("lambda parameters must be a list")
	}
	params := make([]string, len(args[0].List))
	for i, p := range args[0].List {
		if p.Type != ESymbol {
			return Value{}, typeErrorf("lambda parameters must be identifiers")
		}
		params[i] = p.Str
	}
	return Function(&Callable{
		Params: params,
		Body:   args[1:],
		Env:    env,
	}), nil
}

// evalSet replaces the nearest existing binding of a name.  Unlike let it
// never creates a binding and fails when the name is unbound.
func (in *Interpreter) evalSet(args []*Expr, env *Env) (Value, error) {
	if len(args) != 2 {
		return Value{}, wrongNumArgsf("set! expects 2 arguments (variable value)")
	}
	if args[0].Type != ESymbol {
		return Value{}, specialFormErrorf("set! expects an identifier as variable name")
	}
	v, err := in.Eval(args[1], env)
	if err != nil {
		return Value{}, err
	}
	if err := env.Set(args[0].Str, v); err != nil {
		return Value{}, err
	}
	return Nil(), nil
}

// evalCall implements the function application protocol.  The head and every
// argument evaluate left to right in the caller's environment; a lambda then
// runs its body in a fresh environment parented at its captured environment,
// which is what makes scoping lexical rather than dynamic.
func (in *Interpreter) evalCall(cells []*Expr, env *Env) (Value, error) {
	head, err := in.Eval(cells[0], env)
	if err != nil {
		return Value{}, err
	}
	if head.Type != VFun {
		return Value{}, notCallable(head)
	}
	args := make([]Value, len(cells)-1)
	for i, cell := range cells[1:] {
		args[i], err = in.Eval(cell, env)
		if err != nil {
			return Value{}, err
		}
	}

	fn := head.Fun
	if fn.Builtin != nil {
		return fn.Builtin(args)
	}
	if len(args) != len(fn.Params) {
		return Value{}, wrongNumArgsf("function expects %d arguments, but got %d", len(fn.Params), len(args))
	}
	call := NewEnv(fn.Env)
	for i, name := range fn.Params {
		call.Define(name, args[i])
	}
	result := Nil()
	for _, expr := range fn.Body {
		result, err = in.Eval(expr, call)
		if err != nil {
			return Value{}, err
		}
	}
	return result, nil
}
