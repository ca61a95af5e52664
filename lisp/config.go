package lisp

import "io"

// Config is a function that configures an Interpreter during construction.
type Config func(in *Interpreter)

// WithOutput returns a Config that makes the ``print'' builtin write to w
// instead of the default, os.Stdout.
func WithOutput(w io.Writer) Config {
	return func(in *Interpreter) {
		in.output = w
	}
}

// WithReader returns a Config that makes the interpreter use r to parse
// source text passed to EvalString.  There is no default Reader.
func WithReader(r Reader) Config {
	return func(in *Interpreter) {
		in.reader = r
	}
}
