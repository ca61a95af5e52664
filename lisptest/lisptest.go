// Package lisptest provides helpers for writing table driven tests of
// lisplet evaluation.
package lisptest

import (
	"bytes"
	"testing"

	"github.com/lisplet/lisplet/lisp"
	"github.com/lisplet/lisplet/parser"
)

// TestSequence is a sequence of lisp sources which are evaluated in order
// against a single interpreter, so earlier bindings are visible to later
// steps.  A step may contain several expressions; Result is the display form
// of the last value, or the error message when evaluation fails.
type TestSequence []struct {
	Expr   string // lisp source
	Result string // the evaluated result
}

// TestSuite is a set of named TestSequences.
type TestSuite []struct {
	Name string
	TestSequence
}

// RunTestSuite runs each TestSequence in tests on an isolated interpreter.
// Output written by print is discarded.
func RunTestSuite(t *testing.T, tests TestSuite) {
	for i, test := range tests {
		var output bytes.Buffer
		in := lisp.New(lisp.WithOutput(&output))
		for j, step := range test.TestSequence {
			exprs, err := parser.Parse("test", []byte(step.Expr))
			if err != nil {
				t.Errorf("test %d %q: expr %d: parse error: %v", i, test.Name, j, err)
				continue
			}
			var result string
			for _, expr := range exprs {
				v, err := in.Eval(expr, in.Global())
				if err != nil {
					result = err.Error()
					break
				}
				result = v.String()
			}
			if result != step.Result {
				t.Errorf("test %d %q: expr %d: expected result %s (got %s)", i, test.Name, j, step.Result, result)
			}
		}
	}
}
