package lisp

import "io"

// Reader abstracts a parser implementation so that it may be implemented in
// a separate package as an optional/swappable component.  The evaluator
// trusts a Reader completely; it performs no syntax validation of its own.
type Reader interface {
	// Read the contents of r and return the sequence of expressions that
	// it contains.  The name identifies the source in syntax errors.
	Read(name string, r io.Reader) ([]*Expr, error)
}
