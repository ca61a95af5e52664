// Package parser reads lisplet source text and produces the expressions
// consumed by the evaluator in the lisp package.
package parser

import (
	"fmt"
	"io"
	"strconv"

	"github.com/lisplet/lisplet/lisp"
	"github.com/lisplet/lisplet/parser/lexer"
	"github.com/lisplet/lisplet/parser/token"
)

// Error is a syntax error tied to a source location.
type Error struct {
	Loc *token.Location
	Msg string

	// incomplete marks errors caused by the input ending mid-expression,
	// which interactive callers treat as "keep reading" rather than a
	// failure.
	incomplete bool
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Loc, e.Msg)
}

// IsIncomplete reports whether err is a syntax error caused only by input
// ending in the middle of an expression, so that more input could still
// produce a valid parse.
func IsIncomplete(err error) bool {
	perr, ok := err.(*Error)
	return ok && perr.incomplete
}

// Parse reads all of src and returns the expressions it contains.  The file
// name is only used in error locations.
func Parse(file string, src []byte) ([]*lisp.Expr, error) {
	p := &parser{lex: lexer.New(file, src)}
	p.advance()
	var program []*lisp.Expr
	for p.tok.Type != token.EOF {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		program = append(program, expr)
	}
	return program, nil
}

// ParseReader is Parse for streaming sources.
func ParseReader(file string, r io.Reader) ([]*lisp.Expr, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(file, src)
}

// Reader implements lisp.Reader so an Interpreter can be configured to parse
// source on its own (e.g. for EvalString).
type Reader struct{}

// NewReader returns a Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read implements lisp.Reader.
func (*Reader) Read(name string, r io.Reader) ([]*lisp.Expr, error) {
	return ParseReader(name, r)
}

type parser struct {
	lex *lexer.Lexer
	tok *token.Token // current token, comments skipped
}

func (p *parser) advance() {
	for {
		p.tok = p.lex.NextToken()
		if p.tok.Type != token.COMMENT {
			return
		}
	}
}

func (p *parser) errorf(loc *token.Location, format string, v ...interface{}) *Error {
	return &Error{Loc: loc, Msg: fmt.Sprintf(format, v...)}
}

func (p *parser) parseExpression() (*lisp.Expr, error) {
	tok := p.tok
	switch tok.Type {
	case token.NUMBER:
		x, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return nil, p.errorf(tok.Source, "malformed number %q", tok.Text)
		}
		p.advance()
		return lisp.NumberExpr(x), nil
	case token.STRING:
		s, err := strconv.Unquote(tok.Text)
		if err != nil {
			return nil, p.errorf(tok.Source, "invalid string literal %s", tok.Text)
		}
		p.advance()
		return lisp.StringExpr(s), nil
	case token.SYMBOL:
		p.advance()
		switch tok.Text {
		case "true":
			return lisp.BoolExpr(true), nil
		case "false":
			return lisp.BoolExpr(false), nil
		}
		return lisp.SymbolExpr(tok.Text), nil
	case token.PAREN_L:
		return p.parseList()
	case token.PAREN_R:
		return nil, p.errorf(tok.Source, "unmatched ')'")
	case token.ERROR:
		return nil, p.errorf(tok.Source, "%s", tok.Text)
	case token.EOF:
		return nil, &Error{Loc: tok.Source, Msg: "unexpected end of input", incomplete: true}
	default:
		return nil, p.errorf(tok.Source, "unexpected token %s", tok.Type)
	}
}

func (p *parser) parseList() (*lisp.Expr, error) {
	open := p.tok.Source
	p.advance()
	var cells []*lisp.Expr
	for {
		switch p.tok.Type {
		case token.PAREN_R:
			p.advance()
			return lisp.ListExpr(cells...), nil
		case token.EOF:
			return nil, &Error{Loc: open, Msg: "unmatched '('", incomplete: true}
		}
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		cells = append(cells, expr)
	}
}
