package lisp

import (
	"bytes"
	"strconv"
)

// ExprType is the type of an Expr node.
type ExprType uint

// Possible ExprType values
const (
	EInvalid ExprType = iota
	ENumber
	EString
	EBool
	ESymbol
	EList
)

var exprTypeStrings = []string{
	EInvalid: "INVALID",
	ENumber:  "number",
	EString:  "string",
	EBool:    "boolean",
	ESymbol:  "symbol",
	EList:    "list",
}

func (t ExprType) String() string {
	if int(t) >= len(exprTypeStrings) {
		return exprTypeStrings[EInvalid]
	}
	return exprTypeStrings[t]
}

// Expr is a parsed expression.  Expressions are produced by a Reader and are
// not modified during evaluation.
type Expr struct {
	Type ExprType
	Num  float64
	Str  string // string literal content or symbol name
	Bool bool
	List []*Expr
}

// NumberExpr returns an Expr representing the number literal x.
func NumberExpr(x float64) *Expr {
	return &Expr{
		Type: ENumber,
		Num:  x,
	}
}

// StringExpr returns an Expr representing a string literal.
func StringExpr(s string) *Expr {
	return &Expr{
		Type: EString,
		Str:  s,
	}
}

// BoolExpr returns an Expr representing a boolean literal.
func BoolExpr(b bool) *Expr {
	return &Expr{
		Type: EBool,
		Bool: b,
	}
}

// SymbolExpr returns an Expr representing the identifier name.
func SymbolExpr(name string) *Expr {
	return &Expr{
		Type: ESymbol,
		Str:  name,
	}
}

// ListExpr returns an Expr representing a parenthesized form.
func ListExpr(cells ...*Expr) *Expr {
	return &Expr{
		Type: EList,
		List: cells,
	}
}

func (e *Expr) String() string {
	switch e.Type {
	case ENumber:
		return formatNumber(e.Num)
	case EString:
		return strconv.Quote(e.Str)
	case EBool:
		return strconv.FormatBool(e.Bool)
	case ESymbol:
		return e.Str
	case EList:
		if len(e.List) == 0 {
			return "()"
		}
		var buf bytes.Buffer
		buf.WriteString("(")
		for i, c := range e.List {
			if i > 0 {
				buf.WriteString(" ")
			}
			buf.WriteString(c.String())
		}
		buf.WriteString(")")
		return buf.String()
	default:
		return "#<invalid>"
	}
}
